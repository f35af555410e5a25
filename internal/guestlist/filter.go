package guestlist

import (
	"strings"

	"github.com/Kenford20/wedding-approuter/internal/models"
)

// Filter returns the households matching a free-text query under an event
// scope. Matching is a case-insensitive substring check against guest full
// names. A household is retained when any of its guests matches, and it is
// returned with its full roster: a host searching for one family member
// should see the whole household.
//
// For a single-event scope, candidates are first restricted to households
// with at least one guest invited to that event. An empty query returns the
// scope-restricted collection unchanged, in its original order. The source
// slice is never mutated, so filtering is idempotent and safe to recompute
// on every input change.
func Filter(households []models.Household, query, scope string) []models.Household {
	candidates := households
	if scope != ScopeAll {
		candidates = restrictToEvent(households, scope)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return candidates
	}

	needle := strings.ToLower(query)
	matched := make([]models.Household, 0, len(candidates))
	for _, household := range candidates {
		if householdMatches(household, needle) {
			matched = append(matched, household)
		}
	}
	return matched
}

// restrictToEvent keeps households containing at least one guest holding an
// invitation to the given event.
func restrictToEvent(households []models.Household, eventID string) []models.Household {
	restricted := make([]models.Household, 0, len(households))
	for _, household := range households {
		for _, guest := range household.Guests {
			if guest.InvitationFor(eventID) != nil {
				restricted = append(restricted, household)
				break
			}
		}
	}
	return restricted
}

func householdMatches(household models.Household, needle string) bool {
	for _, guest := range household.Guests {
		if strings.Contains(strings.ToLower(guest.FullName()), needle) {
			return true
		}
	}
	return false
}
