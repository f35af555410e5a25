// Package guestlist computes the derived guest-list views: attendance
// aggregation across events and household search/filtering. Everything here
// is a pure function over already-loaded data; callers recompute views
// whenever the underlying households, query, or scope change.
package guestlist

import (
	"github.com/Kenford20/wedding-approuter/internal/models"
)

// ScopeAll selects the cross-event view instead of a single event.
const ScopeAll = "all"

// RSVPBreakdown holds the per-event response buckets. The buckets are
// disjoint: each guest holding an invitation for the scoped event lands in
// exactly one of them.
type RSVPBreakdown struct {
	Attending  int
	Declined   int
	NoResponse int
}

// Aggregation summarizes a household collection for one scope.
//
// TotalGuests is always the plain roster sum over the given households. For
// an event scope it is shown as "Guests Invited" even though it is not the
// sum of the three buckets: guests with no invitation for the scoped event
// are counted in the total but in no bucket. Callers wanting an
// invitee-exact total must pre-filter the households themselves.
type Aggregation struct {
	TotalHouseholds int
	TotalGuests     int

	// TotalEvents is filled only for ScopeAll.
	TotalEvents int

	// Breakdown and Event are filled only for a single-event scope.
	// Event is nil when the scoped id resolves to no known event; the
	// breakdown is then all zeros.
	Breakdown *RSVPBreakdown
	Event     *models.Event
}

// Aggregate computes summary counts for the given households under the given
// scope. It never mutates its inputs and never fails: an unknown event id
// yields zero buckets rather than an error.
func Aggregate(households []models.Household, scope string, events []models.Event) Aggregation {
	agg := Aggregation{
		TotalHouseholds: len(households),
		TotalGuests:     totalGuests(households),
	}

	if scope == ScopeAll {
		agg.TotalEvents = len(events)
		return agg
	}

	agg.Event = findEvent(events, scope)

	breakdown := &RSVPBreakdown{}
	for _, household := range households {
		for _, guest := range household.Guests {
			inv := guest.InvitationFor(scope)
			if inv == nil {
				// Not invited to this event; contributes to no bucket.
				continue
			}
			switch inv.RSVP {
			case models.RSVPAttending:
				breakdown.Attending++
			case models.RSVPDeclined:
				breakdown.Declined++
			default:
				breakdown.NoResponse++
			}
		}
	}
	agg.Breakdown = breakdown

	return agg
}

func totalGuests(households []models.Household) int {
	total := 0
	for _, household := range households {
		total += len(household.Guests)
	}
	return total
}

func findEvent(events []models.Event, eventID string) *models.Event {
	for i := range events {
		if events[i].ID == eventID {
			return &events[i]
		}
	}
	return nil
}
