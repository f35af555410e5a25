package guestlist

import (
	"testing"

	"github.com/Kenford20/wedding-approuter/internal/models"
)

func household(id string, guests ...models.Guest) models.Household {
	return models.Household{ID: id, Guests: guests}
}

func guest(id, first, last string, invitations ...models.Invitation) models.Guest {
	return models.Guest{ID: id, FirstName: first, LastName: last, Invitations: invitations}
}

func TestAggregateAllScope(t *testing.T) {
	households := []models.Household{
		household("h1",
			guest("g1", "Jane", "Doe", models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPAttending}),
			guest("g2", "John", "Doe"),
		),
		household("h2",
			guest("g3", "Bob", "Lee", models.Invitation{GuestID: "g3", EventID: "e1", RSVP: models.RSVPDeclined}),
		),
		household("h3"),
	}
	events := []models.Event{{ID: "e1"}, {ID: "e2"}}

	agg := Aggregate(households, ScopeAll, events)

	if agg.TotalHouseholds != 3 {
		t.Errorf("TotalHouseholds = %d, want 3", agg.TotalHouseholds)
	}
	if agg.TotalGuests != 3 {
		t.Errorf("TotalGuests = %d, want 3", agg.TotalGuests)
	}
	if agg.TotalEvents != 2 {
		t.Errorf("TotalEvents = %d, want 2", agg.TotalEvents)
	}
	if agg.Breakdown != nil {
		t.Errorf("expected no breakdown for the all scope, got %+v", agg.Breakdown)
	}
	if agg.Event != nil {
		t.Errorf("expected no resolved event for the all scope, got %+v", agg.Event)
	}
}

func TestAggregateEmptyHouseholds(t *testing.T) {
	agg := Aggregate(nil, ScopeAll, nil)
	if agg.TotalGuests != 0 {
		t.Errorf("TotalGuests = %d, want 0", agg.TotalGuests)
	}
	if agg.TotalHouseholds != 0 {
		t.Errorf("TotalHouseholds = %d, want 0", agg.TotalHouseholds)
	}
}

func TestAggregateEventScopeBuckets(t *testing.T) {
	tests := []struct {
		name       string
		households []models.Household
		want       RSVPBreakdown
	}{
		{
			name: "single attending guest",
			households: []models.Household{
				household("h1", guest("g1", "Jane", "Doe",
					models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPAttending})),
			},
			want: RSVPBreakdown{Attending: 1},
		},
		{
			name: "one of each bucket",
			households: []models.Household{
				household("h1",
					guest("g1", "Jane", "Doe",
						models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPAttending}),
					guest("g2", "John", "Doe",
						models.Invitation{GuestID: "g2", EventID: "e1", RSVP: models.RSVPDeclined}),
				),
				household("h2",
					guest("g3", "Bob", "Lee",
						models.Invitation{GuestID: "g3", EventID: "e1", RSVP: models.RSVPNoResponse}),
				),
			},
			want: RSVPBreakdown{Attending: 1, Declined: 1, NoResponse: 1},
		},
		{
			name: "uninvited guests are skipped entirely",
			households: []models.Household{
				household("h1",
					guest("g1", "Jane", "Doe",
						models.Invitation{GuestID: "g1", EventID: "e2", RSVP: models.RSVPAttending}),
					guest("g2", "John", "Doe"),
				),
			},
			want: RSVPBreakdown{},
		},
		{
			name: "invitation for another event does not leak into scope",
			households: []models.Household{
				household("h1",
					guest("g1", "Jane", "Doe",
						models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPDeclined},
						models.Invitation{GuestID: "g1", EventID: "e2", RSVP: models.RSVPAttending}),
				),
			},
			want: RSVPBreakdown{Declined: 1},
		},
	}

	events := []models.Event{{ID: "e1"}, {ID: "e2"}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate(tt.households, "e1", events)
			if agg.Breakdown == nil {
				t.Fatal("expected a breakdown for an event scope")
			}
			if *agg.Breakdown != tt.want {
				t.Errorf("breakdown = %+v, want %+v", *agg.Breakdown, tt.want)
			}
		})
	}
}

// The "Guests Invited" total is the plain roster sum over the given
// households, not the sum of the three buckets. A guest without an
// invitation for the scoped event raises the total but lands in no bucket.
// That mismatch is deliberate; callers wanting an invitee-exact total must
// pre-filter the households.
func TestAggregateTotalGuestsVersusBucketSum(t *testing.T) {
	households := []models.Household{
		household("h1",
			guest("g1", "Jane", "Doe",
				models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPAttending}),
			guest("g2", "John", "Doe"), // not invited to e1
		),
	}
	events := []models.Event{{ID: "e1"}}

	agg := Aggregate(households, "e1", events)

	if agg.TotalGuests != 2 {
		t.Errorf("TotalGuests = %d, want 2", agg.TotalGuests)
	}
	bucketSum := agg.Breakdown.Attending + agg.Breakdown.Declined + agg.Breakdown.NoResponse
	if bucketSum != 1 {
		t.Errorf("bucket sum = %d, want 1", bucketSum)
	}
	if agg.TotalGuests == bucketSum {
		t.Error("expected total and bucket sum to disagree for this fixture")
	}
}

func TestAggregateUnknownEventScope(t *testing.T) {
	households := []models.Household{
		household("h1", guest("g1", "Jane", "Doe",
			models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPAttending})),
	}
	events := []models.Event{{ID: "e1"}}

	agg := Aggregate(households, "missing", events)

	if agg.Event != nil {
		t.Errorf("expected nil event for unknown scope, got %+v", agg.Event)
	}
	if agg.Breakdown == nil {
		t.Fatal("expected a zero breakdown, got nil")
	}
	if *agg.Breakdown != (RSVPBreakdown{}) {
		t.Errorf("breakdown = %+v, want all zeros", *agg.Breakdown)
	}
	if agg.TotalGuests != 1 {
		t.Errorf("TotalGuests = %d, want 1", agg.TotalGuests)
	}
}

func TestAggregateResolvesScopedEvent(t *testing.T) {
	events := []models.Event{{ID: "e1", Name: "Ceremony"}, {ID: "e2", Name: "Reception"}}

	agg := Aggregate(nil, "e2", events)

	if agg.Event == nil {
		t.Fatal("expected resolved event")
	}
	if agg.Event.Name != "Reception" {
		t.Errorf("Event.Name = %q, want %q", agg.Event.Name, "Reception")
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	households := []models.Household{
		household("h1", guest("g1", "Jane", "Doe",
			models.Invitation{GuestID: "g1", EventID: "e1", RSVP: models.RSVPAttending})),
	}
	events := []models.Event{{ID: "e1"}}

	first := Aggregate(households, "e1", events)
	second := Aggregate(households, "e1", events)

	if *first.Breakdown != *second.Breakdown ||
		first.TotalGuests != second.TotalGuests ||
		first.TotalHouseholds != second.TotalHouseholds {
		t.Error("repeated aggregation produced different results")
	}
}
