package models

import "time"

// Household groups guests that share one guest-list entry (typically a
// family). It is the unit of search/filter and of "add guest" actions.
type Household struct {
	ID        string
	WebsiteID string
	Name      string
	Guests    []Guest
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestCount returns the size of the household's roster.
func (h Household) GuestCount() int {
	return len(h.Guests)
}

// Guest belongs to exactly one household and holds at most one invitation
// per event.
type Guest struct {
	ID          string
	HouseholdID string
	FirstName   string
	LastName    string
	Email       string
	Invitations []Invitation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the guest's display name.
func (g Guest) FullName() string {
	if g.FirstName == "" {
		return g.LastName
	}
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

// InvitationFor returns the guest's invitation for the given event, or nil
// when the guest isn't invited to it.
func (g Guest) InvitationFor(eventID string) *Invitation {
	for i := range g.Invitations {
		if g.Invitations[i].EventID == eventID {
			return &g.Invitations[i]
		}
	}
	return nil
}

// Invitation pairs a guest with an event and carries the RSVP status.
// Absence of an invitation means the guest is not invited to that event.
type Invitation struct {
	GuestID string
	EventID string
	RSVP    RSVPStatus
}
