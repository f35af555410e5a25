package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/guestlist"
	"github.com/Kenford20/wedding-approuter/internal/models"
	"github.com/Kenford20/wedding-approuter/internal/repository"
)

var ErrEventNotFound = errors.New("event not found")

// GuestListView is the host dashboard's derived state for one combination
// of (households, query, scope). It is recomputed on every request; nothing
// here is cached across data changes.
type GuestListView struct {
	Events     []models.Event
	Households []models.Household
	Summary    guestlist.Aggregation
	Query      string
	Scope      string
}

// EventForm is the prefilled edit-intent payload handed to the event edit
// form. Optional fields stay empty strings when the event has no value.
type EventForm struct {
	EventName   string
	Date        string
	StartTime   string
	EndTime     string
	Venue       string
	Attire      string
	Description string
	EventID     string
}

// PrefillEventForm builds the edit form payload from an event
func PrefillEventForm(event models.Event) EventForm {
	form := EventForm{
		EventName:   event.Name,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Venue:       event.Venue,
		Attire:      event.Attire,
		Description: event.Description,
		EventID:     event.ID,
	}
	if !event.Date.IsZero() {
		form.Date = event.Date.Format("2006-01-02")
	}
	return form
}

// GuestListService computes the host's guest-list views and applies guest
// and event edits through the repositories.
type GuestListService struct {
	events     *repository.EventRepository
	households *repository.HouseholdRepository
}

// NewGuestListService creates a new guest list service
func NewGuestListService(events *repository.EventRepository, households *repository.HouseholdRepository) *GuestListService {
	return &GuestListService{events: events, households: households}
}

// View loads the website's guest list and computes the filtered households
// and summary counts for the given query and scope.
func (s *GuestListService) View(websiteID, query, scope string) (*GuestListView, error) {
	if scope == "" {
		scope = guestlist.ScopeAll
	}

	events, err := s.events.ListByWebsite(websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	households, err := s.households.ListByWebsite(websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load households: %w", err)
	}

	filtered := guestlist.Filter(households, query, scope)

	return &GuestListView{
		Events:     events,
		Households: filtered,
		Summary:    guestlist.Aggregate(filtered, scope, events),
		Query:      query,
		Scope:      scope,
	}, nil
}

// ExportCSV writes the view's guest list as CSV: one row per guest, with
// the household name and the guest's response per event.
func (s *GuestListService) ExportCSV(w io.Writer, view *GuestListView) error {
	writer := csv.NewWriter(w)

	header := []string{"Household", "Guest", "Email"}
	for _, event := range view.Events {
		header = append(header, event.Name)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, household := range view.Households {
		for _, guest := range household.Guests {
			row := []string{household.Name, guest.FullName(), guest.Email}
			for _, event := range view.Events {
				if inv := guest.InvitationFor(event.ID); inv != nil {
					row = append(row, string(inv.RSVP))
				} else {
					row = append(row, "Not Invited")
				}
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// EditEventForm returns the prefilled form for an event edit
func (s *GuestListService) EditEventForm(eventID string) (*EventForm, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	form := PrefillEventForm(*event)
	return &form, nil
}

// ApplyEventForm persists an edited event form
func (s *GuestListService) ApplyEventForm(form EventForm) error {
	event, err := s.events.GetByID(form.EventID)
	if err != nil {
		return fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return ErrEventNotFound
	}

	event.Name = form.EventName
	if form.Date != "" {
		date, err := time.Parse("2006-01-02", form.Date)
		if err != nil {
			return fmt.Errorf("invalid event date %q: %w", form.Date, err)
		}
		event.Date = date
	}
	event.StartTime = form.StartTime
	event.EndTime = form.EndTime
	event.Venue = form.Venue
	event.Attire = form.Attire
	event.Description = form.Description

	return s.events.Update(*event)
}

// AddHousehold creates a household with its initial guests
func (s *GuestListService) AddHousehold(websiteID, name string, guests []models.Guest) (*models.Household, error) {
	return s.households.CreateHousehold(websiteID, name, guests)
}

// AddGuest adds a guest to an existing household
func (s *GuestListService) AddGuest(householdID, firstName, lastName, email string) (*models.Guest, error) {
	return s.households.AddGuest(householdID, firstName, lastName, email)
}

// SetRSVP records a guest's response for an event
func (s *GuestListService) SetRSVP(guestID, eventID string, status models.RSVPStatus) error {
	return s.households.SetRSVP(guestID, eventID, status)
}

// Uninvite removes a guest's invitation for an event. The guest stays on
// the household roster and keeps any other invitations.
func (s *GuestListService) Uninvite(guestID, eventID string) error {
	return s.households.RemoveInvitation(guestID, eventID)
}

// RemoveHousehold deletes a household with its guests and invitations
func (s *GuestListService) RemoveHousehold(householdID string) error {
	return s.households.DeleteHousehold(householdID)
}

// ReminderRecipients returns the guests still in the no-response bucket for
// an event who have an email address on file.
func (s *GuestListService) ReminderRecipients(websiteID, eventID string) ([]models.Guest, error) {
	households, err := s.households.ListByWebsite(websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load households: %w", err)
	}

	var recipients []models.Guest
	for _, household := range households {
		for _, guest := range household.Guests {
			inv := guest.InvitationFor(eventID)
			if inv == nil || inv.RSVP != models.RSVPNoResponse {
				continue
			}
			if guest.Email == "" {
				continue
			}
			recipients = append(recipients, guest)
		}
	}
	return recipients, nil
}
