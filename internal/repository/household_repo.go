package repository

import (
	"fmt"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/database"
	"github.com/Kenford20/wedding-approuter/internal/models"
)

// HouseholdRepository handles database operations for households, guests,
// and their invitations
type HouseholdRepository struct {
	db *database.DB
}

// NewHouseholdRepository creates a new household repository
func NewHouseholdRepository(db *database.DB) *HouseholdRepository {
	return &HouseholdRepository{db: db}
}

// ListByWebsite loads a website's households with guests and invitations
// fully materialized, in creation order. Raw rsvp values are collapsed onto
// the closed status set here, so downstream code never sees free-form
// strings.
func (r *HouseholdRepository) ListByWebsite(websiteID string) ([]models.Household, error) {
	households, order, err := r.listHouseholds(websiteID)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return []models.Household{}, nil
	}

	guestIndex, err := r.attachGuests(websiteID, households)
	if err != nil {
		return nil, err
	}

	if err := r.attachInvitations(websiteID, guestIndex); err != nil {
		return nil, err
	}

	result := make([]models.Household, 0, len(order))
	for _, id := range order {
		result = append(result, *households[id])
	}
	return result, nil
}

func (r *HouseholdRepository) listHouseholds(websiteID string) (map[string]*models.Household, []string, error) {
	query := `
		SELECT id, website_id, name, created_at, updated_at
		FROM households WHERE website_id = ? ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, websiteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query households: %w", err)
	}
	defer rows.Close()

	households := make(map[string]*models.Household)
	var order []string
	for rows.Next() {
		var h models.Household
		if err := rows.Scan(&h.ID, &h.WebsiteID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan household: %w", err)
		}
		h.Guests = []models.Guest{}
		households[h.ID] = &h
		order = append(order, h.ID)
	}
	return households, order, rows.Err()
}

// attachGuests loads all guests for the website's households and returns an
// index from guest ID to its slot in the household's roster. The index is
// built only after every roster is complete: appending to a household's
// guest slice can reallocate it, which would leave earlier pointers aimed at
// a dead backing array.
func (r *HouseholdRepository) attachGuests(websiteID string, households map[string]*models.Household) (map[string]*models.Guest, error) {
	query := `
		SELECT g.id, g.household_id, g.first_name, g.last_name, g.email, g.created_at, g.updated_at
		FROM guests g
		INNER JOIN households h ON g.household_id = h.id
		WHERE h.website_id = ?
		ORDER BY g.created_at ASC, g.id ASC
	`
	rows, err := r.db.Query(query, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(&g.ID, &g.HouseholdID, &g.FirstName, &g.LastName, &g.Email, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		household, ok := households[g.HouseholdID]
		if !ok {
			continue
		}
		g.Invitations = []models.Invitation{}
		household.Guests = append(household.Guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	guestIndex := make(map[string]*models.Guest)
	for _, household := range households {
		for i := range household.Guests {
			guestIndex[household.Guests[i].ID] = &household.Guests[i]
		}
	}
	return guestIndex, nil
}

func (r *HouseholdRepository) attachInvitations(websiteID string, guestIndex map[string]*models.Guest) error {
	query := `
		SELECT i.guest_id, i.event_id, i.rsvp
		FROM invitations i
		INNER JOIN guests g ON i.guest_id = g.id
		INNER JOIN households h ON g.household_id = h.id
		WHERE h.website_id = ?
	`
	rows, err := r.db.Query(query, websiteID)
	if err != nil {
		return fmt.Errorf("failed to query invitations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var guestID, eventID, rawRSVP string
		if err := rows.Scan(&guestID, &eventID, &rawRSVP); err != nil {
			return fmt.Errorf("failed to scan invitation: %w", err)
		}
		guest, ok := guestIndex[guestID]
		if !ok {
			continue
		}
		guest.Invitations = append(guest.Invitations, models.Invitation{
			GuestID: guestID,
			EventID: eventID,
			RSVP:    models.ParseRSVPStatus(rawRSVP),
		})
	}
	return rows.Err()
}

// CreateHousehold creates a household with its initial guests and their
// invitations in one transaction.
func (r *HouseholdRepository) CreateHousehold(websiteID, name string, guests []models.Guest) (*models.Household, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	household := &models.Household{
		ID:        newID(),
		WebsiteID: websiteID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := "INSERT INTO households (id, website_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.Exec(query, household.ID, websiteID, name, now, now); err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	for _, guest := range guests {
		guest.ID = newID()
		guest.HouseholdID = household.ID
		guest.CreatedAt = now
		guest.UpdatedAt = now

		query = "INSERT INTO guests (id, household_id, first_name, last_name, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		if _, err := tx.Exec(query, guest.ID, guest.HouseholdID, guest.FirstName, guest.LastName, guest.Email, now, now); err != nil {
			return nil, fmt.Errorf("failed to create guest: %w", err)
		}

		for _, inv := range guest.Invitations {
			query = "INSERT INTO invitations (guest_id, event_id, rsvp) VALUES (?, ?, ?)"
			if _, err := tx.Exec(query, guest.ID, inv.EventID, string(inv.RSVP)); err != nil {
				return nil, fmt.Errorf("failed to create invitation: %w", err)
			}
		}

		household.Guests = append(household.Guests, guest)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return household, nil
}

// AddGuest adds a guest to an existing household
func (r *HouseholdRepository) AddGuest(householdID, firstName, lastName, email string) (*models.Guest, error) {
	now := time.Now()
	guest := &models.Guest{
		ID:          newID(),
		HouseholdID: householdID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Invitations: []models.Invitation{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := "INSERT INTO guests (id, household_id, first_name, last_name, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	if _, err := r.db.Exec(query, guest.ID, householdID, firstName, lastName, email, now, now); err != nil {
		return nil, fmt.Errorf("failed to add guest: %w", err)
	}

	return guest, nil
}

// SetRSVP records a guest's response for an event, creating the invitation
// when it doesn't exist yet. At most one invitation per (guest, event) pair
// is enforced by the primary key; this upserts onto it.
func (r *HouseholdRepository) SetRSVP(guestID, eventID string, status models.RSVPStatus) error {
	query := r.db.Dialect.RewriteQuery(r.db.Dialect.UpsertInvitationQuery())
	if _, err := r.db.DB.Exec(query, guestID, eventID, string(status)); err != nil {
		return fmt.Errorf("failed to set rsvp: %w", err)
	}
	return nil
}

// RemoveInvitation uninvites a guest from an event
func (r *HouseholdRepository) RemoveInvitation(guestID, eventID string) error {
	query := "DELETE FROM invitations WHERE guest_id = ? AND event_id = ?"
	if _, err := r.db.Exec(query, guestID, eventID); err != nil {
		return fmt.Errorf("failed to remove invitation: %w", err)
	}
	return nil
}

// DeleteHousehold deletes a household and, via cascade, its guests and
// their invitations
func (r *HouseholdRepository) DeleteHousehold(householdID string) error {
	query := "DELETE FROM households WHERE id = ?"
	if _, err := r.db.Exec(query, householdID); err != nil {
		return fmt.Errorf("failed to delete household: %w", err)
	}
	return nil
}
