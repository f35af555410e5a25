package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/database"
	"github.com/Kenford20/wedding-approuter/internal/models"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, website_id, name, date, start_time, end_time, venue, attire, description, created_at, updated_at"

func scanEvent(scan func(...interface{}) error) (models.Event, error) {
	var event models.Event
	err := scan(
		&event.ID,
		&event.WebsiteID,
		&event.Name,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.Venue,
		&event.Attire,
		&event.Description,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	return event, err
}

// ListByWebsite retrieves a website's events in schedule order
func (r *EventRepository) ListByWebsite(websiteID string) ([]models.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE website_id = ? ORDER BY date ASC, created_at ASC, id ASC"
	rows, err := r.db.Query(query, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(eventID string) (*models.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE id = ?"
	event, err := scanEvent(r.db.QueryRow(query, eventID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// Create inserts a new event for a website
func (r *EventRepository) Create(event models.Event) (*models.Event, error) {
	event.ID = newID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	query := `
		INSERT INTO events (id, website_id, name, date, start_time, end_time, venue, attire, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		event.ID, event.WebsiteID, event.Name, event.Date,
		event.StartTime, event.EndTime, event.Venue, event.Attire, event.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

// Update applies an edited event form to an existing event
func (r *EventRepository) Update(event models.Event) error {
	query := `
		UPDATE events
		SET name = ?, date = ?, start_time = ?, end_time = ?, venue = ?, attire = ?, description = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query,
		event.Name, event.Date, event.StartTime, event.EndTime,
		event.Venue, event.Attire, event.Description, event.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}
