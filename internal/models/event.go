package models

import "time"

// Event is a single occasion on a website's schedule (ceremony, reception,
// rehearsal dinner, ...). Optional detail fields are empty strings when the
// host hasn't filled them in.
type Event struct {
	ID          string
	WebsiteID   string
	Name        string
	Date        time.Time
	StartTime   string
	EndTime     string
	Venue       string
	Attire      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
