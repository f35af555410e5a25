package repository

import "github.com/google/uuid"

// newID generates a time-ordered (v7) UUID. Rows are listed with an id
// tiebreaker after created_at, and DATETIME columns truncate to seconds on
// some backends, so ids themselves must sort in creation order.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
