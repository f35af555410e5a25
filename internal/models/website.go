package models

import "time"

// Website is a published wedding site, resolved by its public sub-path.
// The site core only reads websites; creation and edits happen in the
// host-facing flows.
type Website struct {
	ID                string
	SubPath           string
	IsPasswordEnabled bool
	Password          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
