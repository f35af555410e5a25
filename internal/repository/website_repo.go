package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/database"
	"github.com/Kenford20/wedding-approuter/internal/models"
)

// WebsiteRepository handles database operations for websites
type WebsiteRepository struct {
	db *database.DB
}

// NewWebsiteRepository creates a new website repository
func NewWebsiteRepository(db *database.DB) *WebsiteRepository {
	return &WebsiteRepository{db: db}
}

// GetBySubPath resolves a website by its public sub-path. Returns (nil, nil)
// when no website exists there; callers treat that as not found. Called on
// every public request, so it stays a single indexed lookup.
func (r *WebsiteRepository) GetBySubPath(subPath string) (*models.Website, error) {
	query := `
		SELECT id, sub_path, is_password_enabled, password, created_at, updated_at
		FROM websites WHERE sub_path = ?
	`
	site := &models.Website{}
	err := r.db.QueryRow(query, subPath).Scan(
		&site.ID,
		&site.SubPath,
		&site.IsPasswordEnabled,
		&site.Password,
		&site.CreatedAt,
		&site.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}

	return site, nil
}

// GetByID retrieves a website by ID
func (r *WebsiteRepository) GetByID(websiteID string) (*models.Website, error) {
	query := `
		SELECT id, sub_path, is_password_enabled, password, created_at, updated_at
		FROM websites WHERE id = ?
	`
	site := &models.Website{}
	err := r.db.QueryRow(query, websiteID).Scan(
		&site.ID,
		&site.SubPath,
		&site.IsPasswordEnabled,
		&site.Password,
		&site.CreatedAt,
		&site.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}

	return site, nil
}

// Create creates a new website at the given sub-path
func (r *WebsiteRepository) Create(subPath string, passwordEnabled bool, password string) (*models.Website, error) {
	id := newID()
	query := "INSERT INTO websites (id, sub_path, is_password_enabled, password) VALUES (?, ?, ?, ?)"
	if _, err := r.db.Exec(query, id, subPath, passwordEnabled, password); err != nil {
		return nil, fmt.Errorf("failed to create website: %w", err)
	}

	return &models.Website{
		ID:                id,
		SubPath:           subPath,
		IsPasswordEnabled: passwordEnabled,
		Password:          password,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}, nil
}

// UpdatePassword sets a website's password settings
func (r *WebsiteRepository) UpdatePassword(websiteID string, passwordEnabled bool, password string) error {
	query := `
		UPDATE websites SET is_password_enabled = ?, password = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, passwordEnabled, password, websiteID); err != nil {
		return fmt.Errorf("failed to update website password: %w", err)
	}
	return nil
}
