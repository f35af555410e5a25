package service

import (
	"fmt"

	"github.com/Kenford20/wedding-approuter/internal/repository"
)

// RepositoryFetcher materializes wedding data from the event and household
// repositories. It satisfies WeddingDataFetcher for the live server.
type RepositoryFetcher struct {
	events     *repository.EventRepository
	households *repository.HouseholdRepository
}

// NewRepositoryFetcher creates a fetcher over the given repositories
func NewRepositoryFetcher(events *repository.EventRepository, households *repository.HouseholdRepository) *RepositoryFetcher {
	return &RepositoryFetcher{events: events, households: households}
}

// FetchWeddingData loads a website's events and households in one call
func (f *RepositoryFetcher) FetchWeddingData(websiteID string) (*WeddingData, error) {
	events, err := f.events.ListByWebsite(websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	households, err := f.households.ListByWebsite(websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load households: %w", err)
	}

	return &WeddingData{Events: events, Households: households}, nil
}
