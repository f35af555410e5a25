package service

import (
	"log"

	"github.com/Kenford20/wedding-approuter/internal/access"
	"github.com/Kenford20/wedding-approuter/internal/models"
)

// WebsiteLookup resolves a website by its public sub-path. Absence is
// (nil, nil), not an error.
type WebsiteLookup interface {
	GetBySubPath(subPath string) (*models.Website, error)
}

// WeddingData is everything a granted visitor's page is built from.
type WeddingData struct {
	Events     []models.Event
	Households []models.Household
}

// WeddingDataFetcher loads a website's wedding data after access is granted.
type WeddingDataFetcher interface {
	FetchWeddingData(websiteID string) (*WeddingData, error)
}

// SiteView is the fully resolved outcome of one public request: the gate
// state, the website record when one exists, and the wedding data when the
// state is granted.
type SiteView struct {
	State   access.State
	Website *models.Website
	Data    *WeddingData
}

// SiteService drives the public content path: website lookup, access
// gating, and the post-grant data fetch. Every failure on this path
// downgrades to a public "not available" state; nothing internal leaks to
// visitors.
type SiteService struct {
	websites WebsiteLookup
	fetcher  WeddingDataFetcher
}

// NewSiteService creates a new site service
func NewSiteService(websites WebsiteLookup, fetcher WeddingDataFetcher) *SiteService {
	return &SiteService{websites: websites, fetcher: fetcher}
}

// Resolve runs the access gate for one request and, when granted, loads the
// wedding data. Requests are independent: no state is shared across calls
// beyond the visitor's own credential store.
func (s *SiteService) Resolve(subPath string, creds access.CredentialStore) SiteView {
	site, err := s.websites.GetBySubPath(subPath)
	if err != nil {
		log.Printf("website lookup failed for %q: %v", subPath, err)
		return SiteView{State: access.StateUnavailable}
	}

	state := access.Evaluate(site, creds)
	view := SiteView{State: state, Website: site}
	if state != access.StateGranted {
		return view
	}

	data, err := s.fetcher.FetchWeddingData(site.ID)
	if err != nil {
		log.Printf("wedding data fetch failed for %q: %v", subPath, err)
		return SiteView{State: access.StateUnavailable, Website: site}
	}

	view.Data = data
	return view
}

// SubmitPassword persists a visitor's submitted password as their
// credential. The value is not checked here; the gate re-evaluates it on
// the next request.
func (s *SiteService) SubmitPassword(creds access.CredentialStore, value string) {
	access.SubmitPassword(creds, value)
}
