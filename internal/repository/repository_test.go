package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/database"
	"github.com/Kenford20/wedding-approuter/internal/models"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "repo.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestWebsiteGetBySubPath(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWebsiteRepository(db)

	created, err := repo.Create("ab-cd", true, "abc123")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	site, err := repo.GetBySubPath("ab-cd")
	if err != nil {
		t.Fatalf("GetBySubPath failed: %v", err)
	}
	if site == nil {
		t.Fatal("expected website, got nil")
	}
	if site.ID != created.ID {
		t.Errorf("ID = %s, want %s", site.ID, created.ID)
	}
	if !site.IsPasswordEnabled || site.Password != "abc123" {
		t.Errorf("password settings = (%v, %q), want (true, abc123)", site.IsPasswordEnabled, site.Password)
	}

	// Unknown sub-paths resolve to nil without an error.
	missing, err := repo.GetBySubPath("no-such-site")
	if err != nil {
		t.Fatalf("GetBySubPath for missing site failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown sub-path, got %+v", missing)
	}
}

func TestHouseholdLifecycle(t *testing.T) {
	db := setupTestDB(t)
	websiteRepo := NewWebsiteRepository(db)
	eventRepo := NewEventRepository(db)
	householdRepo := NewHouseholdRepository(db)

	site, err := websiteRepo.Create("ab-cd", false, "")
	if err != nil {
		t.Fatalf("Create website failed: %v", err)
	}

	event, err := eventRepo.Create(models.Event{
		WebsiteID: site.ID,
		Name:      "Ceremony",
		Date:      time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create event failed: %v", err)
	}

	_, err = householdRepo.CreateHousehold(site.ID, "Doe", []models.Guest{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
			Invitations: []models.Invitation{{EventID: event.ID, RSVP: models.RSVPAttending}}},
		{FirstName: "John", LastName: "Doe"},
	})
	if err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}

	households, err := householdRepo.ListByWebsite(site.ID)
	if err != nil {
		t.Fatalf("ListByWebsite failed: %v", err)
	}
	if len(households) != 1 {
		t.Fatalf("expected 1 household, got %d", len(households))
	}
	if len(households[0].Guests) != 2 {
		t.Fatalf("expected 2 guests, got %d", len(households[0].Guests))
	}

	jane := households[0].Guests[0]
	if jane.FullName() != "Jane Doe" {
		t.Errorf("first guest = %q, want Jane Doe (creation order)", jane.FullName())
	}
	inv := jane.InvitationFor(event.ID)
	if inv == nil || inv.RSVP != models.RSVPAttending {
		t.Errorf("invitation = %+v, want attending for %s", inv, event.ID)
	}
	if households[0].Guests[1].InvitationFor(event.ID) != nil {
		t.Error("expected John to hold no invitation")
	}
}

func TestListByWebsiteKeepsInvitationsForEveryGuest(t *testing.T) {
	db := setupTestDB(t)
	websiteRepo := NewWebsiteRepository(db)
	eventRepo := NewEventRepository(db)
	householdRepo := NewHouseholdRepository(db)

	site, _ := websiteRepo.Create("ab-cd", false, "")
	event, err := eventRepo.Create(models.Event{WebsiteID: site.ID, Name: "Reception", Date: time.Now()})
	if err != nil {
		t.Fatalf("Create event failed: %v", err)
	}

	invited := []models.Invitation{{EventID: event.ID, RSVP: models.RSVPAttending}}
	_, err = householdRepo.CreateHousehold(site.ID, "Doe", []models.Guest{
		{FirstName: "Jane", LastName: "Doe", Invitations: invited},
		{FirstName: "John", LastName: "Doe", Invitations: invited},
		{FirstName: "Judy", LastName: "Doe", Invitations: invited},
	})
	if err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}

	households, err := householdRepo.ListByWebsite(site.ID)
	if err != nil {
		t.Fatalf("ListByWebsite failed: %v", err)
	}
	if len(households) != 1 || len(households[0].Guests) != 3 {
		t.Fatalf("unexpected roster: %+v", households)
	}

	// Every guest in the household must surface their invitation, not just
	// the last one loaded.
	for _, guest := range households[0].Guests {
		inv := guest.InvitationFor(event.ID)
		if inv == nil || inv.RSVP != models.RSVPAttending {
			t.Errorf("guest %s: invitation = %+v, want attending", guest.FullName(), inv)
		}
	}
}

func TestListByWebsiteCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	websiteRepo := NewWebsiteRepository(db)
	householdRepo := NewHouseholdRepository(db)

	site, _ := websiteRepo.Create("ab-cd", false, "")

	// All inserts land within the same wall-clock second; ordering must not
	// depend on timestamp granularity.
	names := []string{"Adams", "Baker", "Clark", "Davis", "Evans"}
	for _, name := range names {
		if _, err := householdRepo.CreateHousehold(site.ID, name, []models.Guest{{FirstName: "A", LastName: name}}); err != nil {
			t.Fatalf("CreateHousehold %s failed: %v", name, err)
		}
	}

	first, err := householdRepo.ListByWebsite(site.ID)
	if err != nil {
		t.Fatalf("ListByWebsite failed: %v", err)
	}
	if len(first) != len(names) {
		t.Fatalf("expected %d households, got %d", len(names), len(first))
	}
	for i, h := range first {
		if h.Name != names[i] {
			t.Fatalf("household[%d] = %q, want %q (creation order)", i, h.Name, names[i])
		}
	}

	// Guests appended later sort after the initial roster.
	if _, err := householdRepo.AddGuest(first[0].ID, "B", "Adams", ""); err != nil {
		t.Fatalf("AddGuest failed: %v", err)
	}
	second, err := householdRepo.ListByWebsite(site.ID)
	if err != nil {
		t.Fatalf("ListByWebsite failed: %v", err)
	}
	adams := second[0].Guests
	if len(adams) != 2 || adams[0].FirstName != "A" || adams[1].FirstName != "B" {
		t.Errorf("roster order = %+v, want A then B", adams)
	}
}

func TestSetRSVPUpsertsAndCollapsesRawValues(t *testing.T) {
	db := setupTestDB(t)
	websiteRepo := NewWebsiteRepository(db)
	eventRepo := NewEventRepository(db)
	householdRepo := NewHouseholdRepository(db)

	site, _ := websiteRepo.Create("ab-cd", false, "")
	event, err := eventRepo.Create(models.Event{WebsiteID: site.ID, Name: "Reception", Date: time.Now()})
	if err != nil {
		t.Fatalf("Create event failed: %v", err)
	}
	household, err := householdRepo.CreateHousehold(site.ID, "Lee", []models.Guest{{FirstName: "Bob", LastName: "Lee"}})
	if err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}
	guestID := household.Guests[0].ID

	if err := householdRepo.SetRSVP(guestID, event.ID, models.RSVPDeclined); err != nil {
		t.Fatalf("SetRSVP failed: %v", err)
	}
	// Second write for the same (guest, event) pair updates in place.
	if err := householdRepo.SetRSVP(guestID, event.ID, models.RSVPAttending); err != nil {
		t.Fatalf("SetRSVP upsert failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM invitations WHERE guest_id = ?", guestID).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("invitation rows = %d, want 1 (at most one per guest/event pair)", count)
	}

	// A legacy free-form value in storage collapses to no response on load.
	if _, err := db.Exec("UPDATE invitations SET rsvp = ? WHERE guest_id = ?", "Maybe", guestID); err != nil {
		t.Fatalf("raw update failed: %v", err)
	}
	households, err := householdRepo.ListByWebsite(site.ID)
	if err != nil {
		t.Fatalf("ListByWebsite failed: %v", err)
	}
	inv := households[0].Guests[0].InvitationFor(event.ID)
	if inv == nil || inv.RSVP != models.RSVPNoResponse {
		t.Errorf("invitation = %+v, want collapsed to no response", inv)
	}
}

func TestEventUpdate(t *testing.T) {
	db := setupTestDB(t)
	websiteRepo := NewWebsiteRepository(db)
	eventRepo := NewEventRepository(db)

	site, _ := websiteRepo.Create("ab-cd", false, "")
	event, err := eventRepo.Create(models.Event{
		WebsiteID: site.ID,
		Name:      "Ceremony",
		Date:      time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create event failed: %v", err)
	}

	event.Name = "Ceremony & Vows"
	event.Venue = "Rose Garden"
	event.StartTime = "15:00"
	if err := eventRepo.Update(*event); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := eventRepo.GetByID(event.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.Name != "Ceremony & Vows" || got.Venue != "Rose Garden" || got.StartTime != "15:00" {
		t.Errorf("updated event = %+v", got)
	}
}
