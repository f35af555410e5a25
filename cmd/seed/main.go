// Seeds the database with a demo wedding website so the server has
// something to show out of the box. Safe to re-run: it skips seeding when
// the demo site already exists.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/config"
	"github.com/Kenford20/wedding-approuter/internal/database"
	"github.com/Kenford20/wedding-approuter/internal/models"
	"github.com/Kenford20/wedding-approuter/internal/repository"
)

func main() {
	subPath := flag.String("subpath", "dianne-and-kenny", "public sub-path of the demo website")
	password := flag.String("password", "october2026", "site password; empty disables the gate")
	flag.Parse()

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	websiteRepo := repository.NewWebsiteRepository(db)
	eventRepo := repository.NewEventRepository(db)
	householdRepo := repository.NewHouseholdRepository(db)

	existing, err := websiteRepo.GetBySubPath(*subPath)
	if err != nil {
		log.Fatalf("Failed to check for existing website: %v", err)
	}
	if existing != nil {
		log.Printf("Website %q already exists, nothing to do", *subPath)
		return
	}

	site, err := websiteRepo.Create(*subPath, *password != "", *password)
	if err != nil {
		log.Fatalf("Failed to create website: %v", err)
	}
	log.Printf("Created website %q (id %s)", site.SubPath, site.ID)

	ceremony, err := eventRepo.Create(models.Event{
		WebsiteID: site.ID,
		Name:      "Ceremony",
		Date:      time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "3:00 PM",
		EndTime:   "4:00 PM",
		Venue:     "St. Monica's Chapel",
		Attire:    "Formal",
	})
	if err != nil {
		log.Fatalf("Failed to create ceremony: %v", err)
	}

	reception, err := eventRepo.Create(models.Event{
		WebsiteID:   site.ID,
		Name:        "Reception",
		Date:        time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "6:00 PM",
		Venue:       "The Boathouse",
		Description: "Dinner, dancing, and an open bar.",
	})
	if err != nil {
		log.Fatalf("Failed to create reception: %v", err)
	}

	welcomeDrinks, err := eventRepo.Create(models.Event{
		WebsiteID: site.ID,
		Name:      "Welcome Drinks",
		Date:      time.Date(2026, time.October, 9, 0, 0, 0, 0, time.UTC),
		StartTime: "7:00 PM",
		Venue:     "Hotel Rooftop Bar",
	})
	if err != nil {
		log.Fatalf("Failed to create welcome drinks: %v", err)
	}

	bothEvents := []models.Invitation{
		{EventID: ceremony.ID, RSVP: models.RSVPNoResponse},
		{EventID: reception.ID, RSVP: models.RSVPNoResponse},
	}
	allEvents := append([]models.Invitation{{EventID: welcomeDrinks.ID, RSVP: models.RSVPNoResponse}}, bothEvents...)

	households := []struct {
		name   string
		guests []models.Guest
	}{
		{
			name: "The Riveras",
			guests: []models.Guest{
				{FirstName: "Marco", LastName: "Rivera", Email: "marco@example.com", Invitations: allEvents},
				{FirstName: "Elena", LastName: "Rivera", Invitations: allEvents},
			},
		},
		{
			name: "The Chens",
			guests: []models.Guest{
				{FirstName: "Grace", LastName: "Chen", Email: "grace@example.com", Invitations: bothEvents},
				{FirstName: "David", LastName: "Chen", Invitations: bothEvents},
				// Young kids come to the ceremony only.
				{FirstName: "Lily", LastName: "Chen", Invitations: []models.Invitation{{EventID: ceremony.ID, RSVP: models.RSVPNoResponse}}},
			},
		},
		{
			name: "Priya Patel",
			guests: []models.Guest{
				{FirstName: "Priya", LastName: "Patel", Email: "priya@example.com", Invitations: bothEvents},
			},
		},
	}

	var firstGuestID string
	for _, h := range households {
		created, err := householdRepo.CreateHousehold(site.ID, h.name, h.guests)
		if err != nil {
			log.Fatalf("Failed to create household %q: %v", h.name, err)
		}
		if firstGuestID == "" && len(created.Guests) > 0 {
			firstGuestID = created.Guests[0].ID
		}
		log.Printf("Created household %q with %d guests", created.Name, created.GuestCount())
	}

	// Record a couple of responses so the dashboard isn't all "No Response".
	if firstGuestID != "" {
		if err := householdRepo.SetRSVP(firstGuestID, ceremony.ID, models.RSVPAttending); err != nil {
			log.Fatalf("Failed to set rsvp: %v", err)
		}
		if err := householdRepo.SetRSVP(firstGuestID, reception.ID, models.RSVPAttending); err != nil {
			log.Fatalf("Failed to set rsvp: %v", err)
		}
	}

	log.Printf("Seed complete: visit /w/%s", *subPath)
}
