package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/config"
	"github.com/Kenford20/wedding-approuter/internal/database"
	"github.com/Kenford20/wedding-approuter/internal/handlers"
	"github.com/Kenford20/wedding-approuter/internal/repository"
	"github.com/Kenford20/wedding-approuter/internal/security"
	"github.com/Kenford20/wedding-approuter/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize repositories
	websiteRepo := repository.NewWebsiteRepository(db)
	eventRepo := repository.NewEventRepository(db)
	householdRepo := repository.NewHouseholdRepository(db)

	// Initialize services
	fetcher := service.NewRepositoryFetcher(eventRepo, householdRepo)
	siteService := service.NewSiteService(websiteRepo, fetcher)
	guestListService := service.NewGuestListService(eventRepo, householdRepo)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	if !emailService.IsEnabled() {
		log.Println("Email service disabled (no SES_FROM_EMAIL configured)")
	}

	var shareTokens *security.ShareTokenSigner
	if cfg.ShareTokenSecret != "" {
		shareTokens = security.NewShareTokenSigner(cfg.ShareTokenSecret, cfg.ShareTokenTTL)
	} else {
		log.Println("Share links disabled (no SHARE_TOKEN_SECRET configured)")
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(security.NewRateLimiter(10, time.Minute))
	siteHandler := handlers.NewSiteHandler(siteService, shareTokens, templates, cfg.PasswordCookieName)
	guestListHandler := handlers.NewGuestListHandler(guestListService, emailService, shareTokens, websiteRepo, templates)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Public guest-facing routes
	mux.HandleFunc("GET /w/{subPath}", siteHandler.ShowWebsite)
	mux.HandleFunc("POST /w/{subPath}/password", middleware.RateLimit(siteHandler.SubmitPassword))
	mux.HandleFunc("POST /w/{subPath}/signout", siteHandler.SignOut)

	// Host dashboard routes
	mux.HandleFunc("GET /dashboard/{websiteID}/guests", guestListHandler.ShowGuests)
	mux.HandleFunc("GET /dashboard/{websiteID}/guests/download", guestListHandler.DownloadGuests)
	mux.HandleFunc("POST /dashboard/{websiteID}/households", guestListHandler.CreateHousehold)
	mux.HandleFunc("POST /dashboard/{websiteID}/households/{householdID}/guests", guestListHandler.AddGuest)
	mux.HandleFunc("POST /dashboard/{websiteID}/households/{householdID}/delete", guestListHandler.DeleteHousehold)
	mux.HandleFunc("POST /dashboard/{websiteID}/guests/{guestID}/rsvp", guestListHandler.SetRSVP)
	mux.HandleFunc("POST /dashboard/{websiteID}/guests/{guestID}/uninvite", guestListHandler.Uninvite)
	mux.HandleFunc("POST /dashboard/{websiteID}/settings/password", guestListHandler.UpdateSitePassword)
	mux.HandleFunc("GET /dashboard/{websiteID}/events/{eventID}/edit", guestListHandler.ShowEditEvent)
	mux.HandleFunc("POST /dashboard/{websiteID}/events/{eventID}", guestListHandler.UpdateEvent)
	mux.HandleFunc("POST /dashboard/{websiteID}/share", guestListHandler.ShareWebsite)
	mux.HandleFunc("POST /dashboard/{websiteID}/reminders", guestListHandler.SendReminders)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	baseTemplate := filepath.Join(templatesPath, "base.tmpl")

	patterns := []string{
		filepath.Join(templatesPath, "site/*.tmpl"),
		filepath.Join(templatesPath, "dashboard/*.tmpl"),
	}

	var files []string
	files = append(files, baseTemplate)

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	// Define template functions
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"lower": strings.ToLower,
	}

	return template.New("").Funcs(funcMap).ParseFiles(files...)
}
