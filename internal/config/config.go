package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	TemplatesPath   string
	MigrationsPath  string
	StaticFilesPath string

	// Name of the cookie that carries a visitor's site-password credential.
	// Distinct per deployment so two instances on one domain don't collide.
	PasswordCookieName string

	// TTL for signed share-link tokens embedded in share emails.
	ShareTokenTTL    time.Duration
	ShareTokenSecret string

	AppBaseURL   string
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	EmailDebug   bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		DatabaseType: getEnv("DB_TYPE", "sqlite"),
		DatabasePath: getEnv("DB_PATH", "./wedding.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),

		TemplatesPath:   getEnv("TEMPLATES_PATH", "./internal/templates"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		StaticFilesPath: getEnv("STATIC_PATH", "./static"),

		PasswordCookieName: getEnv("PASSWORD_COOKIE_NAME", "wws_password"),

		ShareTokenTTL:    7 * 24 * time.Hour,
		ShareTokenSecret: getEnv("SHARE_TOKEN_SECRET", ""),

		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "Wedding Website"),
		EmailDebug:   getEnv("EMAIL_DEBUG", "") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
