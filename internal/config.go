package internal

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Config holds demo server settings.
type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Catalogue seeding and paging defaults
	CatalogSize int // number of items seeded into the in-memory catalogue
	PageSize    int // items shown per page
	MaxVisible  int // page buttons shown at once

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		CatalogSize: getEnvInt("CATALOG_SIZE", 137),
		PageSize:    getEnvInt("PAGE_SIZE", 10),
		MaxVisible:  getEnvInt("MAX_VISIBLE_PAGES", 7),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// The engine treats these as hard preconditions, so reject bad values at
	// startup instead of panicking mid-request.
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1, got: %d", cfg.PageSize)
	}
	if cfg.MaxVisible < 1 {
		return nil, fmt.Errorf("MAX_VISIBLE_PAGES must be at least 1, got: %d", cfg.MaxVisible)
	}
	if cfg.CatalogSize < 0 {
		return nil, fmt.Errorf("CATALOG_SIZE must not be negative, got: %d", cfg.CatalogSize)
	}

	return cfg, nil
}
