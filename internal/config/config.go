// Package config loads and validates process configuration from the
// environment. Construction happens exactly once at startup; the struct
// is passed by reference into every component that needs it, and a
// missing required key fails the process before any network call.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config aggregates all runtime settings.
type Config struct {
	// Env selects live scraping ("prod") or deterministic mock data
	// (anything else).
	Env string `validate:"oneof=dev prod"`

	// HTTPPort is the listen port for the serve command.
	HTTPPort string `validate:"required"`

	// LinkedIn session credentials, required for live scraping.
	LinkedInCookie    string `validate:"required_if=Env prod"`
	LinkedInCSRFToken string `validate:"required_if=Env prod"`

	// Search providers. Each scraper is only constructed when its keys
	// are present.
	BingSearchAPIKey     string
	GoogleSearchAPIKey   string
	GoogleSearchEngineID string

	// Gemini settings for job description summarization.
	GeminiAPIKey string
	GeminiModel  string

	// RequestTimeout bounds each outbound HTTP call.
	RequestTimeout time.Duration `validate:"gt=0"`

	// ScrapeRatePerSec paces outbound calls per upstream host.
	ScrapeRatePerSec float64 `validate:"gt=0"`

	// Cooldown bounds for the randomized post-call sleep, in seconds.
	CooldownMinSeconds int `validate:"gte=0"`
	CooldownMaxSeconds int `validate:"gtefield=CooldownMinSeconds"`
}

// Load reads configuration from environment variables, applies defaults,
// and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                  getEnv("APP_ENV", "dev"),
		HTTPPort:             getEnv("PORT", "8080"),
		LinkedInCookie:       os.Getenv("LINKEDIN_COOKIE"),
		LinkedInCSRFToken:    os.Getenv("LINKEDIN_CSRF_TOKEN"),
		BingSearchAPIKey:     os.Getenv("BING_SEARCH_API_KEY"),
		GoogleSearchAPIKey:   os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchEngineID: os.Getenv("GOOGLE_SEARCH_ENGINE_ID"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	var err error
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if cfg.ScrapeRatePerSec, err = strconv.ParseFloat(getEnv("SCRAPE_RATE_PER_SEC", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid SCRAPE_RATE_PER_SEC: %w", err)
	}
	if cfg.CooldownMinSeconds, err = strconv.Atoi(getEnv("COOLDOWN_MIN_SECONDS", "1")); err != nil {
		return nil, fmt.Errorf("invalid COOLDOWN_MIN_SECONDS: %w", err)
	}
	if cfg.CooldownMaxSeconds, err = strconv.Atoi(getEnv("COOLDOWN_MAX_SECONDS", "5")); err != nil {
		return nil, fmt.Errorf("invalid COOLDOWN_MAX_SECONDS: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LiveDataEnabled reports whether scrapers should hit the network
// instead of returning deterministic mock data.
func (c *Config) LiveDataEnabled() bool {
	return c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
