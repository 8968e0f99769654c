// Package quotable provides a quote source backed by a Quotable-compatible HTTP API.
package quotable

import (
	"os"
	"strconv"
)

const (
	// DefaultBaseURL is the public Quotable API.
	DefaultBaseURL = "https://api.quotable.io"
	// DefaultLimit is the number of quotes requested per lookup.
	DefaultLimit = 5
)

// Config holds configuration for the quotes API client.
type Config struct {
	BaseURL string
	Limit   int
}

// LoadConfig loads quotes API configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{BaseURL: os.Getenv("QUOTES_BASE_URL"), Limit: DefaultLimit}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if n, err := strconv.Atoi(os.Getenv("QUOTES_LIMIT")); err == nil && n > 0 {
		cfg.Limit = n
	}
	return cfg
}
