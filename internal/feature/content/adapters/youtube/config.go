// Package youtube provides the music source backed by the YouTube Data API v3.
package youtube

import "os"

// DefaultMaxResults caps a single search page.
const DefaultMaxResults = 5

// Config holds configuration for the YouTube Data API client.
type Config struct {
	APIKey     string // YOUTUBE_API_KEY
	BaseURL    string // YOUTUBE_BASE_URL; empty uses the public endpoint
	MaxResults int64
}

// LoadConfig loads YouTube configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:     os.Getenv("YOUTUBE_API_KEY"),
		BaseURL:    os.Getenv("YOUTUBE_BASE_URL"),
		MaxResults: DefaultMaxResults,
	}
}
