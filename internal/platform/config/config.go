// Package config loads process-wide settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// QuoteSourceStatic serves quotes from the curated in-process table.
	QuoteSourceStatic = "static"
	// QuoteSourceRemote forwards quote lookups to the quotes provider.
	QuoteSourceRemote = "remote"
)

// Config holds the HTTP server and feature settings.
// Database and provider settings live next to the packages that use them.
type Config struct {
	Port          string        // listen port
	AllowedOrigin string        // single cross-origin caller allowed by CORS
	GinMode       string        // gin.DebugMode / gin.ReleaseMode / gin.TestMode
	QuoteSource   string        // QuoteSourceStatic or QuoteSourceRemote
	CacheTTL      time.Duration // TTL of cached provider responses
}

// LoadDotEnv reads the file named by ENV_FILE (default ".env") into the environment.
// Variables already set in the environment are not overridden.
func LoadDotEnv() {
	envFile := GetEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("env file not found; using system environment variables", "file", envFile)
	}
}

// Load builds a Config from environment variables.
func Load() Config {
	return Config{
		Port:          GetEnv("PORT", "8080"),
		AllowedOrigin: GetEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		GinMode:       parseGinMode(os.Getenv("GIN_MODE")),
		QuoteSource:   parseQuoteSource(os.Getenv("QUOTE_SOURCE")),
		CacheTTL:      parseDuration(os.Getenv("CACHE_TTL"), 10*time.Minute),
	}
}

// GetEnv returns the value of key, or fallback when the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseQuoteSource(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), QuoteSourceRemote) {
		return QuoteSourceRemote
	}
	return QuoteSourceStatic
}

// parseGinMode accepts the modes gin.SetMode understands; anything else is debug.
func parseGinMode(s string) string {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case "release", "test":
		return m
	default:
		return "debug"
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "value", s, "default", fallback)
		return fallback
	}
	return d
}
