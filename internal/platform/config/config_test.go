package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGIN", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("QUOTE_SOURCE", "")
	t.Setenv("CACHE_TTL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, QuoteSourceStatic, cfg.QuoteSource)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("ALLOWED_ORIGIN", "https://mood.example.com")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("QUOTE_SOURCE", "Remote")
	t.Setenv("CACHE_TTL", "90s")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "https://mood.example.com", cfg.AllowedOrigin)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, QuoteSourceRemote, cfg.QuoteSource)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("QUOTE_SOURCE", "carrier-pigeon")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("GIN_MODE", "verbose")

	cfg := Load()

	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, QuoteSourceStatic, cfg.QuoteSource)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("MOOD_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("MOOD_TEST_KEY", "fallback"))

	t.Setenv("MOOD_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("MOOD_TEST_KEY", "fallback"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MOOD_DOTENV_KEY=from-file\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Setenv("MOOD_DOTENV_KEY", "")
	require.NoError(t, os.Unsetenv("MOOD_DOTENV_KEY"))

	LoadDotEnv()
	t.Cleanup(func() { _ = os.Unsetenv("MOOD_DOTENV_KEY") })

	assert.Equal(t, "from-file", os.Getenv("MOOD_DOTENV_KEY"))
}
