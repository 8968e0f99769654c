package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood_backend/internal/feature/content/adapters/static"
	"mood_backend/internal/platform/cache"
	"mood_backend/internal/platform/config"
)

func TestNewQuoteSource(t *testing.T) {
	t.Run("static by default", func(t *testing.T) {
		src := NewQuoteSource(config.Config{QuoteSource: config.QuoteSourceStatic}, nil)
		assert.IsType(t, &static.QuoteSource{}, src)
	})

	t.Run("remote is cached", func(t *testing.T) {
		t.Setenv("QUOTES_BASE_URL", "http://127.0.0.1:1")
		src := NewQuoteSource(config.Config{QuoteSource: config.QuoteSourceRemote}, nil)
		assert.IsType(t, &cache.CachingQuoteSource{}, src)
	})
}

func TestNewMusicSource(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_BASE_URL", "http://127.0.0.1:1")

	src, err := NewMusicSource(context.Background(), config.Config{}, nil)

	require.NoError(t, err)
	assert.IsType(t, &cache.CachingMusicSource{}, src)
}
