// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"mood_backend/internal/feature/content/adapters/quotable"
	"mood_backend/internal/feature/content/adapters/static"
	"mood_backend/internal/feature/content/adapters/youtube"
	"mood_backend/internal/feature/content/usecase"
	"mood_backend/internal/platform/cache"
	"mood_backend/internal/platform/config"
	infrahttp "mood_backend/internal/platform/http"
)

// NewMusicSource creates the YouTube-backed music source wrapped with Redis caching.
// A nil rdb disables caching.
func NewMusicSource(ctx context.Context, cfg config.Config, rdb *redis.Client) (usecase.MusicSource, error) {
	ytCfg := youtube.LoadConfig()
	if ytCfg.APIKey == "" {
		slog.Warn("YOUTUBE_API_KEY is not set; song lookups will fail")
	}
	src, err := youtube.NewMusicSource(ctx, ytCfg, infrahttp.NewHTTPClient(infrahttp.DefaultTimeout))
	if err != nil {
		return nil, err
	}
	return cache.NewCachingMusicSource(rdb, cfg.CacheTTL, src, "songs"), nil
}

// NewQuoteSource selects the quote source named by cfg.QuoteSource.
// Only the remote source is cached; the static table is already in memory.
func NewQuoteSource(cfg config.Config, rdb *redis.Client) usecase.QuoteSource {
	if cfg.QuoteSource != config.QuoteSourceRemote {
		return static.NewQuoteSource()
	}
	src := quotable.NewQuoteSource(quotable.LoadConfig(), infrahttp.NewHTTPClient(infrahttp.DefaultTimeout))
	return cache.NewCachingQuoteSource(rdb, cfg.CacheTTL, src, "quotes")
}
