package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mood_backend/internal/feature/content/domain/entity"
	"mood_backend/internal/feature/content/usecase"
)

// CachingQuoteSource decorates a QuoteSource with Redis caching.
// Errors, including usecase.ErrNoQuotes, are never cached.
type CachingQuoteSource struct {
	inner     usecase.QuoteSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.QuoteSource = (*CachingQuoteSource)(nil)

// NewCachingQuoteSource decorates inner with Redis caching. A nil rdb disables caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "quotes".
func NewCachingQuoteSource(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteSource, namespace string) *CachingQuoteSource {
	ttl, namespace = orDefault(ttl, namespace, "quotes")
	return &CachingQuoteSource{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// Quotes returns cached quotes or asks the inner source.
func (c *CachingQuoteSource) Quotes(ctx context.Context, mood string) ([]entity.Quote, error) {
	key := cacheKey(c.namespace, strings.ToLower(strings.TrimSpace(mood)), "")
	return readThrough(ctx, c.rdb, c.ttl, key, func() ([]entity.Quote, error) {
		return c.inner.Quotes(ctx, mood)
	})
}
