package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mood_backend/internal/feature/content/domain/entity"
	"mood_backend/internal/feature/content/usecase"
)

// CachingMusicSource decorates a MusicSource with Redis caching.
// Each (mood, pageToken) pair is cached separately.
type CachingMusicSource struct {
	inner     usecase.MusicSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MusicSource = (*CachingMusicSource)(nil)

// NewCachingMusicSource decorates inner with Redis caching. A nil rdb disables caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "songs".
func NewCachingMusicSource(rdb *redis.Client, ttl time.Duration, inner usecase.MusicSource, namespace string) *CachingMusicSource {
	ttl, namespace = orDefault(ttl, namespace, "songs")
	return &CachingMusicSource{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// Search returns a cached page or asks the inner source.
func (c *CachingMusicSource) Search(ctx context.Context, mood, pageToken string) (*entity.SongPage, error) {
	key := cacheKey(c.namespace, strings.ToLower(mood), pageToken)
	return readThrough(ctx, c.rdb, c.ttl, key, func() (*entity.SongPage, error) {
		return c.inner.Search(ctx, mood, pageToken)
	})
}
