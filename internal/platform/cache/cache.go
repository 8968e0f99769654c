// Package cache provides Redis read-through decorators for the content sources.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// readThrough serves key from Redis when possible and otherwise calls load,
// storing its result. Redis failures are logged and never returned.
func readThrough[T any](ctx context.Context, rdb *redis.Client, ttl time.Duration, key string, load func() (T, error)) (T, error) {
	// Redisが未設定の場合はキャッシュをバイパス
	if rdb == nil {
		return load()
	}

	// 1) キャッシュを確認
	if b, err := rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil && !isNil(out) {
			return out, nil
		}
		// 壊れたエントリ（nullを含む）は削除
		_ = rdb.Del(ctx, key).Err()
	} else if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("cache get failed", "error", err, "key", key)
	}

	// 2) 取得元にフォールバック
	out, err := load()
	if err != nil {
		return out, err
	}

	// 3) キャッシュに保存（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		if err := rdb.Set(ctx, key, b, ttl).Err(); err != nil {
			slog.Warn("cache set failed", "error", err, "key", key)
		}
	}
	return out, nil
}

// isNil reports whether v decoded from a JSON null.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// cacheKey builds "<namespace>:<part>:<part>...".
func cacheKey(namespace string, parts ...string) string {
	var b strings.Builder
	b.WriteString(namespace)
	for _, p := range parts {
		fmt.Fprintf(&b, ":%s", safe(p))
	}
	return b.String()
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

func orDefault(ttl time.Duration, namespace, fallback string) (time.Duration, string) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = fallback
	}
	return ttl, namespace
}
