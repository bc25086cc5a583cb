// internals/features/academy/reports/service/report_cache.go
package service

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "academy:reports:"

// Cache stores encoded report responses. Seeded data never changes, so entries
// only expire by TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// CacheKey builds a stable key from a report name and its filters.
func CacheKey(report string, params ...string) string {
	escaped := make([]string, len(params))
	for i, p := range params {
		escaped[i] = url.QueryEscape(p)
	}
	return cacheKeyPrefix + report + ":" + strings.Join(escaped, "|")
}

type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (NoopCache) Set(context.Context, string, []byte)        {}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache returns a RedisCache, or NoopCache when rdb is nil.
func NewCache(rdb *redis.Client, ttl time.Duration) Cache {
	if rdb == nil {
		return NoopCache{}
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] report cache get %s: %v", key, err)
		}
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.Printf("[WARN] report cache set %s: %v", key, err)
	}
}
