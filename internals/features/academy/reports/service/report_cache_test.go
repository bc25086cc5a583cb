package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"academy_backend/internals/features/academy/reports/service"
)

func newRedisCache(t *testing.T, ttl time.Duration) (service.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return service.NewCache(rdb, ttl), mr
}

func TestRedisCacheMissThenHit(t *testing.T) {
	cache, mr := newRedisCache(t, 10*time.Minute)
	ctx := context.Background()
	key := service.CacheKey("top-student", "Math")

	if _, ok := cache.Get(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}

	cache.Set(ctx, key, []byte(`{"success":true}`))

	got, ok := cache.Get(ctx, key)
	if !ok || string(got) != `{"success":true}` {
		t.Fatalf("expected hit, got %q, %v", got, ok)
	}
	if ttl := mr.TTL(key); ttl != 10*time.Minute {
		t.Fatalf("expected ttl 10m, got %v", ttl)
	}

	mr.FastForward(11 * time.Minute)
	if _, ok := cache.Get(ctx, key); ok {
		t.Fatal("expected entry to expire after ttl")
	}
}

func TestRedisCacheServerDown(t *testing.T) {
	cache, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()
	mr.Close()

	// errors degrade to a miss
	cache.Set(ctx, "k", []byte("v"))
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Fatal("expected miss when redis is unreachable")
	}
}

func TestNewCacheWithoutClient(t *testing.T) {
	if _, ok := service.NewCache(nil, time.Minute).(service.NoopCache); !ok {
		t.Fatal("expected NoopCache for nil client")
	}
}
