package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when addr is empty or the server does not answer,
// so callers fall back to running without a cache.
func ConnectRedis(ctx context.Context, addr, password string) *redis.Client {
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, report cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("❌ Redis ping failed (%s): %v, report cache disabled", addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Printf("✅ Redis connected at %s", addr)
	return rdb
}
