package registry

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedisCache builds the Redis client used to cache registry lookups.
//
// Supported env vars:
//   - REDIS_ADDR (host:port; empty disables caching)
//   - REDIS_PASSWORD (optional)
//
// The cache is optional infrastructure: when the address is unset or the
// server is unreachable at startup, the function returns nil and lookups
// simply skip the cache.
func NewRedisCache() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unreachable, cnpj cache disabled")
		return nil
	}
	return client
}
