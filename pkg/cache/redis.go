// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a shared cache backend for setups where several operators run
// the tool against the same cache.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a redis-backed cache. Host and port fall back to the
// conventional localhost defaults when unset.
func NewRedis(host string, port, db int) *Redis {
	if host == "" {
		host = "127.0.0.1"
	}
	if port == 0 {
		port = 6379
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", host, port),
			DB:   db,
		}),
	}
}

// Get retrieves a value, or errMiss if absent; redis handles expiry.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}
	return val, nil
}

// Set stores a value with the given TTL; ttl <= 0 stores forever.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
