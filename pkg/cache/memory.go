// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache. Entries live only for the duration of one
// invocation, so it mainly serves tests and cache-disabled setups.
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates an in-memory cache. Every entry carries its own TTL,
// so no default expiration is configured.
func NewMemory() *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, time.Minute)}
}

// Get retrieves a value, or errMiss if absent or expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, errMiss
	}
	return v.([]byte), nil
}

// Set stores a value with the given TTL; ttl <= 0 stores forever.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(key, value, ttl)
	return nil
}

// Close is a no-op for the memory backend.
func (m *Memory) Close() error { return nil }
