// SPDX-License-Identifier: MIT

// Package cache provides the lookup cache used to memoize PeeringDB
// queries, with memory, leveldb and redis backends selected by
// configuration.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"neighgen/pkg/config"
	"neighgen/pkg/model"
)

// Cache is the key-value boundary the lookup layer talks to. Get returns
// model.ErrCacheMiss for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Open selects and opens the configured backend.
func Open(cfg config.Cache) (Cache, error) {
	switch strings.ToLower(cfg.Adapter) {
	case "", "memory", "mem":
		return NewMemory(), nil
	case "leveldb", "ldb", "disk":
		return OpenLevelDB(cfg.Path)
	case "redis":
		return NewRedis(cfg.Host, cfg.Port, cfg.DB), nil
	}
	return nil, fmt.Errorf("unknown cache adapter %q", cfg.Adapter)
}

// Key builds the stable composite cache key for a memoized call: function
// name, ASN and depth verbatim, plus a content hash of any extra config so
// identical (asn, depth, config) triples always hit the same entry.
func Key(fn string, asn, depth int, cfg any) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%v", cfg)))
	return fmt.Sprintf("ngen:%s:%d:%d:%s", fn, asn, depth, hex.EncodeToString(sum[:]))
}

// miss is a shared alias so adapters report the same sentinel.
var errMiss = model.ErrCacheMiss
