// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/vmihailenco/msgpack/v5"

	"neighgen/pkg/model"
)

// LevelDB is the on-disk cache backend, persisting entries across CLI
// invocations. Values are msgpack-framed with their expiry timestamp;
// expiry is checked on read and stale entries are deleted lazily.
type LevelDB struct {
	db     *leveldb.DB
	mu     sync.RWMutex
	path   string
	closed bool
}

type levelEntry struct {
	Value   []byte
	Expires time.Time
}

// OpenLevelDB opens or creates the cache database at path.
func OpenLevelDB(path string) (*LevelDB, error) {
	opts := &opt.Options{
		Compression: opt.SnappyCompression,
	}
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	return &LevelDB{db: db, path: path}, nil
}

// Path returns the database path.
func (l *LevelDB) Path() string { return l.path }

// Get retrieves a value, or errMiss if absent or expired.
func (l *LevelDB) Get(_ context.Context, key string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, model.ErrCacheClosed
	}

	raw, err := l.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, errMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var entry levelEntry
	if err := msgpack.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("cache entry corrupt: %w", err)
	}
	if !entry.Expires.IsZero() && time.Now().After(entry.Expires) {
		// Lazy cleanup; ignore delete failures, the entry is stale
		// either way.
		_ = l.db.Delete([]byte(key), nil)
		return nil, errMiss
	}
	return entry.Value, nil
}

// Set stores a value with the given TTL; ttl <= 0 stores forever.
func (l *LevelDB) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return model.ErrCacheClosed
	}

	entry := levelEntry{Value: value}
	if ttl > 0 {
		entry.Expires = time.Now().Add(ttl)
	}
	raw, err := msgpack.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	return l.db.Put([]byte(key), raw, nil)
}

// Close closes the database.
func (l *LevelDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return model.ErrCacheClosed
	}
	l.closed = true
	return l.db.Close()
}
