// SPDX-License-Identifier: MIT

package peeringdb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"neighgen/pkg/cache"
	"neighgen/pkg/config"
	"neighgen/pkg/model"
)

// FullDepth is the traversal depth that expands all membership
// sub-records.
const FullDepth = 3

// Service wraps the API client with the memoized query cache and the
// entity normalizer: one stop from ASN to typed Network records.
type Service struct {
	client *Client
	cache  cache.Cache
	ttl    time.Duration

	// keyCfg is the config blob content-hashed into cache keys, so
	// changing the upstream endpoint or identity never serves stale
	// records from another setup.
	keyCfg map[string]string
}

// NewService creates the lookup service.
func NewService(client *Client, c cache.Cache, cfg *config.Settings) *Service {
	return &Service{
		client: client,
		cache:  c,
		ttl:    cfg.App.Cache.TTL,
		keyCfg: map[string]string{
			"url":  cfg.Sync.URL,
			"user": cfg.Sync.User,
		},
	}
}

// LookupASN fetches (cache-checked first) and normalizes all net records
// matching an ASN. With depth 0 the returned networks carry bare
// membership id lists; FullDepth expands them into typed children.
func (s *Service) LookupASN(ctx context.Context, asn, depth int) ([]*model.Network, error) {
	raws, err := s.fetchRaw(ctx, asn, depth, false)
	if err != nil {
		return nil, err
	}
	nets := make([]*model.Network, 0, len(raws))
	for _, raw := range raws {
		nets = append(nets, model.NewNetworkFromRaw(raw))
	}
	return nets, nil
}

// LookupOne returns the first net record for an ASN, or
// model.ErrASNNotFound when PeeringDB has none.
func (s *Service) LookupOne(ctx context.Context, asn, depth int) (*model.Network, error) {
	nets, err := s.LookupASN(ctx, asn, depth)
	if err != nil {
		return nil, err
	}
	if len(nets) == 0 {
		return nil, fmt.Errorf("AS%d: %w", asn, model.ErrASNNotFound)
	}
	return nets[0], nil
}

// Refresh force-fetches an ASN at full depth, rewriting its cache entry
// regardless of TTL.
func (s *Service) Refresh(ctx context.Context, asn int) (*model.Network, error) {
	raws, err := s.fetchRaw(ctx, asn, FullDepth, true)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("AS%d: %w", asn, model.ErrASNNotFound)
	}
	return model.NewNetworkFromRaw(raws[0]), nil
}

// fetchRaw is the cache-lookaside around the single upstream call site.
// Cache failures degrade to a plain fetch, they never fail the lookup.
func (s *Service) fetchRaw(ctx context.Context, asn, depth int, force bool) ([]map[string]any, error) {
	key := cache.Key("lookup_asn", asn, depth, s.keyCfg)

	if !force {
		if blob, err := s.cache.Get(ctx, key); err == nil {
			var raws []map[string]any
			if err := msgpack.Unmarshal(blob, &raws); err == nil {
				return raws, nil
			}
			log.Printf("WARN: Discarding corrupt cache entry for AS%d: %s", asn, key)
		} else if !errors.Is(err, model.ErrCacheMiss) {
			log.Printf("WARN: Cache read failed for AS%d: %v", asn, err)
		}
	}

	log.Printf("INFO: Fetching PeeringDB records for AS%d (depth %d)", asn, depth)
	raws, err := s.client.FetchNetworks(ctx, asn, depth)
	if err != nil {
		return nil, err
	}

	blob, err := msgpack.Marshal(raws)
	if err != nil {
		log.Printf("WARN: Failed to encode cache entry for AS%d: %v", asn, err)
		return raws, nil
	}
	if err := s.cache.Set(ctx, key, blob, s.ttl); err != nil {
		log.Printf("WARN: Failed to cache records for AS%d: %v", asn, err)
	}
	return raws, nil
}
