// SPDX-License-Identifier: MIT

package peeringdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"neighgen/pkg/cache"
	"neighgen/pkg/config"
	"neighgen/pkg/model"
	"neighgen/pkg/util/retry"
)

const testNetBody = `{
  "data": [
    {
      "id": 42,
      "name": "Example Net",
      "asn": 65000,
      "info_prefixes4": 500,
      "info_prefixes6": 64,
      "status": "ok",
      "netixlan_set": [
        {"id": 1, "ix_id": 26, "name": "AMS-IX", "ixlan_id": 26,
         "speed": 10000, "asn": 65000, "ipaddr4": "192.0.2.1",
         "ipaddr6": "2001:db8::1", "is_rs_peer": true,
         "operational": true, "status": "ok"}
      ],
      "netfac_set": [],
      "poc_set": []
    }
  ],
  "meta": {}
}`

func fastRetry() retry.Config {
	return retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
}

func testServer(t *testing.T, hits *int, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if r.URL.Path != "/net" {
			t.Errorf("got path %q, want /net", r.URL.Path)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testSettings(url string) *config.Settings {
	return &config.Settings{
		App: config.App{
			Cache: config.Cache{Adapter: "memory", TTL: time.Hour},
		},
		Sync: config.Sync{URL: url, Timeout: 5 * time.Second},
	}
}

func newTestService(t *testing.T, url string) *Service {
	t.Helper()
	cfg := testSettings(url)
	client := NewClient(cfg.Sync)
	client.retryCfg = fastRetry()
	client.limiter = nil
	return NewService(client, cache.NewMemory(), cfg)
}

func TestFetchNetworks(t *testing.T) {
	hits := 0
	srv := testServer(t, &hits, http.StatusOK, testNetBody)

	client := NewClient(config.Sync{URL: srv.URL})
	client.limiter = nil
	raws, err := client.FetchNetworks(context.Background(), 65000, 3)
	if err != nil {
		t.Fatalf("FetchNetworks failed: %v", err)
	}
	if len(raws) != 1 {
		t.Fatalf("got %d records, want 1", len(raws))
	}
	if raws[0]["name"] != "Example Net" {
		t.Errorf("got name %v, want Example Net", raws[0]["name"])
	}
}

func TestFetchNetworksQueryParams(t *testing.T) {
	var gotASN, gotDepth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotASN = r.URL.Query().Get("asn")
		gotDepth = r.URL.Query().Get("depth")
		fmt.Fprint(w, testNetBody)
	}))
	defer srv.Close()

	client := NewClient(config.Sync{URL: srv.URL})
	client.limiter = nil
	if _, err := client.FetchNetworks(context.Background(), 210083, 3); err != nil {
		t.Fatalf("FetchNetworks failed: %v", err)
	}
	if gotASN != "210083" || gotDepth != "3" {
		t.Errorf("got asn=%s depth=%s, want asn=210083 depth=3", gotASN, gotDepth)
	}
}

func TestFetchNetworksRateLimited(t *testing.T) {
	hits := 0
	srv := testServer(t, &hits, http.StatusTooManyRequests, "")

	client := NewClient(config.Sync{URL: srv.URL})
	client.retryCfg = fastRetry()
	client.limiter = nil
	_, err := client.FetchNetworks(context.Background(), 65000, 0)
	if !errors.Is(err, model.ErrRateLimited) {
		t.Errorf("got %v, want wrapped ErrRateLimited", err)
	}
	if hits != 2 {
		t.Errorf("got %d attempts, want 2 (retry once)", hits)
	}
}

func TestFetchNetworksServerError(t *testing.T) {
	hits := 0
	srv := testServer(t, &hits, http.StatusInternalServerError, "boom")

	client := NewClient(config.Sync{URL: srv.URL})
	client.retryCfg = fastRetry()
	client.limiter = nil
	if _, err := client.FetchNetworks(context.Background(), 65000, 0); err == nil {
		t.Fatal("got nil, want error for 500 response")
	}
}

func TestLookupASNUsesCache(t *testing.T) {
	hits := 0
	srv := testServer(t, &hits, http.StatusOK, testNetBody)
	svc := newTestService(t, srv.URL)
	ctx := context.Background()

	nets, err := svc.LookupASN(ctx, 65000, 3)
	if err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	if len(nets) != 1 || nets[0].ASN != 65000 {
		t.Fatalf("got %v, want one network with ASN 65000", nets)
	}
	if hits != 1 {
		t.Fatalf("got %d upstream hits, want 1", hits)
	}

	// Second identical lookup must be served from cache, with the
	// normalized entities surviving the msgpack round-trip intact.
	nets, err = svc.LookupASN(ctx, 65000, 3)
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}
	if hits != 1 {
		t.Errorf("got %d upstream hits after cached lookup, want 1", hits)
	}
	n := nets[0]
	if n.ASN != 65000 || n.Name != "Example Net" || n.InfoPrefixes4 != 500 {
		t.Errorf("cached record decoded wrong: asn=%d name=%q prefixes4=%d",
			n.ASN, n.Name, n.InfoPrefixes4)
	}
	if len(n.Exchanges) != 1 || n.Exchanges[0].IPAddr4 != "192.0.2.1" {
		t.Errorf("cached exchanges decoded wrong: %+v", n.Exchanges)
	}
	if n.Exchanges[0].Parent != n {
		t.Error("cached exchange lost its back-reference")
	}

	// Depth is part of the key: a different depth fetches again.
	if _, err := svc.LookupASN(ctx, 65000, 0); err != nil {
		t.Fatalf("depth-0 lookup failed: %v", err)
	}
	if hits != 2 {
		t.Errorf("got %d upstream hits, want 2 after depth change", hits)
	}
}

func TestLookupOneNotFound(t *testing.T) {
	hits := 0
	srv := testServer(t, &hits, http.StatusOK, `{"data": [], "meta": {}}`)
	svc := newTestService(t, srv.URL)

	_, err := svc.LookupOne(context.Background(), 4200000000, 0)
	if !errors.Is(err, model.ErrASNNotFound) {
		t.Errorf("got %v, want wrapped ErrASNNotFound", err)
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	hits := 0
	srv := testServer(t, &hits, http.StatusOK, testNetBody)
	svc := newTestService(t, srv.URL)
	ctx := context.Background()

	if _, err := svc.LookupASN(ctx, 65000, FullDepth); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if _, err := svc.Refresh(ctx, 65000); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if hits != 2 {
		t.Errorf("got %d upstream hits, want 2 (refresh must bypass cache)", hits)
	}

	// The refreshed entry should serve subsequent lookups.
	if _, err := svc.LookupASN(ctx, 65000, FullDepth); err != nil {
		t.Fatalf("post-refresh lookup failed: %v", err)
	}
	if hits != 2 {
		t.Errorf("got %d upstream hits, want 2 after cached lookup", hits)
	}
}
