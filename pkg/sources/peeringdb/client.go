// SPDX-License-Identifier: MIT

// Package peeringdb fetches network records from the PeeringDB API and
// memoizes them through the configured cache backend.
package peeringdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"neighgen/pkg/config"
	"neighgen/pkg/model"
	"neighgen/pkg/util/retry"
)

const (
	defaultBaseURL = "https://www.peeringdb.com/api"
	defaultTimeout = 30 * time.Second

	// Unauthenticated PeeringDB allows bursts but throttles sustained
	// query rates; one request per second stays well inside that.
	defaultRateLimit = 1.0
)

// Client is a PeeringDB API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	user       string
	password   string
	retryCfg   retry.Config
}

// NewClient creates a PeeringDB client from the sync settings. Credentials
// are optional; authenticated requests get higher rate limits upstream.
func NewClient(cfg config.Sync) *Client {
	baseURL := cfg.URL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), 2),
		userAgent:  "neighgen",
		user:       cfg.User,
		password:   cfg.Password,
		retryCfg:   retry.DefaultConfig(),
	}
}

// envelope is PeeringDB's response wrapper for the net resource.
type envelope struct {
	Data []map[string]any `json:"data"`
	Meta struct {
		Error string `json:"error"`
	} `json:"meta"`
}

// FetchNetworks retrieves the raw net records for an ASN. depth controls
// whether the exchange/facility/contact sub-records come back expanded
// (depth >= 1) or as bare id lists (depth 0).
func (c *Client) FetchNetworks(ctx context.Context, asn, depth int) ([]map[string]any, error) {
	url := fmt.Sprintf("%s/net?asn=%d&depth=%d", c.baseURL, asn, depth)

	var env envelope
	err := retry.Do(ctx, c.retryCfg, func() error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("rate limit: %w", err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		if c.user != "" {
			req.SetBasicAuth(c.user, c.password)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			log.Printf("WARN: Rate limited by PeeringDB for AS%d", asn)
			return model.ErrRateLimited
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
		}

		env = envelope{}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return fmt.Errorf("failed to parse PeeringDB response: %w", err)
		}
		if env.Meta.Error != "" {
			return fmt.Errorf("PeeringDB error: %s", env.Meta.Error)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("PeeringDB query failed for AS%d: %w", asn, err)
	}

	return env.Data, nil
}
