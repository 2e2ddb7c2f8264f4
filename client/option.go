package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sultanrasulov/weather-sdk/wcache"
)

const defaultPollInterval = 10 * time.Minute

// Mode selects the SDK's consistency policy.
type Mode int

const (
	// OnDemand fetches from the provider only when a requested city is
	// missing from the cache or stale.
	OnDemand Mode = iota
	// Polling additionally refreshes every cached city in the background,
	// so repeat requests are served from cache with no provider latency.
	Polling
)

func (m Mode) String() string {
	switch m {
	case OnDemand:
		return "on-demand"
	case Polling:
		return "polling"
	}
	return "unknown"
}

type config struct {
	mode         Mode
	capacity     int
	ttl          time.Duration
	pollInterval time.Duration
	baseURL      string
	httpClient   *http.Client
}

// Option is a function that sets a value in a config.
type Option func(*config) error

// getOpts creates a config and applies Options to it.
func getOpts(opts []Option) (config, error) {
	cfg := config{
		mode:         OnDemand,
		capacity:     wcache.DefaultCapacity,
		ttl:          wcache.DefaultTTL,
		pollInterval: defaultPollInterval,
	}
	for i, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, fmt.Errorf("option %d failed: %s", i, err)
		}
	}
	return cfg, nil
}

// WithMode sets the consistency policy.
//
// Default is OnDemand.
func WithMode(m Mode) Option {
	return func(cfg *config) error {
		if m != OnDemand && m != Polling {
			return fmt.Errorf("unknown mode: %d", m)
		}
		cfg.mode = m
		return nil
	}
}

// WithCacheCapacity sets the maximum number of cached cities.
//
// Default is 10.
func WithCacheCapacity(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("cache capacity must be positive, got: %d", n)
		}
		cfg.capacity = n
		return nil
	}
}

// WithCacheTTL sets the time-to-live of a cached snapshot.
//
// Default is 10 minutes.
func WithCacheTTL(ttl time.Duration) Option {
	return func(cfg *config) error {
		if ttl <= 0 {
			return fmt.Errorf("cache ttl must be positive, got: %s", ttl)
		}
		cfg.ttl = ttl
		return nil
	}
}

// WithPollInterval sets the time between background refresh cycles in
// Polling mode. It has no effect in OnDemand mode.
//
// Default is 10 minutes.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive, got: %s", d)
		}
		cfg.pollInterval = d
		return nil
	}
}

// WithBaseURL sets the provider API endpoint. Intended for directing the SDK
// at a test server.
func WithBaseURL(u string) Option {
	return func(cfg *config) error {
		cfg.baseURL = u
		return nil
	}
}

// WithHTTPClient allows creation of the provider client using an underlying
// network round tripper / client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) error {
		cfg.httpClient = c
		return nil
	}
}
