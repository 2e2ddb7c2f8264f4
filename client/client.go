// Package client is the SDK entry point: a per-API-key weather client that
// composes the provider client, the bounded cache and, in polling mode, a
// background refresher, plus a registry that guarantees at most one client
// per API key.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"
	"github.com/sultanrasulov/weather-sdk/owm"
	"github.com/sultanrasulov/weather-sdk/refresh"
	"github.com/sultanrasulov/weather-sdk/wcache"
	"github.com/sultanrasulov/weather-sdk/weather"
)

var log = logging.Logger("weathersdk")

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("client closed")

// Client provides cached access to current weather data for one API key.
// It is safe for concurrent use.
type Client struct {
	owm       *owm.Client
	cache     *wcache.Cache
	refresher *refresh.Refresher // nil in OnDemand mode
	mode      Mode
	closed    atomic.Bool
}

// New creates a weather client authenticated by apiKey. In Polling mode the
// client owns a background refresher, started immediately; call Close to
// stop it.
func New(apiKey string, options ...Option) (*Client, error) {
	opts, err := getOpts(options)
	if err != nil {
		return nil, err
	}

	owmOpts := []owm.Option{owm.WithBaseURL(opts.baseURL)}
	if opts.httpClient != nil {
		owmOpts = append(owmOpts, owm.WithClient(opts.httpClient))
	}
	provider, err := owm.New(apiKey, owmOpts...)
	if err != nil {
		return nil, err
	}

	cache, err := wcache.New(opts.capacity, opts.ttl)
	if err != nil {
		return nil, err
	}

	c := &Client{
		owm:   provider,
		cache: cache,
		mode:  opts.mode,
	}

	if opts.mode == Polling {
		c.refresher, err = refresh.New(refresh.SourceFunc(c.fetch), cache,
			refresh.WithInterval(opts.pollInterval))
		if err != nil {
			return nil, err
		}
		c.refresher.Start()
	}

	log.Debugw("Client created", "mode", opts.mode, "capacity", opts.capacity, "ttl", opts.ttl)
	return c, nil
}

// Mode returns the client's consistency policy.
func (c *Client) Mode() Mode {
	return c.mode
}

// Weather returns the current weather for the named city. A cached fresh
// snapshot is returned directly; otherwise the provider is queried and the
// cache updated. A provider or mapping failure leaves the cache unchanged.
func (c *Client) Weather(ctx context.Context, city string) (weather.Weather, error) {
	if c.closed.Load() {
		return weather.Weather{}, ErrClosed
	}

	cached, ok, err := c.cache.Get(city)
	if err != nil {
		return weather.Weather{}, err
	}
	if ok {
		return cached, nil
	}

	w, err := c.fetch(ctx, city)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("fetch weather for %q: %w", city, err)
	}
	if err = c.cache.Put(city, w); err != nil {
		return weather.Weather{}, err
	}
	return w, nil
}

// IsCached reports whether the named city has a cache entry, fresh or stale.
func (c *Client) IsCached(city string) (bool, error) {
	if c.closed.Load() {
		return false, ErrClosed
	}
	return c.cache.Contains(city)
}

// IsFresh reports whether the named city has a cache entry within the TTL.
func (c *Client) IsFresh(city string) (bool, error) {
	if c.closed.Load() {
		return false, ErrClosed
	}
	return c.cache.IsFresh(city)
}

// CachedCities returns the normalized names of all cached cities, fresh and
// stale, from least to most recently touched.
func (c *Client) CachedCities() ([]string, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.cache.Keys(), nil
}

// CacheStats returns the cache counters.
func (c *Client) CacheStats() (wcache.Stats, error) {
	if c.closed.Load() {
		return wcache.Stats{}, ErrClosed
	}
	return c.cache.Stats(), nil
}

// ClearCache removes all cached snapshots. Subsequent Weather calls fetch
// fresh data from the provider.
func (c *Client) ClearCache() error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.cache.Clear()
	return nil
}

// Close stops the background refresher, if any, and clears the cache. After
// Close every operation returns ErrClosed. Close is safe to call multiple
// times.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.refresher != nil {
		c.refresher.Shutdown()
	}
	c.cache.Clear()
	return nil
}

// IsClosed reports whether the client has been closed.
func (c *Client) IsClosed() bool {
	return c.closed.Load()
}

// fetch queries the provider and maps the response to a domain value. It is
// also the refresher's source in Polling mode.
func (c *Client) fetch(ctx context.Context, city string) (weather.Weather, error) {
	resp, err := c.owm.CurrentWeather(ctx, city)
	if err != nil {
		return weather.Weather{}, err
	}
	return owm.MapWeather(resp)
}
