package owm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultBaseURL is the OpenWeatherMap current weather endpoint.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	defaultTimeout = 10 * time.Second
)

type config struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option is a function that sets a value in a config.
type Option func(*config) error

// getOpts creates a config and applies Options to it.
func getOpts(opts []Option) (config, error) {
	cfg := config{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for i, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, fmt.Errorf("option %d failed: %s", i, err)
		}
	}
	return cfg, nil
}

// WithBaseURL sets the API endpoint URL. Intended for directing the client
// at a test server.
//
// Default is DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(cfg *config) error {
		if u != "" {
			cfg.baseURL = u
		}
		return nil
	}
}

// WithClient allows creation of the http client using an underlying network
// round tripper / client.
func WithClient(c *http.Client) Option {
	return func(cfg *config) error {
		if c != nil {
			cfg.httpClient = c
		}
		return nil
	}
}

// WithTimeout sets the timeout for a single API request. This is independent
// of any refresh interval or shutdown grace period used by the packages
// composing this client.
//
// Default is 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got: %s", d)
		}
		cfg.timeout = d
		return nil
	}
}

// WithRetry enables transparent request retries with exponential backoff.
// Setting retryMax to 0 disables retries.
func WithRetry(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(cfg *config) error {
		if retryMax < 0 {
			return fmt.Errorf("retryMax must not be negative, got: %d", retryMax)
		}
		cfg.retryMax = retryMax
		cfg.retryWaitMin = waitMin
		cfg.retryWaitMax = waitMax
		return nil
	}
}

// newHTTPClient builds the http client described by the config, wrapping it
// in a retrying client when retries are enabled.
func (cfg config) newHTTPClient() *http.Client {
	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	if cfg.retryMax == 0 {
		return httpClient
	}

	rclient := &retryablehttp.Client{
		HTTPClient:   httpClient,
		RetryWaitMin: cfg.retryWaitMin,
		RetryWaitMax: cfg.retryWaitMax,
		RetryMax:     cfg.retryMax,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		Backoff:      retryablehttp.DefaultBackoff,
	}
	return rclient.StandardClient()
}
