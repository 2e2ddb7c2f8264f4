// Package owm is an HTTP client for the OpenWeatherMap current weather API,
// together with the mapping from provider responses to weather domain
// values.
package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sultanrasulov/weather-sdk/apierror"
)

// ErrEmptyCity is returned when a blank city name is given.
var ErrEmptyCity = errors.New("city name must not be blank")

// Client is an http client for the OpenWeatherMap current weather API.
type Client struct {
	c      *http.Client
	apiKey string
	url    *url.URL
}

// New creates a new current weather API client authenticated by apiKey.
func New(apiKey string, options ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("api key must not be blank")
	}

	opts, err := getOpts(options)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(opts.baseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url must have http or https scheme: %s", opts.baseURL)
	}

	return &Client{
		c:      opts.newHTTPClient(),
		apiKey: apiKey,
		url:    u,
	}, nil
}

// CurrentWeather fetches the current weather observation for the named city.
// A non-success response is returned as an *apierror.Error carrying the HTTP
// status, so that callers can tell an unknown city (404) from an invalid key
// (401), rate limiting (429) or a server error (5xx).
func (c *Client) CurrentWeather(ctx context.Context, city string) (*CurrentResponse, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}

	u := *c.url
	query := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apierror.FromResponse(resp.StatusCode, body)
	}

	var current CurrentResponse
	if err = json.Unmarshal(body, &current); err != nil {
		return nil, fmt.Errorf("cannot decode weather response: %w", err)
	}
	return &current, nil
}

// String returns a description of the client's endpoint.
func (c *Client) String() string {
	return c.url.String()
}
