package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sultanrasulov/weather-sdk/apierror"
	"github.com/sultanrasulov/weather-sdk/client"
)

// fakeProvider is an httptest server speaking the OpenWeatherMap current
// weather format. It echoes the requested city name and counts requests.
type fakeProvider struct {
	*httptest.Server
	calls  atomic.Int32
	status atomic.Int32
}

func newFakeProvider() *fakeProvider {
	fp := &fakeProvider{}
	fp.status.Store(http.StatusOK)
	fp.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fp.calls.Add(1)
		if status := int(fp.status.Load()); status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"cod":"%d","message":"city not found"}`, status)
			return
		}
		now := time.Now().Unix()
		fmt.Fprintf(w, `{
			"weather": [{"main": "Clear", "description": "clear sky"}],
			"main": {"temp": 285.5, "feels_like": 284.1},
			"visibility": 10000,
			"wind": {"speed": 3.0, "deg": 200},
			"dt": %d,
			"sys": {"sunrise": %d, "sunset": %d},
			"timezone": 0,
			"name": %q
		}`, now, now-6*3600, now+6*3600, r.URL.Query().Get("q"))
	}))
	return fp
}

func TestOnDemandFlow(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	c, err := client.New("test-key", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, client.OnDemand, c.Mode())

	ctx := context.Background()

	w, err := c.Weather(ctx, "London")
	require.NoError(t, err)
	require.Equal(t, "London", w.CityName())
	require.Equal(t, int32(1), fp.calls.Load())

	// Second request is served from cache, case-insensitively.
	w2, err := c.Weather(ctx, "LONDON")
	require.NoError(t, err)
	require.Equal(t, w, w2)
	require.Equal(t, int32(1), fp.calls.Load())

	cached, err := c.IsCached("london")
	require.NoError(t, err)
	require.True(t, cached)
	fresh, err := c.IsFresh("London")
	require.NoError(t, err)
	require.True(t, fresh)

	cities, err := c.CachedCities()
	require.NoError(t, err)
	require.Equal(t, []string{"london"}, cities)

	stats, err := c.CacheStats()
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.Hits)

	// Clearing the cache forces the next request back to the provider.
	require.NoError(t, c.ClearCache())
	_, err = c.Weather(ctx, "London")
	require.NoError(t, err)
	require.Equal(t, int32(2), fp.calls.Load())
}

func TestOnDemandStaleRefetch(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	c, err := client.New("test-key",
		client.WithBaseURL(fp.URL),
		client.WithCacheTTL(30*time.Millisecond),
	)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()

	_, err = c.Weather(ctx, "London")
	require.NoError(t, err)
	require.Equal(t, int32(1), fp.calls.Load())

	time.Sleep(60 * time.Millisecond)

	fresh, err := c.IsFresh("London")
	require.NoError(t, err)
	require.False(t, fresh)

	// Stale entry is not served; the provider is queried again.
	_, err = c.Weather(ctx, "London")
	require.NoError(t, err)
	require.Equal(t, int32(2), fp.calls.Load())
}

func TestFetchFailureLeavesCacheUnchanged(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	c, err := client.New("test-key", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	defer c.Close()

	fp.status.Store(http.StatusNotFound)

	_, err = c.Weather(context.Background(), "Nowhere")
	require.ErrorContains(t, err, `fetch weather for "Nowhere"`)
	require.Equal(t, http.StatusNotFound, apierror.StatusOf(err))

	cached, err := c.IsCached("Nowhere")
	require.NoError(t, err)
	require.False(t, cached)
}

func TestBlankCityRejected(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	c, err := client.New("test-key", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Weather(context.Background(), "  ")
	require.Error(t, err)
	require.Zero(t, fp.calls.Load())
}

func TestClosedClient(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	c, err := client.New("test-key", client.WithBaseURL(fp.URL))
	require.NoError(t, err)

	require.False(t, c.IsClosed())
	require.NoError(t, c.Close())
	require.True(t, c.IsClosed())

	// Close is idempotent.
	require.NoError(t, c.Close())

	_, err = c.Weather(context.Background(), "London")
	require.ErrorIs(t, err, client.ErrClosed)
	_, err = c.IsCached("London")
	require.ErrorIs(t, err, client.ErrClosed)
	_, err = c.IsFresh("London")
	require.ErrorIs(t, err, client.ErrClosed)
	_, err = c.CachedCities()
	require.ErrorIs(t, err, client.ErrClosed)
	_, err = c.CacheStats()
	require.ErrorIs(t, err, client.ErrClosed)
	require.ErrorIs(t, c.ClearCache(), client.ErrClosed)
}

func TestPollingMode(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	c, err := client.New("test-key",
		client.WithBaseURL(fp.URL),
		client.WithMode(client.Polling),
		client.WithPollInterval(20*time.Millisecond),
	)
	require.NoError(t, err)
	require.Equal(t, client.Polling, c.Mode())

	ctx := context.Background()

	// Seed the cache; the background worker then keeps it refreshed.
	_, err = c.Weather(ctx, "London")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return fp.calls.Load() >= 4
	}, 2*time.Second, 5*time.Millisecond)

	// The entry stays fresh without any further caller activity.
	fresh, err := c.IsFresh("London")
	require.NoError(t, err)
	require.True(t, fresh)

	// Close stops the refresher.
	require.NoError(t, c.Close())
	stopped := fp.calls.Load()
	time.Sleep(80 * time.Millisecond)
	require.LessOrEqual(t, fp.calls.Load(), stopped+1, "refresh must stop after Close")
}

func TestOptionValidation(t *testing.T) {
	_, err := client.New("test-key", client.WithCacheCapacity(0))
	require.ErrorContains(t, err, "cache capacity must be positive")

	_, err = client.New("test-key", client.WithCacheTTL(0))
	require.ErrorContains(t, err, "cache ttl must be positive")

	_, err = client.New("test-key", client.WithPollInterval(-time.Minute))
	require.ErrorContains(t, err, "poll interval must be positive")

	_, err = client.New("test-key", client.WithMode(client.Mode(42)))
	require.ErrorContains(t, err, "unknown mode")

	_, err = client.New("")
	require.ErrorContains(t, err, "api key must not be blank")
}
