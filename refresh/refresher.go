package refresh

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"github.com/sultanrasulov/weather-sdk/weather"
)

var log = logging.Logger("refresh")

// Source fetches a fresh weather snapshot for one city.
type Source interface {
	Fetch(ctx context.Context, city string) (weather.Weather, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, city string) (weather.Weather, error)

func (f SourceFunc) Fetch(ctx context.Context, city string) (weather.Weather, error) {
	return f(ctx, city)
}

// Store is the cache surface the refresher works against: it enumerates the
// currently cached cities and republishes fresh values for them.
type Store interface {
	Keys() []string
	Put(city string, w weather.Weather) error
}

// CycleResult is the outcome of one refresh cycle.
type CycleResult struct {
	// Keys is the number of cities in the cycle's snapshot.
	Keys int
	// Updated is the number of cities successfully refreshed.
	Updated int
	// Err aggregates the per-city failures, or is nil when every city
	// refreshed.
	Err error
	// Elapsed is the cycle's wall-clock duration.
	Elapsed time.Duration
}

// Refresher periodically refreshes every city in a Store from a Source.
type Refresher struct {
	source   Source
	store    Store
	interval time.Duration
	grace    time.Duration
	onCycle  func(CycleResult)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a Refresher that reads keys from store and republishes values
// fetched from source.
func New(source Source, store Store, options ...Option) (*Refresher, error) {
	if source == nil {
		return nil, errors.New("source must not be nil")
	}
	if store == nil {
		return nil, errors.New("store must not be nil")
	}
	opts, err := getOpts(options)
	if err != nil {
		return nil, err
	}
	return &Refresher{
		source:   source,
		store:    store,
		interval: opts.interval,
		grace:    opts.grace,
		onCycle:  opts.onCycle,
	}, nil
}

// Start launches the background worker. The first cycle runs immediately,
// then one cycle runs every interval. Start returns without waiting for the
// first cycle and is a no-op when the refresher is already running.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	r.running = true

	go r.run(ctx, done)
}

// Shutdown stops the background worker. The refresher reports not running as
// soon as Shutdown is entered. Shutdown waits up to the grace period for an
// in-flight cycle to finish, then abandons it; the worker still exits once
// its current fetch returns. Shutdown is a no-op when already stopped.
func (r *Refresher) Shutdown() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel := r.cancel
	done := r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	// Cancel outside the lock so a hung cycle cannot block IsRunning or a
	// concurrent Start.
	cancel()

	select {
	case <-done:
	case <-time.After(r.grace):
		log.Warnw("Refresh worker did not stop within grace period, abandoning wait", "grace", r.grace)
	}
}

// IsRunning reports whether the background worker is active. It is updated
// synchronously by Start and Shutdown.
func (r *Refresher) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Refresher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	log.Infow("Refresh worker started", "interval", r.interval)

	r.cycle(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infow("Refresh worker stopped")
			return
		case <-ticker.C:
			r.cycle(ctx)
		}
	}
}

// cycle refreshes every city cached at the start of the cycle. Per-city
// failures are collected and reported through the hook, never returned to
// the worker loop.
func (r *Refresher) cycle(ctx context.Context) {
	start := time.Now()
	keys := r.store.Keys()

	var updated int
	var errs error
	for _, city := range keys {
		if ctx.Err() != nil {
			return
		}
		w, err := r.source.Fetch(ctx, city)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Errorw("Cannot refresh city, keeping cached value", "city", city, "err", err)
			errs = multierror.Append(errs, err)
			continue
		}
		if err = r.store.Put(city, w); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		updated++
	}

	if len(keys) != 0 {
		log.Debugw("Refresh cycle finished", "cities", len(keys), "updated", updated, "elapsed", time.Since(start))
	}

	if r.onCycle != nil {
		r.onCycle(CycleResult{
			Keys:    len(keys),
			Updated: updated,
			Err:     errs,
			Elapsed: time.Since(start),
		})
	}
}
