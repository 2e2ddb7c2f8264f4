package refresh

import (
	"fmt"
	"time"
)

const (
	defaultInterval    = 10 * time.Minute
	defaultGracePeriod = 30 * time.Second
)

type config struct {
	interval time.Duration
	grace    time.Duration
	onCycle  func(CycleResult)
}

// Option is a function that sets a value in a config.
type Option func(*config) error

// getOpts creates a config and applies Options to it.
func getOpts(opts []Option) (config, error) {
	cfg := config{
		interval: defaultInterval,
		grace:    defaultGracePeriod,
	}
	for i, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, fmt.Errorf("option %d failed: %s", i, err)
		}
	}
	return cfg, nil
}

// WithInterval sets the time between refresh cycles.
//
// Default is 10 minutes.
func WithInterval(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return fmt.Errorf("interval must be positive, got: %s", d)
		}
		cfg.interval = d
		return nil
	}
}

// WithGracePeriod sets how long Shutdown waits for an in-flight cycle to
// finish before abandoning it.
//
// Default is 30 seconds.
func WithGracePeriod(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return fmt.Errorf("grace period must be positive, got: %s", d)
		}
		cfg.grace = d
		return nil
	}
}

// WithOnCycle sets a hook called with the outcome of every refresh cycle.
// The hook runs on the worker goroutine, so it should return quickly.
func WithOnCycle(fn func(CycleResult)) Option {
	return func(cfg *config) error {
		cfg.onCycle = fn
		return nil
	}
}
