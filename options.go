package tipatask

// This file defines functional options that configure the App during
// construction. Keeping them in a standalone file makes every available
// knob discoverable at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures an App during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*App) error

// WithHTTPTimeout bounds a single snapshot fetch or overwrite. The source
// system had no timeout at all; a long-running process needs one, so the
// default is 30s. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		a.httpTimeout = d
		return nil
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) error {
		a.log = log
		return nil
	}
}

// WithStorePath places the local SQLite store at an explicit path instead
// of the default data dir (~/.tipatask/state.db).
func WithStorePath(path string) Option {
	return func(a *App) error {
		if path == "" {
			return fmt.Errorf("store path must not be empty")
		}
		a.storePath = path
		return nil
	}
}

// WithQueueSize bounds the push queue. Submissions beyond the bound surface
// ErrBackPressure to the mutating accessor.
func WithQueueSize(n int) Option {
	return func(a *App) error {
		if n <= 0 {
			return fmt.Errorf("queue size must be > 0")
		}
		a.queueSize = n
		return nil
	}
}
