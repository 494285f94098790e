package pushqueue

import "time"

// Config tunes the Executor. Zero values take the defaults below.
type Config struct {
	// QueueSize bounds the number of pending jobs.
	QueueSize int

	// EnqueueTimeout is how long Submit waits for queue space before
	// returning a QueueFullError.
	EnqueueTimeout time.Duration

	// MaxAttempts caps how many times a recoverable failure is run.
	// 1 disables retry entirely; irrecoverable failures never retry.
	MaxAttempts int

	// BaseBackoff is the initial retry interval.
	BaseBackoff time.Duration

	// MaxInterval caps the exponential backoff growth.
	MaxInterval time.Duration

	// ErrorHandler receives the final error of a job that gave up.
	// It must not block; panics inside it are contained.
	ErrorHandler func(error)
}

func (cfg Config) withDefaults() Config {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 100 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 20 * time.Second
	}
	return cfg
}
