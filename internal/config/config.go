// Package config loads the sync daemon configuration from environment
// variables with the TIPATASK_ prefix.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds every knob the sync core consumes. The remote base URL is
// the only setting that matters for correctness: when it is empty, sync is
// disabled entirely and the application degrades to local-only operation.
type Config struct {
	// RemoteBaseURL is the cloud KV endpoint holding the snapshot
	// document. Empty disables sync.
	RemoteBaseURL string `envconfig:"REMOTE_BASE_URL" default:""`

	// DataDir overrides the local state directory (default ~/.tipatask).
	DataDir string `envconfig:"DATA_DIR" default:""`

	// HTTPTimeout bounds a single snapshot fetch or overwrite.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// PullInterval is how often the daemon merges remote state.
	PullInterval time.Duration `envconfig:"PULL_INTERVAL" default:"30s"`

	// QueueSize bounds pending pushes before back-pressure.
	QueueSize int `envconfig:"QUEUE_SIZE" default:"64"`

	// MetricsPort serves prometheus metrics in `serve` mode. 0 disables.
	MetricsPort int `envconfig:"METRICS_PORT" default:"9090"`

	// DevKVPort is the listen port for the `devkv` emulator command.
	DevKVPort int `envconfig:"DEVKV_PORT" default:"8791"`
}

// New parses environment variables prefixed with TIPATASK_ and logs the
// effective configuration.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TIPATASK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Bool("sync_enabled", cfg.SyncEnabled()).
		Str("data_dir", cfg.DataDir).
		Dur("http_timeout", cfg.HTTPTimeout).
		Dur("pull_interval", cfg.PullInterval).
		Int("queue_size", cfg.QueueSize).
		Int("metrics_port", cfg.MetricsPort).
		Msg("configuration loaded")

	return &cfg, nil
}

// Validate rejects values the engine cannot operate with.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("TIPATASK_HTTP_TIMEOUT must be > 0")
	}
	if c.PullInterval <= 0 {
		return fmt.Errorf("TIPATASK_PULL_INTERVAL must be > 0")
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("TIPATASK_QUEUE_SIZE must be > 0")
	}
	return nil
}

// SyncEnabled reports whether a remote endpoint is configured.
func (c *Config) SyncEnabled() bool {
	return c.RemoteBaseURL != ""
}

// MetricsAddr returns the metrics listen address.
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// DevKVAddr returns the emulator listen address.
func (c *Config) DevKVAddr() string {
	return fmt.Sprintf(":%d", c.DevKVPort)
}
