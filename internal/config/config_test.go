package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.False(t, cfg.SyncEnabled())
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.PullInterval)
	assert.Equal(t, 64, cfg.QueueSize)
	assert.Equal(t, ":9090", cfg.MetricsAddr())
	assert.Equal(t, ":8791", cfg.DevKVAddr())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TIPATASK_REMOTE_BASE_URL", "https://kv.example.com/app1")
	t.Setenv("TIPATASK_PULL_INTERVAL", "5s")
	t.Setenv("TIPATASK_QUEUE_SIZE", "8")

	cfg, err := New()
	require.NoError(t, err)

	assert.True(t, cfg.SyncEnabled())
	assert.Equal(t, "https://kv.example.com/app1", cfg.RemoteBaseURL)
	assert.Equal(t, 5*time.Second, cfg.PullInterval)
	assert.Equal(t, 8, cfg.QueueSize)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("TIPATASK_QUEUE_SIZE", "0")
	_, err := New()
	assert.Error(t, err)

	t.Setenv("TIPATASK_QUEUE_SIZE", "8")
	t.Setenv("TIPATASK_HTTP_TIMEOUT", "-1s")
	_, err = New()
	assert.Error(t, err)
}
