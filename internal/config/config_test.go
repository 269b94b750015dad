package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STATUS_URL", "http://panel.example.com/api/status")
	t.Setenv("START_URL", "http://panel.example.com/api/start")
	t.Setenv("GAME_HOST", "surf.example.com")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 27015, cfg.Game.Port)
	assert.Equal(t, "Surf Server", cfg.Game.Name)
	assert.False(t, cfg.Game.A2SEnabled)
	assert.Equal(t, time.Minute, cfg.Poll.Interval)
	assert.Equal(t, 5*time.Second, cfg.Poll.FastInterval)
	assert.Equal(t, 5*time.Minute, cfg.Poll.StartTimeout)
	assert.Equal(t, 3, cfg.Upstream.MaxRetries)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("FAST_POLL_INTERVAL", "2s")
	t.Setenv("GAME_PORT", "27016")

	cfg, err := LoadConfig("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 2*time.Second, cfg.Poll.FastInterval)
	assert.Equal(t, 27016, cfg.Game.Port)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("STATUS_URL", "http://panel.example.com/api/status")
	// START_URL and GAME_HOST missing

	_, err := LoadConfig("does-not-exist.env")
	assert.Error(t, err)
}

func TestLoadConfigInvalidURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STATUS_URL", "not a url")

	_, err := LoadConfig("does-not-exist.env")
	assert.Error(t, err)
}
