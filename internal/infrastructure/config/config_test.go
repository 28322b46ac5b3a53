package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Bookline", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadProductionStorageFallback(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "/tmp/data", cfg.Storage.Dir)
}

func TestLoadExplicitStorageDirWins(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("STORAGE_DIR", "/var/lib/bookline")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/bookline", cfg.Storage.Dir)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}
