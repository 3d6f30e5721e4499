package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, 365, cfg.RetentionDays)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
data_dir: /tmp/balju-test
storage: file
retention_days: 30
log_level: debug
branches:
  - 본점
  - 강남점
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/balju-test", cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, []string{"본점", "강남점"}, cfg.Branches)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: redis\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRetentionFallback(t *testing.T) {
	cfg := &Config{RetentionDays: 0}
	assert.Equal(t, 365*24*time.Hour, cfg.Retention())
	cfg.RetentionDays = -5
	assert.Equal(t, 365*24*time.Hour, cfg.Retention())
}

func TestDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	assert.Equal(t, filepath.Join("/data", "balju.db"), cfg.DBPath())

	cfg.DatabasePath = "/elsewhere/orders.db"
	assert.Equal(t, "/elsewhere/orders.db", cfg.DBPath())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, (&Config{}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
}
