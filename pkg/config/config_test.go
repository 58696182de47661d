package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("SETTINGS_DRIVER", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.SettingsDriver)
	assert.Equal(t, time.Hour, cfg.JWTTTL())
	lo, hi := cfg.DemoDelay()
	assert.Equal(t, 800*time.Millisecond, lo)
	assert.Equal(t, 3400*time.Millisecond, hi)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nsettings_driver: redis\nredis_addr: localhost:6379\nupload_workers: 5\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("SETTINGS_DRIVER", "")
	t.Setenv("UPLOAD_WORKERS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "redis", cfg.SettingsDriver)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.UploadWorkers)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SETTINGS_DRIVER", "mongo")
	_, err := Load()
	assert.ErrorContains(t, err, "mongo")
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	_, err := Load()
	assert.ErrorContains(t, err, "parse config file")
}
