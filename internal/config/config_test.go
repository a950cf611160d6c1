package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, SnapshotBackendFile, cfg.Snapshot.Backend)
	assert.Equal(t, "data/agency.json", cfg.Snapshot.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Autosave.Enabled)
	assert.Equal(t, 60*time.Second, cfg.Autosave.Interval)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nSNAPSHOT_BACKEND=Redis\nAUTOSAVE_ENABLED=true\nAUTOSAVE_INTERVAL=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("API_ENV", "production")
	t.Setenv("SNAPSHOT_REDIS_KEY", "agency:test")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, SnapshotBackendRedis, cfg.Snapshot.Backend)
	assert.Equal(t, "agency:test", cfg.Snapshot.RedisKey)
	assert.True(t, cfg.Autosave.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Autosave.Interval)
}

func TestLoadFrom_UnknownBackend(t *testing.T) {
	t.Setenv("SNAPSHOT_BACKEND", "postgres")
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
