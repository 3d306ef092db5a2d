// internal/config/write_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frameflux", "config.toml")

	require.NoError(t, WriteDefault(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")
	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "[catalog]")
	assert.Contains(t, string(content), "${OMDB_API_KEY:-}")
}

func TestWriteDefault_LoadsWithoutEnv(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("TMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Empty(t, cfg.OMDb.APIKey)
	assert.True(t, cfg.Catalog.Fallback)
	assert.Equal(t, 6*time.Hour, cfg.Cache.ContentTTL)
	assert.Equal(t, 24*time.Hour, cfg.TMDB.FindCacheTTL)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "config.toml")

	require.NoError(t, WriteDefault(path))

	_, err := os.Stat(path)
	assert.NoError(t, err, "file was not created")
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Host: "127.0.0.1", Port: 9000, LogLevel: "debug"},
		Catalog: CatalogConfig{IDs: []string{"tt0111161"}, Fallback: false},
		Cache:   CacheConfig{ContentTTL: 0, SearchTTL: 30 * time.Minute},
		OMDb:    OMDbConfig{APIKey: "k"},
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "127.0.0.1")
	assert.Contains(t, string(content), "9000")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tt0111161"}, got.Catalog.IDs)
	assert.False(t, got.Catalog.Fallback)
	assert.Zero(t, got.Cache.ContentTTL, "explicit zero TTL survives defaults")
	assert.Equal(t, 30*time.Minute, got.Cache.SearchTTL)
}
