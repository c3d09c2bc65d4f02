package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
  allowed_origins:
    - https://shop.example.com
storage:
  database_path: /data/store.db
uploads:
  dir: /data/uploads
shipping:
  free_threshold: 75
  fee: 6.50
observability:
  logging:
    level: debug
    format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/data/store.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "/data/uploads", cfg.Uploads.Dir)
	assert.Equal(t, 75.0, cfg.Shipping.FreeThreshold)
	assert.Equal(t, 6.50, cfg.Shipping.Fee)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_STORE_DB", "/tmp/expanded.db")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "storage:\n  database_path: ${TEST_STORE_DB}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/expanded.db", cfg.Storage.DatabasePath)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "storefront.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, 50.0, cfg.Shipping.FreeThreshold)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_PORT", "8181")
	t.Setenv("STOREFRONT_DB_PATH", "env.db")
	t.Setenv("STOREFRONT_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("STOREFRONT_SHIPPING_FEE", "9.99")

	cfg := LoadFromEnv()

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 9.99, cfg.Shipping.Fee)
}

func TestLoadOrEnvWithPath_FallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath("/nonexistent/config.yaml")

	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}
