package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage:
  driver: "sqlite"
  sqlite_path: "/tmp/hub.db"
http_server:
  address: "0.0.0.0:9000"
  timeout: 2s
auth:
  jwt_secret: "secret"
payments:
  pending_ttl: 30m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/hub.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "RUB", cfg.Payments.Currency)
	assert.Equal(t, 30*time.Minute, cfg.Payments.PendingTTL)
	assert.Equal(t, 24*time.Hour, cfg.Payments.CancelCutoff)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Empty(t, cfg.Auth.BootstrapAdmin.Username)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
env: "local"
auth:
  jwt_secret: "from-file"
  bootstrap_admin:
    username: "admin"
    email: "admin@example.com"
payments:
  currency: "RUB"
`)

	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("PAYMENTS_CURRENCY", "EUR")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("AUTH_ADMIN_USERNAME", "root")
	t.Setenv("AUTH_ADMIN_PASSWORD", "from-env-password")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "EUR", cfg.Payments.Currency)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "root", cfg.Auth.BootstrapAdmin.Username)
	assert.Equal(t, "admin@example.com", cfg.Auth.BootstrapAdmin.Email)
	assert.Equal(t, "from-env-password", cfg.Auth.BootstrapAdmin.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
