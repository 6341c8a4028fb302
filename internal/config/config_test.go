package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost:5432/jobboard?sslmode=disable
auth:
  jwt_secret: supersecret
server:
  port: ":8080"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/jobboard?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "supersecret", cfg.Auth.JWTSecret)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost:5432/jobboard
server:
  port: ":8080"
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "jwt_secret")
}
