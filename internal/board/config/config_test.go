package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
HTTP_PORT: 9090
ALLOW_ORIGINS:
  - "https://board.example.com"
DATABASE:
  DRIVER: postgres
  HOST: db.internal
  PORT: 5432
  USER: board
  PASSWORD: secret
  NAME: board
  SSLMODE: disable
KAFKA:
  BROKERS:
    - "kafka-1:9092"
  TOPIC: board.events
  GROUP_ID: board-audit
JWT_SECRET: file_secret
SEED: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"https://board.example.com"}, cfg.AllowOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, []string{"kafka-1:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "file_secret", cfg.JWTSecret)
	assert.True(t, cfg.Seed)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "JWT_SECRET: s\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.False(t, cfg.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env_secret")
	t.Setenv("DB_PASSWORD", "env_password")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	path := writeConfig(t, `
JWT_SECRET: file_secret
DATABASE:
  DRIVER: postgres
  PASSWORD: file_password
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env_secret", cfg.JWTSecret)
	assert.Equal(t, "env_password", cfg.Database.Password)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadRequiresSecret(t *testing.T) {
	path := writeConfig(t, "HTTP_PORT: 8080\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
