package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_NAME", "inbox")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", ":9090")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.Equal(t, "inbox", cfg.DB.Name)
	assert.Equal(t, "svc", cfg.DB.User)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoadIgnoresBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	cfg := Load()

	assert.Equal(t, 5432, cfg.DB.Port)
}
