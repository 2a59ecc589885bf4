package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMap_Defaults(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"JWT_SECRET": "test-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "hirelink", cfg.Database.Postgres.Database)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
}

func TestLoadFromMap_Overrides(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"JWT_SECRET":        "test-secret",
		"JWT_EXPIRES_IN":    "1h",
		"SERVER_PORT":       "9090",
		"POSTGRES_DATABASE": "hirelink_test",
		"DEBUG":             "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "hirelink_test", cfg.Database.Postgres.Database)
	assert.Equal(t, time.Hour, cfg.JWT.ExpiresIn)
	assert.True(t, cfg.Server.Debug)
}

func TestLoadFromMap_MissingSecret(t *testing.T) {
	_, err := LoadFromMap(map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadFromMap_InvalidPort(t *testing.T) {
	_, err := LoadFromMap(map[string]string{
		"JWT_SECRET":  "test-secret",
		"SERVER_PORT": "70000",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}
