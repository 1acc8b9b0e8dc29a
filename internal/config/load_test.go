package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hmac"

func TestLoad(t *testing.T) {
	t.Run("loads from environment with defaults", func(t *testing.T) {
		t.Setenv("TASKFLOW_DATABASE_URL", "postgres://localhost:5432/taskflow")
		t.Setenv("TASKFLOW_AUTH_JWT_SECRET", testSecret)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, "postgres://localhost:5432/taskflow", cfg.Database.URL)
		assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
		assert.Equal(t, 86400000, cfg.Auth.TokenLifetimeMillis)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TASKFLOW_DATABASE_URL", "postgres://localhost:5432/taskflow")
		t.Setenv("TASKFLOW_AUTH_JWT_SECRET", testSecret)
		t.Setenv("TASKFLOW_SERVER_PORT", "9090")
		t.Setenv("TASKFLOW_SERVER_LOG_LEVEL", "debug")
		t.Setenv("TASKFLOW_AUTH_TOKEN_LIFETIME_MS", "1000")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 1000, cfg.Auth.TokenLifetimeMillis)
	})

	t.Run("fails without jwt secret", func(t *testing.T) {
		t.Setenv("TASKFLOW_DATABASE_URL", "postgres://localhost:5432/taskflow")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("fails with short jwt secret", func(t *testing.T) {
		t.Setenv("TASKFLOW_DATABASE_URL", "postgres://localhost:5432/taskflow")
		t.Setenv("TASKFLOW_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("fails with invalid log level", func(t *testing.T) {
		t.Setenv("TASKFLOW_DATABASE_URL", "postgres://localhost:5432/taskflow")
		t.Setenv("TASKFLOW_AUTH_JWT_SECRET", testSecret)
		t.Setenv("TASKFLOW_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})
}
