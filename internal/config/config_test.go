package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "flowcanvas", cfg.App.Name)
	assert.Equal(t, 5000, cfg.API.Port)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "workflows", cfg.Storage.WorkflowsDir)
	assert.Equal(t, "configs/tools.json", cfg.Catalog.Path)
	assert.Equal(t, "dev-secret-key-change-in-production", cfg.Session.Secret)
	assert.Equal(t, "0.0.0.0:5000", cfg.API.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "8088")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("STORAGE_BACKEND", "database")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite")
	t.Setenv("API_RATE_LIMIT_WINDOW", "30s")
	t.Setenv("API_CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.API.Port)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.Equal(t, "database", cfg.Storage.Backend)
	assert.Equal(t, 30*time.Second, cfg.API.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.API.CORSOrigins)
}

func TestValidate(t *testing.T) {
	t.Run("rejects bad backend", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "redis")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects bad driver", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "database")
		t.Setenv("STORAGE_DB_DRIVER", "mysql")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects bad port", func(t *testing.T) {
		t.Setenv("API_PORT", "99999")
		_, err := Load()
		assert.Error(t, err)
	})
}
