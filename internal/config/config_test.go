package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"API_PORT", "ENVIRONMENT", "DATABASE_URL", "REDIS_URL", "SESSION_HOURS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 24*7, cfg.SessionHours)
	assert.True(t, cfg.UseMemoryStore())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgresql://localhost:5432/leadgrid")
	t.Setenv("SESSION_HOURS", "12")
	t.Setenv("PROCESSING_TIMEOUT_MINUTES", "45")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12, cfg.SessionHours)
	assert.Equal(t, 45, cfg.ProcessingTimeout)
	assert.False(t, cfg.UseMemoryStore())
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("SESSION_HOURS", "not-a-number")
	cfg := Load()
	assert.Equal(t, 24*7, cfg.SessionHours)
}
