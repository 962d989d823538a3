package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DATABASE_URL", "UPLOAD_DIR", "MOCK_DATA_PATH", "API_BASE_URL", "APP_ENV", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "./transactions.db", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("DEBUG", "True")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.True(t, cfg.Debug)
}
