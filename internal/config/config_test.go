package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Full configuration", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "http://localhost:8000")
		t.Setenv("ENV", "production")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "123:abc", cfg.TelegramToken)
		assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "http://localhost:8000")
		t.Setenv("ENV", "")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})

	t.Run("Missing token", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "")
		t.Setenv("API_BASE_URL", "http://localhost:8000")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
	})

	t.Run("Missing API base URL", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_BASE_URL")
	})

	t.Run("Invalid timeout", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "http://localhost:8000")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "zero")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_TIMEOUT_SECONDS")
	})
}
