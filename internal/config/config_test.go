package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramToken)
	assert.False(t, cfg.WebhookMode)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv_TokenRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_WebhookModeRequiresURL(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("WEBHOOK_MODE", "true")
	t.Setenv("WEBHOOK_URL", "")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_WebhookMode(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("WEBHOOK_MODE", "true")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	t.Setenv("PORT", "10000")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/dating")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.WebhookMode)
	assert.Equal(t, "https://bot.example.com", cfg.WebhookURL)
	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/dating", cfg.DatabaseDSN)
}
