package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration
type Config struct {
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`

	// Bot mode configuration: webhook mode waits for Telegram to call us,
	// polling mode actively polls Telegram servers
	WebhookMode bool   `env:"WEBHOOK_MODE"`
	WebhookURL  string `env:"WEBHOOK_URL"`

	// Port for the HTTP server (health checks and webhook endpoint)
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseDSN is the Postgres connection string. When empty, persistence
	// is disabled: the conversational flow still works but registrations
	// cannot be finalized.
	DatabaseDSN string `env:"DATABASE_DSN"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.WebhookMode && cfg.WebhookURL == "" {
		return nil, fmt.Errorf("WEBHOOK_URL is required when WEBHOOK_MODE is true")
	}

	return &cfg, nil
}
