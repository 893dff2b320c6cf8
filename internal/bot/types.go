package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"datingbot/internal/storage"
)

// Bot represents the Telegram bot wrapper. It owns the registration session
// store and is constructed explicitly by the application entry point.
type Bot struct {
	api      *tgbotapi.BotAPI
	db       storage.Storage // nil when persistence is disabled
	sessions *sessionStore
	logger   *zap.Logger
}
