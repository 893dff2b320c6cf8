package bot

import (
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"datingbot/internal/storage"
)

// Bot API calls must not hang forever: outbound delivery is fire-and-forget
// and a stuck request would pin a per-user worker.
const apiClientTimeout = 30 * time.Second

// NewBot creates a new Telegram bot. db may be nil, which disables persistence.
func NewBot(token string, db storage.Storage, logger *zap.Logger) (*Bot, error) {
	client := &http.Client{Timeout: apiClientTimeout}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Bot created", zap.String("bot_username", api.Self.UserName))

	return &Bot{
		api:      api,
		db:       db,
		sessions: newSessionStore(),
		logger:   logger,
	}, nil
}
