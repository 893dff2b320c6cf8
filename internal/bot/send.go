package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// send delivers a plain text message. Delivery is fire-and-forget:
// failures are logged and never propagated back to the webhook response.
func (b *Bot) send(chatID int64, text string) {
	if b.api == nil {
		return // For testing
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

// sendWithKeyboard delivers a text message with an inline keyboard attached
func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	if b.api == nil {
		return // For testing
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message with keyboard",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

// answerCallback acknowledges a callback query to clear the loading state
func (b *Bot) answerCallback(callbackID string) {
	if b.api == nil || callbackID == "" {
		return
	}

	callback := tgbotapi.NewCallback(callbackID, "")
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Warn("Failed to answer callback query", zap.Error(err))
	}
}
