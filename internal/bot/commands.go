package bot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"datingbot/internal/storage"
)

const msgNotAvailable = "This feature is not available yet. Use /help to see what the bot can do."

// handleStart shows the welcome message and the main menu
func (b *Bot) handleStart(ctx context.Context, ev Event) {
	if b.db != nil {
		_, err := b.db.GetUserByTelegramID(ctx, ev.UserID)
		if err == nil {
			b.send(ev.ChatID, "Welcome back to Real Christian Dating! 🙏\n\nYour profile is already set up. Use /help to see available commands.")
			return
		}
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.Warn("Failed to look up user on /start",
				zap.Error(err),
				zap.Int64("user_id", ev.UserID),
			)
		}
	}

	text := `Welcome to Real Christian Dating! 🙏

Find a partner who shares your faith.

Available commands:
/register - Create your dating profile
/premium - View premium tiers
/help - Show help
/cancel - Cancel profile registration`

	b.sendWithKeyboard(ev.ChatID, text, mainMenuKeyboard())
}

// handleHelp shows the command reference
func (b *Bot) handleHelp(ev Event) {
	text := `How it works:

1. Create a profile with /register - the bot will walk you through a few questions.
2. Upload a profile photo and a short verification video.
3. Our team reviews the video and marks your profile as verified.

Commands:
/start - Main menu
/register - Create your dating profile
/premium - View premium tiers
/cancel - Cancel profile registration`

	b.send(ev.ChatID, text)
}

// handlePremium shows the premium tier overview
func (b *Bot) handlePremium(ev Event) {
	text := `⭐ Premium tiers

Silver - see who liked your profile
Gold - unlimited likes and profile boosts
Platinum - all of the above plus priority verification

Premium purchases are coming soon. Your wallet balance will be usable here.`

	b.send(ev.ChatID, text)
}

// handleTest replies with a static confirmation, useful for checking
// that webhook delivery works end to end
func (b *Bot) handleTest(ev Event) {
	b.send(ev.ChatID, "Test successful!")
}
