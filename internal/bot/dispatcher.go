package bot

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// eventTimeout bounds the downstream work (persistence writes) for one event
const eventTimeout = 15 * time.Second

// dispatch routes a normalized event. If the user has an active registration
// the event belongs to the state machine; otherwise it is matched against
// the fixed command/button vocabulary. Unknown input gets a soft response.
//
// Callers must invoke dispatch through the user's mailbox so that events for
// one user are processed in arrival order.
func (b *Bot) dispatch(ev Event) {
	// No per-event failure may take down the process
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in dispatch",
				zap.Any("panic", r),
				zap.Int64("user_id", ev.UserID),
			)
			b.send(ev.ChatID, "An error occurred while processing your request. Please try again.")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	b.answerCallback(ev.CallbackID)
	b.touchLastActive(ctx, ev)

	if reg, ok := b.sessions.Get(ev.UserID); ok {
		b.advanceRegistration(ctx, ev, reg)
		return
	}

	switch ev.Kind {
	case EventCommand:
		b.dispatchCommand(ctx, ev)
	case EventCallback:
		b.dispatchCallback(ctx, ev)
	case EventText, EventPhoto, EventVideo, EventUnknown:
		b.send(ev.ChatID, msgNotAvailable)
	}
}

func (b *Bot) dispatchCommand(ctx context.Context, ev Event) {
	switch ev.Command {
	case "start":
		b.handleStart(ctx, ev)
	case "help":
		b.handleHelp(ev)
	case "premium":
		b.handlePremium(ev)
	case "test":
		b.handleTest(ev)
	case "register":
		b.startRegistration(ctx, ev)
	case "cancel":
		b.send(ev.ChatID, "There is no registration in progress. Use /register to start one.")
	default:
		b.send(ev.ChatID, msgNotAvailable)
	}
}

func (b *Bot) dispatchCallback(ctx context.Context, ev Event) {
	switch ev.Action {
	case ActionRegister:
		b.startRegistration(ctx, ev)
	case ActionHelp:
		b.handleHelp(ev)
	case ActionPremium:
		b.handlePremium(ev)
	case ActionCancel:
		b.send(ev.ChatID, "There is no registration in progress. Use /register to start one.")
	default:
		// stale selection keyboards, unknown payloads
		b.send(ev.ChatID, msgNotAvailable)
	}
}

// touchLastActive refreshes the last-active timestamp for known users.
// Best effort: lookup failures only get logged.
func (b *Bot) touchLastActive(ctx context.Context, ev Event) {
	if b.db == nil {
		return
	}
	if err := b.db.UpdateLastActive(ctx, ev.UserID, time.Now().UTC()); err != nil {
		b.logger.Warn("Failed to update last active",
			zap.Error(err),
			zap.Int64("user_id", ev.UserID),
		)
	}
}
