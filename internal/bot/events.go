package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// EventKind classifies a normalized inbound update
type EventKind int

const (
	EventUnknown EventKind = iota
	EventCommand
	EventText
	EventCallback
	EventPhoto
	EventVideo
)

// CallbackAction is the parsed, typed form of an inline button payload.
// Parsing happens once here; handlers never string-match raw callback data.
type CallbackAction int

const (
	ActionNone CallbackAction = iota
	ActionRegister
	ActionCancel
	ActionHelp
	ActionPremium
	ActionGender
	ActionDenomination
	ActionAttendance
)

// Event is the platform-agnostic representation of an inbound update
type Event struct {
	Kind      EventKind
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string

	Command string // EventCommand: command name without slash
	Text    string // EventText: message text

	Action CallbackAction // EventCallback
	Value  string         // selection value for Gender/Denomination/Attendance

	PhotoFileID string // EventPhoto: highest-resolution size
	VideoFileID string // EventVideo

	CallbackID string // set for callbacks so the query can be answered
}

// IsCancel reports whether the event is an explicit cancel signal
func (e Event) IsCancel() bool {
	return (e.Kind == EventCommand && e.Command == "cancel") ||
		(e.Kind == EventCallback && e.Action == ActionCancel)
}

// ParseEvent normalizes a Telegram update into an Event. The second return
// value is false when the update carries nothing this bot handles.
func ParseEvent(update tgbotapi.Update) (Event, bool) {
	if update.Message != nil && update.Message.From != nil {
		msg := update.Message
		ev := Event{
			UserID:    msg.From.ID,
			ChatID:    msg.Chat.ID,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
		}

		switch {
		case msg.IsCommand():
			ev.Kind = EventCommand
			ev.Command = msg.Command()
		case len(msg.Photo) > 0:
			// sizes are ordered smallest first; keep the largest
			ev.Kind = EventPhoto
			ev.PhotoFileID = msg.Photo[len(msg.Photo)-1].FileID
		case msg.Video != nil:
			ev.Kind = EventVideo
			ev.VideoFileID = msg.Video.FileID
		case msg.Text != "":
			ev.Kind = EventText
			ev.Text = msg.Text
		default:
			ev.Kind = EventUnknown
		}
		return ev, true
	}

	if update.CallbackQuery != nil && update.CallbackQuery.From != nil {
		query := update.CallbackQuery
		ev := Event{
			Kind:       EventCallback,
			UserID:     query.From.ID,
			Username:   query.From.UserName,
			FirstName:  query.From.FirstName,
			CallbackID: query.ID,
		}
		if query.Message != nil {
			ev.ChatID = query.Message.Chat.ID
		} else {
			ev.ChatID = query.From.ID
		}
		ev.Action, ev.Value = parseCallbackData(query.Data)
		return ev, true
	}

	return Event{}, false
}

// parseCallbackData maps raw button payloads to tagged actions
func parseCallbackData(data string) (CallbackAction, string) {
	action, value, _ := strings.Cut(data, ":")
	switch action {
	case "register":
		return ActionRegister, ""
	case "cancel":
		return ActionCancel, ""
	case "help":
		return ActionHelp, ""
	case "premium":
		return ActionPremium, ""
	case "gender":
		return ActionGender, value
	case "denom":
		return ActionDenomination, value
	case "attend":
		return ActionAttendance, value
	default:
		return ActionNone, ""
	}
}
