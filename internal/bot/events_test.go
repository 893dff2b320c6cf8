package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent_Command(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 123, UserName: "alice", FirstName: "Alice"},
			Chat: &tgbotapi.Chat{ID: 456},
			Text: "/register",
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: 9},
			},
		},
	}

	ev, ok := ParseEvent(update)
	require.True(t, ok)
	assert.Equal(t, EventCommand, ev.Kind)
	assert.Equal(t, "register", ev.Command)
	assert.Equal(t, int64(123), ev.UserID)
	assert.Equal(t, int64(456), ev.ChatID)
	assert.Equal(t, "alice", ev.Username)
	assert.Equal(t, "Alice", ev.FirstName)
}

func TestParseEvent_Text(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 123},
			Chat: &tgbotapi.Chat{ID: 456},
			Text: "Austin, USA",
		},
	}

	ev, ok := ParseEvent(update)
	require.True(t, ok)
	assert.Equal(t, EventText, ev.Kind)
	assert.Equal(t, "Austin, USA", ev.Text)
}

func TestParseEvent_PhotoPicksLargestSize(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 123},
			Chat: &tgbotapi.Chat{ID: 456},
			Photo: []tgbotapi.PhotoSize{
				{FileID: "small", Width: 90},
				{FileID: "medium", Width: 320},
				{FileID: "large", Width: 800},
			},
		},
	}

	ev, ok := ParseEvent(update)
	require.True(t, ok)
	assert.Equal(t, EventPhoto, ev.Kind)
	assert.Equal(t, "large", ev.PhotoFileID)
}

func TestParseEvent_Video(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:  &tgbotapi.User{ID: 123},
			Chat:  &tgbotapi.Chat{ID: 456},
			Video: &tgbotapi.Video{FileID: "vid-1"},
		},
	}

	ev, ok := ParseEvent(update)
	require.True(t, ok)
	assert.Equal(t, EventVideo, ev.Kind)
	assert.Equal(t, "vid-1", ev.VideoFileID)
}

func TestParseEvent_StickerIsUnknownButHandled(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:    &tgbotapi.User{ID: 123},
			Chat:    &tgbotapi.Chat{ID: 456},
			Sticker: &tgbotapi.Sticker{FileID: "sticker-1"},
		},
	}

	ev, ok := ParseEvent(update)
	require.True(t, ok)
	assert.Equal(t, EventUnknown, ev.Kind)
	assert.Equal(t, int64(456), ev.ChatID)
}

func TestParseEvent_Callback(t *testing.T) {
	update := tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: 123},
			Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 456},
			},
			Data: "gender:Male",
		},
	}

	ev, ok := ParseEvent(update)
	require.True(t, ok)
	assert.Equal(t, EventCallback, ev.Kind)
	assert.Equal(t, ActionGender, ev.Action)
	assert.Equal(t, "Male", ev.Value)
	assert.Equal(t, "cb-1", ev.CallbackID)
	assert.Equal(t, int64(456), ev.ChatID)
}

func TestParseEvent_EmptyUpdateIgnored(t *testing.T) {
	_, ok := ParseEvent(tgbotapi.Update{})
	assert.False(t, ok)
}

func TestParseCallbackData(t *testing.T) {
	tests := []struct {
		data   string
		action CallbackAction
		value  string
	}{
		{"register", ActionRegister, ""},
		{"cancel", ActionCancel, ""},
		{"help", ActionHelp, ""},
		{"premium", ActionPremium, ""},
		{"gender:Male", ActionGender, "Male"},
		{"gender:Female", ActionGender, "Female"},
		{"denom:Non-denominational", ActionDenomination, "Non-denominational"},
		{"attend:Seeking a church", ActionAttendance, "Seeking a church"},
		{"bogus", ActionNone, ""},
		{"bogus:payload", ActionNone, ""},
		{"", ActionNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			action, value := parseCallbackData(tt.data)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestEvent_IsCancel(t *testing.T) {
	assert.True(t, cmdEvent(1, "cancel").IsCancel())
	assert.True(t, cbEvent(1, ActionCancel, "").IsCancel())
	assert.False(t, cmdEvent(1, "start").IsCancel())
	assert.False(t, textEvent(1, "cancel").IsCancel())
}
