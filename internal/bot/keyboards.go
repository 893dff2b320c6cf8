package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"datingbot/internal/models"
)

// mainMenuKeyboard is shown with the /start welcome message
func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Create profile", "register"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", "help"),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Premium", "premium"),
		),
	)
}

// genderKeyboard offers the gender selection during registration
func genderKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(models.Genders))
	for _, g := range models.Genders {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(g, fmt.Sprintf("gender:%s", g)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row, cancelRow())
}

// denominationKeyboard offers the fixed denomination set in two columns
func denominationKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := twoColumnRows(models.Denominations, "denom")
	rows = append(rows, cancelRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// attendanceKeyboard offers the church attendance options in two columns
func attendanceKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := twoColumnRows(models.AttendanceOptions, "attend")
	rows = append(rows, cancelRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// twoColumnRows lays out option buttons two per row
func twoColumnRows(options []string, prefix string) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	var currentRow []tgbotapi.InlineKeyboardButton
	for i, option := range options {
		button := tgbotapi.NewInlineKeyboardButtonData(
			option,
			fmt.Sprintf("%s:%s", prefix, option),
		)
		currentRow = append(currentRow, button)

		if len(currentRow) == 2 || i == len(options)-1 {
			rows = append(rows, currentRow)
			currentRow = []tgbotapi.InlineKeyboardButton{}
		}
	}
	return rows
}

func cancelRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Cancel", "cancel"),
	)
}
