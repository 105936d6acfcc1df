package utils

import (
	"github.com/go-telegram/bot/models"
)

type Button struct {
	Text         string
	CallbackData string
	URL          string
}

// BuildInlineKeyboard lays buttons out one per row with padded labels.
func BuildInlineKeyboard(buttons []Button) models.InlineKeyboardMarkup {
	pad := func(s string) string { return "   " + s + "   " }
	rows := make([][]models.InlineKeyboardButton, 0, len(buttons))
	for _, button := range buttons {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         pad(button.Text),
			CallbackData: button.CallbackData,
			URL:          button.URL,
		}})
	}
	return models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
