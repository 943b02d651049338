package ui

import (
	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"

	"OchiqMuloqot/entity"
)

// LanguageKeyboard creates the inline keyboard shown with the welcome
// message, one row per available language.
func LanguageKeyboard(langs ...entity.Language) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, len(langs))
	for i, lang := range langs {
		rows[i] = []tgbotapi.InlineKeyboardButton{
			{Text: lang.Title(), CallbackData: "wf:lang:" + string(lang)},
		}
	}
	return tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ChoiceKeyboard creates an inline keyboard for a choice step. Each
// choice gets its own row; callback data carries the canonical value in
// format "wf:select:VALUE".
func ChoiceKeyboard(choices []entity.Choice, lang entity.Language) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, len(choices))
	for i, c := range choices {
		rows[i] = []tgbotapi.InlineKeyboardButton{
			{Text: c.Label(lang), CallbackData: "wf:select:" + c.Value},
		}
	}
	return tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ContactRequestKeyboard creates a reply keyboard with a contact request button.
func ContactRequestKeyboard(buttonText string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		Keyboard: [][]tgbotapi.KeyboardButton{
			{
				{Text: buttonText, RequestContact: true},
			},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

// RemoveKeyboard creates a remove keyboard markup to hide custom keyboards.
func RemoveKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.ReplyKeyboardRemove{
		RemoveKeyboard: true,
	}
}
