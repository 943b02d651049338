package entity

import "strings"

// Language identifies one of the bot's interface languages.
type Language string

const (
	LanguageUz Language = "uz"
	LanguageRu Language = "ru"
)

// ParseLanguage normalizes a raw language code ("uz", "RU", ...).
func ParseLanguage(raw string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case LanguageUz:
		return LanguageUz, true
	case LanguageRu:
		return LanguageRu, true
	}
	return "", false
}

func (l Language) Valid() bool {
	return l == LanguageUz || l == LanguageRu
}

// Title returns the self-name shown on the language keyboard.
func (l Language) Title() string {
	switch l {
	case LanguageRu:
		return "Русский 🇷🇺"
	default:
		return "O'zbekcha 🇺🇿"
	}
}
