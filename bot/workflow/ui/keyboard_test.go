package ui

import (
	"testing"

	"OchiqMuloqot/entity"
)

func TestLanguageKeyboard(t *testing.T) {
	kb := LanguageKeyboard(entity.LanguageUz, entity.LanguageRu)

	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected one row per language, got %d", len(kb.InlineKeyboard))
	}
	first := kb.InlineKeyboard[0][0]
	if first.CallbackData != "wf:lang:uz" {
		t.Fatalf("unexpected callback data %q", first.CallbackData)
	}
	if first.Text != entity.LanguageUz.Title() {
		t.Fatalf("expected the language self-name, got %q", first.Text)
	}
}

func TestChoiceKeyboardCarriesCanonicalValues(t *testing.T) {
	choices := []entity.Choice{
		{Value: "offline", Labels: map[entity.Language]string{entity.LanguageRu: "Да, лично (офлайн)"}},
		{Value: "online", Labels: map[entity.Language]string{entity.LanguageRu: "Нет, онлайн (дистанционно)"}},
	}

	kb := ChoiceKeyboard(choices, entity.LanguageRu)
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected one row per choice, got %d", len(kb.InlineKeyboard))
	}
	btn := kb.InlineKeyboard[0][0]
	if btn.Text != "Да, лично (офлайн)" {
		t.Fatalf("expected the localized label, got %q", btn.Text)
	}
	if btn.CallbackData != "wf:select:offline" {
		t.Fatalf("expected the canonical value in the callback, got %q", btn.CallbackData)
	}
}

func TestContactRequestKeyboard(t *testing.T) {
	kb := ContactRequestKeyboard("Telefon raqamimni yuborish")
	btn := kb.Keyboard[0][0]
	if !btn.RequestContact {
		t.Fatal("expected the contact request flag")
	}
	if !kb.OneTimeKeyboard || !kb.ResizeKeyboard {
		t.Fatal("expected a one-time resized keyboard")
	}
}

func TestRemoveKeyboard(t *testing.T) {
	if !RemoveKeyboard().RemoveKeyboard {
		t.Fatal("expected the remove flag set")
	}
}
