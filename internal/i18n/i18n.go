// Package i18n resolves user-facing texts for the reception dialog.
// The bot speaks Uzbek (Latin) and Russian; Uzbek is the fallback.
package i18n

import "OchiqMuloqot/entity"

// Message keys. Step definitions reference prompts and rejection texts
// by key so the dialog engine never embeds raw strings.
const (
	KeyChooseLanguage = "choose_language"

	KeyPromptRegion      = "prompt.region"
	KeyPromptMode        = "prompt.mode"
	KeyPromptFullName    = "prompt.full_name"
	KeyPromptDateOfBirth = "prompt.date_of_birth"
	KeyPromptDistrict    = "prompt.district"
	KeyPromptPhone       = "prompt.phone"
	KeyPromptAppealText  = "prompt.appeal_text"

	KeyErrChoice      = "err.choice"
	KeyErrFullName    = "err.full_name"
	KeyErrDateOfBirth = "err.date_of_birth"
	KeyErrPhone       = "err.phone"
	KeyErrAppealText  = "err.appeal_text"

	KeyBtnSendPhone = "btn.send_phone"

	KeyThanks        = "thanks"
	KeyCancelled     = "cancelled"
	KeyPersistFailed = "persist_failed"

	KeyAdminNewRegistration = "admin.new_registration"
)

type Resolver struct {
	catalog  map[entity.Language]map[string]string
	fallback entity.Language
}

func NewResolver() *Resolver {
	return &Resolver{
		catalog:  catalog,
		fallback: entity.LanguageUz,
	}
}

// Text resolves key for lang. Unknown languages fall back to Uzbek,
// unknown keys resolve to the key itself so a missing translation is
// visible instead of silent.
func (r *Resolver) Text(lang entity.Language, key string) string {
	if m, ok := r.catalog[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if m, ok := r.catalog[r.fallback]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return key
}

// Welcome is the pre-language greeting, both languages stacked the way
// the reception flyer prints them.
func (r *Resolver) Welcome() string {
	return welcomeUz + "\n\n" + welcomeRu + "\n\n" + r.Text(entity.LanguageUz, KeyChooseLanguage)
}
