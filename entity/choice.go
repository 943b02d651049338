package entity

import "strings"

// Choice is one acceptable answer for a selection step, a stable
// canonical value plus the labels shown on the reply keyboard.
type Choice struct {
	Value  string              `json:"value" yaml:"value" validate:"required"`
	Labels map[Language]string `json:"labels" yaml:"labels"`
}

// Label returns the label for lang, falling back to the canonical value.
func (c Choice) Label(lang Language) string {
	if s, ok := c.Labels[lang]; ok && s != "" {
		return s
	}
	if s, ok := c.Labels[LanguageUz]; ok && s != "" {
		return s
	}
	return c.Value
}

// Matches reports whether input names this choice, either by canonical
// value or by any of its labels. Comparison ignores case and padding.
func (c Choice) Matches(input string) bool {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return false
	}
	if in == strings.ToLower(c.Value) {
		return true
	}
	for _, label := range c.Labels {
		if in == strings.ToLower(strings.TrimSpace(label)) {
			return true
		}
	}
	return false
}

// FindChoice resolves input against a choice set, returning the matched
// choice. The match is case-insensitive over values and labels.
func FindChoice(set []Choice, input string) (Choice, bool) {
	for _, c := range set {
		if c.Matches(input) {
			return c, true
		}
	}
	return Choice{}, false
}
