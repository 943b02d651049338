package workflow

import "strings"

// Callback action constants
const (
	CallbackPrefix = "wf:"
	ActionLang     = "lang"
	ActionSelect   = "select"
)

// CallbackData represents parsed callback data.
type CallbackData struct {
	Action string
	Value  string
}

// ParseCallback parses a callback data string.
// Format: "wf:action:value" or "wf:action"
func ParseCallback(data string) *CallbackData {
	if !strings.HasPrefix(data, CallbackPrefix) {
		return nil
	}

	data = strings.TrimPrefix(data, CallbackPrefix)
	parts := strings.SplitN(data, ":", 2)

	cb := &CallbackData{
		Action: parts[0],
	}

	if len(parts) > 1 {
		cb.Value = parts[1]
	}

	return cb
}

// IsWorkflowCallback checks if the callback data is a workflow callback.
func IsWorkflowCallback(data string) bool {
	return strings.HasPrefix(data, CallbackPrefix)
}

// BuildCallback creates a callback data string.
func BuildCallback(action string, value ...string) string {
	if len(value) > 0 && value[0] != "" {
		return CallbackPrefix + action + ":" + value[0]
	}
	return CallbackPrefix + action
}

// IsLang checks if the callback is a language selection.
func (c *CallbackData) IsLang() bool {
	return c.Action == ActionLang
}

// IsSelect checks if the callback is a choice selection.
func (c *CallbackData) IsSelect() bool {
	return c.Action == ActionSelect
}

// SelectedValue returns the canonical choice value for select callbacks.
func (c *CallbackData) SelectedValue() string {
	if c.Action != ActionSelect {
		return ""
	}
	return c.Value
}

// LangValue returns the language code for lang callbacks.
func (c *CallbackData) LangValue() string {
	if c.Action != ActionLang {
		return ""
	}
	return c.Value
}
