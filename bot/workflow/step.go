package workflow

import "OchiqMuloqot/entity"

// StepKind tells the transport how to render a step's prompt.
type StepKind int

const (
	// KindChoice steps show an inline keyboard built from the choice set.
	KindChoice StepKind = iota
	// KindText steps expect a free-form text answer.
	KindText
	// KindDate steps expect a calendar date typed as text.
	KindDate
	// KindPhone steps ask for the contact-share button or a typed number.
	KindPhone
)

// Input is one inbound chat event after transport decoding. Exactly one
// of the payloads is meaningful: Phone for a shared contact, Text for
// everything else (typed messages and tapped keyboard values).
type Input struct {
	Text  string
	Phone string
}

// ContactInput wraps a shared contact's phone number.
func ContactInput(phone string) Input {
	return Input{Phone: phone}
}

// TextInput wraps a typed message or a tapped keyboard value.
func TextInput(text string) Input {
	return Input{Text: text}
}

// Validator turns raw input into the value stored for a step. It is
// total: any input yields either a value or a ValidationError, never a
// panic.
type Validator func(in Input) (string, *ValidationError)

// StepDef is one question of the fixed registration pipeline.
type StepDef struct {
	// Field is the record field this step fills. Unique within a pipeline.
	Field string

	Kind StepKind

	// PromptKey resolves the step's question text.
	PromptKey string

	// Choices is the fixed answer set for KindChoice steps, nil otherwise.
	Choices []entity.Choice

	// ClearKeyboard removes a lingering reply keyboard when the prompt
	// is sent.
	ClearKeyboard bool

	Validate Validator
}

// Prompt is the outbound half of a dialog turn: the text to send plus
// how to decorate it.
type Prompt struct {
	Text          string
	Choices       []entity.Choice
	Contact       bool
	ClearKeyboard bool
}
