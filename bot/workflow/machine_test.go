package workflow

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/i18n"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testPipeline is a small two-step form: a fixed choice followed by a
// free-text answer. Enough to exercise every machine transition without
// dragging in the production step table.
func testPipeline() *Pipeline {
	colors := []entity.Choice{
		{Value: "red", Labels: map[entity.Language]string{entity.LanguageUz: "Qizil", entity.LanguageRu: "Красный"}},
		{Value: "blue", Labels: map[entity.Language]string{entity.LanguageUz: "Ko'k", entity.LanguageRu: "Синий"}},
	}
	return NewPipeline(
		StepDef{
			Field:     "color",
			Kind:      KindChoice,
			PromptKey: i18n.KeyPromptRegion,
			Choices:   colors,
			Validate: func(in Input) (string, *ValidationError) {
				c, ok := entity.FindChoice(colors, in.Text)
				if !ok {
					return "", Invalid(ReasonNotInChoiceSet, i18n.KeyErrChoice)
				}
				return c.Value, nil
			},
		},
		StepDef{
			Field:     "note",
			Kind:      KindText,
			PromptKey: i18n.KeyPromptAppealText,
			Validate: func(in Input) (string, *ValidationError) {
				text := strings.TrimSpace(in.Text)
				if text == "" {
					return "", Invalid(ReasonEmptyText, i18n.KeyErrAppealText)
				}
				return text, nil
			},
		},
	)
}

func testMachine() *Machine {
	return NewMachine(testPipeline(), i18n.NewResolver(), testLogger())
}

func TestHandleInputAdvances(t *testing.T) {
	m := testMachine()
	sess := NewSession(1, 10, entity.LanguageUz)

	out := m.HandleInput(sess, TextInput("Qizil"))
	if out.Kind != OutcomeAdvance {
		t.Fatalf("expected advance, got kind %d", out.Kind)
	}
	if sess.StepIndex != 1 {
		t.Fatalf("expected step index 1, got %d", sess.StepIndex)
	}
	if got := sess.Answer("color"); got != "red" {
		t.Fatalf("expected canonical value stored, got %q", got)
	}
	if out.Prompt.Text == "" {
		t.Fatal("expected the next question in the prompt")
	}
}

func TestHandleInputRejectLeavesSessionUntouched(t *testing.T) {
	m := testMachine()
	sess := NewSession(1, 10, entity.LanguageRu)
	before := sess.UpdatedAt

	out := m.HandleInput(sess, TextInput("green"))
	if out.Kind != OutcomeReject {
		t.Fatalf("expected reject, got kind %d", out.Kind)
	}
	if out.Reason != ReasonNotInChoiceSet {
		t.Fatalf("expected reason %q, got %q", ReasonNotInChoiceSet, out.Reason)
	}
	if sess.StepIndex != 0 {
		t.Fatalf("rejected answer must not advance, step index %d", sess.StepIndex)
	}
	if len(sess.Answers) != 0 {
		t.Fatalf("rejected answer must not be stored, answers %v", sess.Answers)
	}
	if !sess.UpdatedAt.Equal(before) {
		t.Fatal("rejected answer must not touch the session")
	}
	if out.Prompt.Text == "" {
		t.Fatal("expected an error prompt naming the expected format")
	}
}

func TestHandleInputCompletesAndPinsRecord(t *testing.T) {
	m := testMachine()
	sess := NewSession(1, 10, entity.LanguageUz)

	if out := m.HandleInput(sess, TextInput("blue")); out.Kind != OutcomeAdvance {
		t.Fatalf("expected advance on first step, got kind %d", out.Kind)
	}

	out := m.HandleInput(sess, TextInput("  everything works  "))
	if out.Kind != OutcomeCompleted {
		t.Fatalf("expected completed, got kind %d", out.Kind)
	}
	if out.Resubmit {
		t.Fatal("first completion must not be marked as a resubmit")
	}
	if out.Record == nil || sess.Pending == nil {
		t.Fatal("expected the pinned record on both outcome and session")
	}
	if out.Record != sess.Pending {
		t.Fatal("outcome and session must share one pinned record")
	}
	if out.Record.ID == "" {
		t.Fatal("expected the record ID pinned at completion")
	}
	if out.Record.UserID != 1 {
		t.Fatalf("expected user id 1, got %d", out.Record.UserID)
	}
	if got := sess.Answer("note"); got != "everything works" {
		t.Fatalf("expected trimmed text stored, got %q", got)
	}
}

func TestHandleInputAfterCompletionResubmitsSameRecord(t *testing.T) {
	m := testMachine()
	sess := NewSession(1, 10, entity.LanguageUz)

	m.HandleInput(sess, TextInput("blue"))
	first := m.HandleInput(sess, TextInput("done"))
	if first.Kind != OutcomeCompleted {
		t.Fatalf("expected completed, got kind %d", first.Kind)
	}

	again := m.HandleInput(sess, TextInput("anything at all"))
	if again.Kind != OutcomeCompleted {
		t.Fatalf("expected completed again, got kind %d", again.Kind)
	}
	if !again.Resubmit {
		t.Fatal("late input after completion must be marked as a resubmit")
	}
	if again.Record != first.Record {
		t.Fatal("resubmit must carry the identical pinned record")
	}
	if got := sess.Answer("note"); got != "done" {
		t.Fatalf("late input must not overwrite answers, got %q", got)
	}
}

func TestPromptForRendersStepDecoration(t *testing.T) {
	m := testMachine()

	choiceStep, _ := m.pipeline.StepAt(0)
	p := m.PromptFor(choiceStep, entity.LanguageRu)
	if len(p.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(p.Choices))
	}
	if p.Contact {
		t.Fatal("choice step must not request a contact")
	}

	phone := StepDef{Field: "phone", Kind: KindPhone, PromptKey: i18n.KeyPromptPhone}
	if p := m.PromptFor(phone, entity.LanguageUz); !p.Contact {
		t.Fatal("phone step must request the contact button")
	}
}

func TestFirstPrompt(t *testing.T) {
	m := testMachine()
	p, ok := m.FirstPrompt(entity.LanguageUz)
	if !ok {
		t.Fatal("expected a first prompt from a non-empty pipeline")
	}
	if len(p.Choices) != 2 {
		t.Fatalf("expected the choice keyboard on the first prompt, got %d choices", len(p.Choices))
	}

	empty := NewMachine(NewPipeline(), i18n.NewResolver(), testLogger())
	if _, ok := empty.FirstPrompt(entity.LanguageUz); ok {
		t.Fatal("empty pipeline must not produce a prompt")
	}
}
