package workflow

import (
	"log/slog"

	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/i18n"
	"OchiqMuloqot/internal/lib/sl"
)

// OutcomeKind classifies the result of one dialog turn.
type OutcomeKind int

const (
	// OutcomeAdvance means the answer was stored and the next prompt is due.
	OutcomeAdvance OutcomeKind = iota
	// OutcomeReject means the answer failed validation; the session is
	// unchanged and the error prompt names the expected format.
	OutcomeReject
	// OutcomeCompleted means the final step just validated (or the
	// session was already complete); Record carries the pinned record.
	OutcomeCompleted
)

// Outcome is the machine's verdict on one inbound event.
type Outcome struct {
	Kind   OutcomeKind
	Prompt Prompt
	Record *entity.Registration

	// Reason is set on Reject for the step statistics.
	Reason string

	// Resubmit marks a Completed outcome for a session that had already
	// finished earlier; the caller retries delivery instead of
	// assembling anything new.
	Resubmit bool
}

// Machine advances sessions through the pipeline. It owns no state of
// its own; everything mutable lives on the session, which the caller
// has locked for the duration of the call.
type Machine struct {
	pipeline *Pipeline
	texts    *i18n.Resolver
	log      *slog.Logger
}

func NewMachine(pipeline *Pipeline, texts *i18n.Resolver, log *slog.Logger) *Machine {
	return &Machine{
		pipeline: pipeline,
		texts:    texts,
		log:      log.With(sl.Module("workflow.machine")),
	}
}

// HandleInput validates in against the session's pending step and
// advances on success. Already-complete sessions yield Completed again
// with the same pinned record and no further mutation, so duplicate or
// late messages stay harmless.
func (m *Machine) HandleInput(sess *Session, in Input) Outcome {
	step, ok := m.pipeline.StepAt(sess.StepIndex)
	if !ok {
		return Outcome{Kind: OutcomeCompleted, Record: sess.Pending, Resubmit: true}
	}

	value, verr := step.Validate(in)
	if verr != nil {
		m.log.Debug("answer rejected",
			slog.Int64("user_id", sess.UserID),
			slog.String("field", step.Field),
			slog.String("reason", verr.Reason),
		)
		return Outcome{
			Kind:   OutcomeReject,
			Prompt: Prompt{Text: m.texts.Text(sess.Language, verr.Key)},
			Reason: verr.Reason,
		}
	}

	sess.SetAnswer(step.Field, value)
	sess.StepIndex++
	sess.Touch()

	if next, ok := m.pipeline.StepAt(sess.StepIndex); ok {
		return Outcome{Kind: OutcomeAdvance, Prompt: m.PromptFor(next, sess.Language)}
	}

	sess.Pending = entity.NewRegistration(sess.UserID, sess.Language, sess.Answers)
	m.log.Info("dialog complete",
		slog.Int64("user_id", sess.UserID),
		slog.String("registration_id", sess.Pending.ID),
	)
	return Outcome{Kind: OutcomeCompleted, Record: sess.Pending}
}

// PromptFor renders a step's question in the session language.
func (m *Machine) PromptFor(step StepDef, lang entity.Language) Prompt {
	return Prompt{
		Text:          m.texts.Text(lang, step.PromptKey),
		Choices:       step.Choices,
		Contact:       step.Kind == KindPhone,
		ClearKeyboard: step.ClearKeyboard,
	}
}

// FirstPrompt is the entry question once the language is fixed.
func (m *Machine) FirstPrompt(lang entity.Language) (Prompt, bool) {
	step, ok := m.pipeline.StepAt(0)
	if !ok {
		return Prompt{}, false
	}
	return m.PromptFor(step, lang), true
}
