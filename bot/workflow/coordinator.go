package workflow

import (
	"context"
	"log/slog"

	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/i18n"
	"OchiqMuloqot/internal/lib/sl"
	"OchiqMuloqot/internal/stats"
)

// Sink persists one completed record. A nil return means the record is
// durable; best-effort side channels are the sink's own concern and
// never surface here.
type Sink interface {
	Submit(ctx context.Context, rec *entity.Registration) error
}

// Observer is told about every registration that reached durable
// storage. Implementations must be quick or hand off, they run inside
// the user's dialog turn.
type Observer interface {
	RegistrationSaved(rec *entity.Registration)
}

// Reply is what the transport sends back after one inbound event.
type Reply struct {
	Prompt
	Lang entity.Language

	// LanguageSelect renders the language keyboard instead of choices.
	LanguageSelect bool
}

// Coordinator drives the whole dialog: it owns session lookup, runs the
// state machine under the per-session lock, and flushes completed
// records to the sink exactly once.
type Coordinator struct {
	registry *Registry
	machine  *Machine
	sink     Sink
	texts    *i18n.Resolver
	stats    *stats.Stats
	log      *slog.Logger

	observers []Observer
	receipt   func(*entity.Registration) string
}

func NewCoordinator(registry *Registry, machine *Machine, sink Sink, texts *i18n.Resolver, st *stats.Stats, log *slog.Logger) *Coordinator {
	return &Coordinator{
		registry: registry,
		machine:  machine,
		sink:     sink,
		texts:    texts,
		stats:    st,
		log:      log.With(sl.Module("workflow.coordinator")),
	}
}

// AddObserver registers a post-persistence listener.
func (c *Coordinator) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// SetReceipt installs the summary appended to the thank-you message.
func (c *Coordinator) SetReceipt(fn func(*entity.Registration) string) {
	c.receipt = fn
}

// Registry exposes the session registry for the operator API.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Start opens a fresh dialog, discarding any unfinished one. A session
// still waiting on a durable flush is not discarded: the /start serves
// as its retry, and the user gets the outcome of that instead of a new
// dialog.
func (c *Coordinator) Start(ctx context.Context, userID, chatID int64, langHint string) Reply {
	if sess, ok := c.lookup(userID); ok {
		if sess.AwaitingFlush() {
			reply, _ := c.retryFlush(ctx, sess)
			sess.Unlock()
			return reply
		}
		sess.Unlock()
	}

	lang := hintLanguage(langHint)
	c.registry.Replace(userID, chatID, lang)
	c.stats.SessionStarted()
	c.log.Info("dialog started", slog.Int64("user_id", userID))

	return Reply{
		Prompt:         Prompt{Text: c.texts.Welcome()},
		Lang:           lang,
		LanguageSelect: true,
	}
}

// ChooseLanguage pins the dialog language and asks the first question.
// Picking a language again mid-dialog just switches the prompts; the
// collected answers stay. A tap on a keyboard that outlived its session
// starts a fresh one.
func (c *Coordinator) ChooseLanguage(ctx context.Context, userID, chatID int64, raw string) Reply {
	lang, ok := entity.ParseLanguage(raw)
	if !ok {
		lang = entity.LanguageUz
	}

	sess, created := c.obtain(userID, chatID, lang)
	defer sess.Unlock()
	if created {
		c.stats.SessionStarted()
		c.log.Info("dialog started", slog.Int64("user_id", userID))
	}

	if sess.AwaitingFlush() {
		reply, _ := c.retryFlush(ctx, sess)
		return reply
	}

	sess.SetLanguage(lang)

	step, ok := c.machine.pipeline.StepAt(sess.StepIndex)
	if !ok {
		return Reply{Prompt: Prompt{Text: c.texts.Text(lang, i18n.KeyThanks)}, Lang: lang}
	}
	return Reply{Prompt: c.machine.PromptFor(step, lang), Lang: lang}
}

// HandleText processes a typed message against the pending step.
func (c *Coordinator) HandleText(ctx context.Context, userID, chatID int64, text, langHint string) Reply {
	return c.handle(ctx, userID, chatID, TextInput(text), langHint)
}

// HandleContact processes a shared contact against the pending step.
func (c *Coordinator) HandleContact(ctx context.Context, userID, chatID int64, phone, langHint string) Reply {
	return c.handle(ctx, userID, chatID, ContactInput(phone), langHint)
}

// HandleChoice processes a tapped inline keyboard value.
func (c *Coordinator) HandleChoice(ctx context.Context, userID, chatID int64, value, langHint string) Reply {
	return c.handle(ctx, userID, chatID, TextInput(value), langHint)
}

func (c *Coordinator) handle(ctx context.Context, userID, chatID int64, in Input, langHint string) Reply {
	sess, created := c.obtain(userID, chatID, hintLanguage(langHint))
	defer sess.Unlock()
	if created {
		c.stats.SessionStarted()
		c.log.Info("dialog started", slog.Int64("user_id", userID))
	}

	if !sess.LangChosen && !sess.AwaitingFlush() {
		// The dialog language comes first. A brand-new session gets the
		// full welcome, an existing one just the short reminder.
		text := c.texts.Text(sess.Language, i18n.KeyChooseLanguage)
		if created {
			text = c.texts.Welcome()
		}
		return Reply{
			Prompt:         Prompt{Text: text},
			Lang:           sess.Language,
			LanguageSelect: true,
		}
	}

	out := c.machine.HandleInput(sess, in)
	switch out.Kind {
	case OutcomeReject:
		c.stats.AnswerRejected(out.Reason)
		return Reply{Prompt: out.Prompt, Lang: sess.Language}
	case OutcomeCompleted:
		reply, _ := c.flush(ctx, sess, out.Record)
		return reply
	default:
		return Reply{Prompt: out.Prompt, Lang: sess.Language}
	}
}

// Cancel abandons the dialog. A record still waiting on its durable
// flush is retried rather than dropped.
func (c *Coordinator) Cancel(ctx context.Context, userID int64, langHint string) Reply {
	sess, ok := c.lookup(userID)
	if !ok {
		lang := hintLanguage(langHint)
		return Reply{Prompt: Prompt{Text: c.texts.Text(lang, i18n.KeyCancelled), ClearKeyboard: true}, Lang: lang}
	}
	defer sess.Unlock()

	if sess.AwaitingFlush() {
		reply, _ := c.retryFlush(ctx, sess)
		return reply
	}

	c.registry.Remove(sess.UserID)
	c.stats.SessionCancelled()
	c.log.Info("dialog cancelled", slog.Int64("user_id", userID))
	return Reply{Prompt: Prompt{Text: c.texts.Text(sess.Language, i18n.KeyCancelled), ClearKeyboard: true}, Lang: sess.Language}
}

// lookup fetches and locks a session, re-checking membership afterwards
// because the eviction sweep may have removed it in between.
func (c *Coordinator) lookup(userID int64) (*Session, bool) {
	sess, ok := c.registry.Get(userID)
	if !ok {
		return nil, false
	}
	sess.Lock()
	if cur, ok := c.registry.Get(userID); !ok || cur != sess {
		sess.Unlock()
		return nil, false
	}
	return sess, true
}

// obtain returns the user's locked session, creating one on first
// contact. Losing the membership re-check means another event or the
// sweep got in between, so the fetch starts over.
func (c *Coordinator) obtain(userID, chatID int64, lang entity.Language) (*Session, bool) {
	for {
		sess, created := c.registry.GetOrCreate(userID, chatID, lang)
		sess.Lock()
		if cur, ok := c.registry.Get(userID); ok && cur == sess {
			return sess, created
		}
		sess.Unlock()
	}
}

// retryFlush re-submits the pinned record of a finished session.
func (c *Coordinator) retryFlush(ctx context.Context, sess *Session) (Reply, bool) {
	return c.flush(ctx, sess, sess.Pending)
}

// flush hands the record to the sink. On success the session leaves the
// registry and observers fire; on failure the session stays so that any
// later message from the user retries the identical record.
func (c *Coordinator) flush(ctx context.Context, sess *Session, rec *entity.Registration) (Reply, bool) {
	lang := sess.Language

	if rec == nil {
		return Reply{Prompt: Prompt{Text: c.texts.Text(lang, i18n.KeyThanks)}, Lang: lang}, true
	}

	if err := c.sink.Submit(ctx, rec); err != nil {
		c.stats.PersistFailed()
		c.log.Error("persisting registration",
			slog.Int64("user_id", sess.UserID),
			slog.String("registration_id", rec.ID),
			sl.Err(err),
		)
		return Reply{Prompt: Prompt{Text: c.texts.Text(lang, i18n.KeyPersistFailed)}, Lang: lang}, false
	}

	sess.Pending = nil
	c.registry.Remove(sess.UserID)
	c.stats.RegistrationSaved()
	c.log.Info("registration saved",
		slog.Int64("user_id", sess.UserID),
		slog.String("registration_id", rec.ID),
	)

	for _, o := range c.observers {
		o.RegistrationSaved(rec)
	}

	text := c.texts.Text(lang, i18n.KeyThanks)
	if c.receipt != nil {
		text += "\n" + c.receipt(rec)
	}
	return Reply{Prompt: Prompt{Text: text, ClearKeyboard: true}, Lang: lang}, true
}

func hintLanguage(hint string) entity.Language {
	if lang, ok := entity.ParseLanguage(hint); ok {
		return lang
	}
	return entity.LanguageUz
}
