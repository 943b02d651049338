package workflow

import (
	"sync"
	"time"

	"OchiqMuloqot/entity"
)

// Session is the in-progress dialog of one user. All mutation happens
// under the session's own lock, held by the caller for the whole of one
// inbound event, so concurrent messages from the same user can never
// act on two different snapshots.
type Session struct {
	UserID     int64             `json:"user_id" bson:"user_id"`
	ChatID     int64             `json:"chat_id" bson:"chat_id"`
	Language   entity.Language   `json:"language" bson:"language"`
	LangChosen bool              `json:"lang_chosen" bson:"lang_chosen"`
	StepIndex  int               `json:"step_index" bson:"step_index"`
	Answers    map[string]string `json:"answers" bson:"answers"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" bson:"updated_at"`

	// Pending is the record assembled at the completing transition. It
	// stays set until the durable append succeeds, so a retry after a
	// persist failure re-submits the identical record.
	Pending *entity.Registration `json:"pending,omitempty" bson:"pending,omitempty"`

	mu sync.Mutex
}

func NewSession(userID, chatID int64, lang entity.Language) *Session {
	now := time.Now()
	return &Session{
		UserID:    userID,
		ChatID:    chatID,
		Language:  lang,
		Answers:   make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Lock takes the per-session critical section. TryLock is used by the
// eviction sweep so it never stalls behind an in-flight event.
func (s *Session) Lock()         { s.mu.Lock() }
func (s *Session) Unlock()       { s.mu.Unlock() }
func (s *Session) TryLock() bool { return s.mu.TryLock() }

// SetLanguage fixes the dialog language once the user has picked one.
func (s *Session) SetLanguage(lang entity.Language) {
	s.Language = lang
	s.LangChosen = true
	s.Touch()
}

// Answer returns the stored value for a field, empty when unanswered.
func (s *Session) Answer(field string) string {
	return s.Answers[field]
}

// SetAnswer stores a validated value.
func (s *Session) SetAnswer(field, value string) {
	if s.Answers == nil {
		s.Answers = make(map[string]string)
	}
	s.Answers[field] = value
}

// Touch marks activity, postponing eviction.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// IdleFor reports how long the session has been without activity.
func (s *Session) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}

// AwaitingFlush reports a finished dialog whose record has not yet
// reached durable storage.
func (s *Session) AwaitingFlush() bool {
	return s.Pending != nil
}

// View is a lock-free copy of the session for the operator API and the
// live feed. It deliberately omits the collected answers.
type View struct {
	UserID    int64           `json:"user_id"`
	Language  entity.Language `json:"language"`
	StepIndex int             `json:"step_index"`
	Fields    int             `json:"fields"`
	Pending   bool            `json:"pending_flush"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Snapshot builds a View. Caller must hold the session lock.
func (s *Session) Snapshot() View {
	return View{
		UserID:    s.UserID,
		Language:  s.Language,
		StepIndex: s.StepIndex,
		Fields:    len(s.Answers),
		Pending:   s.Pending != nil,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
