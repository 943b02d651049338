// Package sink persists completed registrations: one durable append-only
// log that must succeed, plus any number of best-effort mirrors.
package sink

import (
	"context"
	"fmt"
	"log/slog"

	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/lib/sl"
	"OchiqMuloqot/internal/stats"
)

// Appender is the durable log. A nil return means the row survived a
// process crash.
type Appender interface {
	Append(ctx context.Context, rec *entity.Registration) error
}

// Syncer mirrors records to a side channel. Failures are reported but
// never fail the submission.
type Syncer interface {
	Name() string
	Sync(ctx context.Context, rec *entity.Registration) error
}

type Sink struct {
	appender Appender
	syncers  []Syncer
	stats    *stats.Stats
	log      *slog.Logger
}

func New(appender Appender, st *stats.Stats, log *slog.Logger, syncers ...Syncer) *Sink {
	return &Sink{
		appender: appender,
		syncers:  syncers,
		stats:    st,
		log:      log.With(sl.Module("sink")),
	}
}

// Submit writes rec to the durable log and then mirrors it. Only the
// durable write can fail the submission; a failing mirror is logged at
// Warn, which also reaches the admin chats.
func (s *Sink) Submit(ctx context.Context, rec *entity.Registration) error {
	if err := s.appender.Append(ctx, rec); err != nil {
		return fmt.Errorf("append record %s: %w", rec.ID, err)
	}

	for _, sc := range s.syncers {
		if err := sc.Sync(ctx, rec); err != nil {
			s.stats.SyncFailed()
			s.log.Warn("record sync failed",
				slog.String("target", sc.Name()),
				slog.String("registration_id", rec.ID),
				sl.Err(err),
			)
		}
	}
	return nil
}

// RegistrationStore is the subset of a storage backend the store sync
// adapter needs.
type RegistrationStore interface {
	SaveRegistration(ctx context.Context, rec *entity.Registration) error
}

// NewStoreSync adapts a storage backend into a best-effort Syncer.
func NewStoreSync(name string, store RegistrationStore) Syncer {
	return &storeSync{name: name, store: store}
}

type storeSync struct {
	name  string
	store RegistrationStore
}

func (s *storeSync) Name() string { return s.name }

func (s *storeSync) Sync(ctx context.Context, rec *entity.Registration) error {
	return s.store.SaveRegistration(ctx, rec)
}
