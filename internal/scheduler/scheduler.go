package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/internal/lib/sl"
	"OchiqMuloqot/internal/stats"

	"github.com/go-co-op/gocron/v2"
)

// Notifier delivers digest messages to the admin chats.
type Notifier interface {
	NotifyAdmins(text string)
}

// Archive supplies durable counts for the digest. The in-process
// counters reset on restart, the archive does not.
type Archive interface {
	CountRegistrationsSince(ctx context.Context, since time.Time) (int64, error)
}

type Options struct {
	Registry      *workflow.Registry
	Counters      *stats.Stats
	SessionTTL    time.Duration
	SweepInterval time.Duration
	DigestCron    string   // empty disables the digest
	Archive       Archive  // optional
	Notifier      Notifier // optional, required for the digest
}

// Start registers the idle-session sweep and the daily digest and
// starts the scheduler.
func Start(log *slog.Logger, opts Options) (gocron.Scheduler, error) {
	logger := log.With(sl.Module("scheduler"))

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(opts.SweepInterval),
		gocron.NewTask(func() {
			n := opts.Registry.EvictIdle(opts.SessionTTL)
			if n == 0 {
				return
			}
			opts.Counters.SessionsEvicted(n)
			logger.Info("idle sessions evicted", slog.Int("count", n))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("register sweep job: %w", err)
	}

	if opts.DigestCron != "" && opts.Notifier != nil {
		_, err = s.NewJob(
			gocron.CronJob(opts.DigestCron, false),
			gocron.NewTask(func() {
				opts.Notifier.NotifyAdmins(digest(opts))
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("register digest job: %w", err)
		}
	}

	s.Start()
	logger.Info("scheduler started",
		slog.Duration("sweep_interval", opts.SweepInterval),
		slog.Duration("session_ttl", opts.SessionTTL),
	)
	return s, nil
}

// digest builds the daily admin summary. Counts come from the archive
// when it is configured, otherwise from the in-process counters.
func digest(opts Options) string {
	snap := opts.Counters.Snapshot(opts.Registry.Len())

	saved := snap.Saved
	if opts.Archive != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if n, err := opts.Archive.CountRegistrationsSince(ctx, time.Now().UTC().Add(-24*time.Hour)); err == nil {
			saved = n
		}
	}

	var b strings.Builder
	b.WriteString("📊 Kunlik hisobot / Ежедневный отчёт\n")
	fmt.Fprintf(&b, "Ro'yxatdan o'tganlar (24 soat) / Регистраций за сутки: %d\n", saved)
	fmt.Fprintf(&b, "Faol sessiyalar / Активные сессии: %d", snap.LiveSessions)
	if snap.PersistFailures > 0 {
		fmt.Fprintf(&b, "\n⚠️ Saqlash xatolari / Ошибки сохранения: %d", snap.PersistFailures)
	}
	if snap.SyncFailures > 0 {
		fmt.Fprintf(&b, "\n⚠️ Sinxronlash xatolari / Ошибки синхронизации: %d", snap.SyncFailures)
	}
	return b.String()
}
