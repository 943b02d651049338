// Package stats counts dialog activity for the operator API and the
// daily digest.
package stats

import (
	"sync"
	"sync/atomic"
	"time"
)

type Stats struct {
	started         atomic.Int64
	saved           atomic.Int64
	cancelled       atomic.Int64
	evicted         atomic.Int64
	rejected        atomic.Int64
	persistFailures atomic.Int64
	syncFailures    atomic.Int64

	mu      sync.Mutex
	reasons map[string]int64

	startedAt time.Time
}

func New() *Stats {
	return &Stats{
		reasons:   make(map[string]int64),
		startedAt: time.Now(),
	}
}

func (s *Stats) SessionStarted()    { s.started.Add(1) }
func (s *Stats) SessionCancelled()  { s.cancelled.Add(1) }
func (s *Stats) RegistrationSaved() { s.saved.Add(1) }
func (s *Stats) PersistFailed()     { s.persistFailures.Add(1) }
func (s *Stats) SyncFailed()        { s.syncFailures.Add(1) }

func (s *Stats) SessionsEvicted(n int) {
	if n > 0 {
		s.evicted.Add(int64(n))
	}
}

// AnswerRejected counts a validation failure under its reason tag.
func (s *Stats) AnswerRejected(reason string) {
	s.rejected.Add(1)
	s.mu.Lock()
	s.reasons[reason]++
	s.mu.Unlock()
}

// Snapshot is the stats payload served by the operator API.
type Snapshot struct {
	LiveSessions    int              `json:"live_sessions"`
	Started         int64            `json:"sessions_started"`
	Saved           int64            `json:"registrations_saved"`
	Cancelled       int64            `json:"sessions_cancelled"`
	Evicted         int64            `json:"sessions_evicted"`
	Rejected        int64            `json:"answers_rejected"`
	RejectReasons   map[string]int64 `json:"reject_reasons"`
	PersistFailures int64            `json:"persist_failures"`
	SyncFailures    int64            `json:"sync_failures"`
	UptimeSeconds   int64            `json:"uptime_seconds"`
}

// Snapshot captures the counters. live is the current registry size,
// supplied by the caller.
func (s *Stats) Snapshot(live int) Snapshot {
	s.mu.Lock()
	reasons := make(map[string]int64, len(s.reasons))
	for k, v := range s.reasons {
		reasons[k] = v
	}
	s.mu.Unlock()

	return Snapshot{
		LiveSessions:    live,
		Started:         s.started.Load(),
		Saved:           s.saved.Load(),
		Cancelled:       s.cancelled.Load(),
		Evicted:         s.evicted.Load(),
		Rejected:        s.rejected.Load(),
		RejectReasons:   reasons,
		PersistFailures: s.persistFailures.Load(),
		SyncFailures:    s.syncFailures.Load(),
		UptimeSeconds:   int64(time.Since(s.startedAt).Seconds()),
	}
}
