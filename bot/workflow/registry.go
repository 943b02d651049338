package workflow

import (
	"sync"
	"time"

	"OchiqMuloqot/entity"
)

const shardCount = 32

// Registry maps user IDs to live sessions. The map itself is sharded so
// unrelated users never contend on one lock; exclusivity for a single
// user comes from the session's own mutex, not from here.
type Registry struct {
	shards [shardCount]registryShard
}

type registryShard struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i].sessions = make(map[int64]*Session)
	}
	return r
}

func (r *Registry) shardFor(userID int64) *registryShard {
	return &r.shards[uint64(userID)%shardCount]
}

// GetOrCreate returns the user's session, creating one at step zero on
// first contact. created tells the caller whether the greeting is due.
func (r *Registry) GetOrCreate(userID, chatID int64, lang entity.Language) (sess *Session, created bool) {
	sh := r.shardFor(userID)

	sh.mu.RLock()
	sess, ok := sh.sessions[userID]
	sh.mu.RUnlock()
	if ok {
		return sess, false
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sess, ok = sh.sessions[userID]; ok {
		return sess, false
	}
	sess = NewSession(userID, chatID, lang)
	sh.sessions[userID] = sess
	return sess, true
}

// Get returns the user's session if one exists.
func (r *Registry) Get(userID int64) (*Session, bool) {
	sh := r.shardFor(userID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	sess, ok := sh.sessions[userID]
	return sess, ok
}

// Remove discards a session. Removing an absent user is a no-op.
func (r *Registry) Remove(userID int64) {
	sh := r.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.sessions, userID)
}

// Replace installs a fresh session for userID, dropping any previous
// one. Used when a user restarts the dialog with /start.
func (r *Registry) Replace(userID, chatID int64, lang entity.Language) *Session {
	sh := r.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sess := NewSession(userID, chatID, lang)
	sh.sessions[userID] = sess
	return sess
}

// Len counts live sessions across all shards.
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.RLock()
		n += len(sh.sessions)
		sh.mu.RUnlock()
	}
	return n
}

// Views snapshots every live session for the operator API.
func (r *Registry) Views() []View {
	out := make([]View, 0, r.Len())
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.RLock()
		sessions := make([]*Session, 0, len(sh.sessions))
		for _, s := range sh.sessions {
			sessions = append(sessions, s)
		}
		sh.mu.RUnlock()

		for _, s := range sessions {
			s.Lock()
			out = append(out, s.Snapshot())
			s.Unlock()
		}
	}
	return out
}

// EvictIdle removes sessions without activity for at least ttl and
// returns how many were dropped. Sessions still waiting on a durable
// flush are never evicted; dropping them would lose a completed
// registration. Sessions busy with an in-flight event are skipped and
// picked up by a later sweep.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	now := time.Now()
	evicted := 0

	for i := range r.shards {
		sh := &r.shards[i]

		sh.mu.RLock()
		candidates := make([]*Session, 0, len(sh.sessions))
		for _, s := range sh.sessions {
			candidates = append(candidates, s)
		}
		sh.mu.RUnlock()

		for _, s := range candidates {
			if !s.TryLock() {
				continue
			}
			if s.IdleFor(now) >= ttl && !s.AwaitingFlush() {
				sh.mu.Lock()
				delete(sh.sessions, s.UserID)
				sh.mu.Unlock()
				evicted++
			}
			s.Unlock()
		}
	}
	return evicted
}
