package stats

import (
	"sync"
	"testing"
)

func TestCountersLandInSnapshot(t *testing.T) {
	s := New()

	s.SessionStarted()
	s.SessionStarted()
	s.SessionCancelled()
	s.RegistrationSaved()
	s.PersistFailed()
	s.SyncFailed()
	s.SessionsEvicted(3)
	s.SessionsEvicted(0)
	s.AnswerRejected("bad-date-format")
	s.AnswerRejected("bad-date-format")
	s.AnswerRejected("bad-phone")

	snap := s.Snapshot(5)
	if snap.LiveSessions != 5 {
		t.Fatalf("expected live 5, got %d", snap.LiveSessions)
	}
	if snap.Started != 2 || snap.Cancelled != 1 || snap.Saved != 1 {
		t.Fatalf("unexpected session counters: %+v", snap)
	}
	if snap.Evicted != 3 {
		t.Fatalf("expected 3 evicted, got %d", snap.Evicted)
	}
	if snap.PersistFailures != 1 || snap.SyncFailures != 1 {
		t.Fatalf("unexpected failure counters: %+v", snap)
	}
	if snap.Rejected != 3 {
		t.Fatalf("expected 3 rejections, got %d", snap.Rejected)
	}
	if snap.RejectReasons["bad-date-format"] != 2 || snap.RejectReasons["bad-phone"] != 1 {
		t.Fatalf("unexpected reason tallies: %v", snap.RejectReasons)
	}
}

func TestSnapshotReasonsAreACopy(t *testing.T) {
	s := New()
	s.AnswerRejected("bad-phone")

	snap := s.Snapshot(0)
	snap.RejectReasons["bad-phone"] = 99

	if got := s.Snapshot(0).RejectReasons["bad-phone"]; got != 1 {
		t.Fatalf("mutating a snapshot must not leak back, got %d", got)
	}
}

func TestConcurrentCounting(t *testing.T) {
	s := New()

	const workers = 8
	const each = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < each; j++ {
				s.SessionStarted()
				s.AnswerRejected("not-in-choice-set")
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot(0)
	if snap.Started != workers*each {
		t.Fatalf("expected %d started, got %d", workers*each, snap.Started)
	}
	if snap.RejectReasons["not-in-choice-set"] != workers*each {
		t.Fatalf("expected %d rejections, got %d", workers*each, snap.RejectReasons["not-in-choice-set"])
	}
}
