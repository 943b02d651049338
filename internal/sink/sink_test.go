package sink

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/stats"
)

type fakeAppender struct {
	fail  error
	calls int
}

func (a *fakeAppender) Append(_ context.Context, _ *entity.Registration) error {
	a.calls++
	return a.fail
}

type fakeSyncer struct {
	name  string
	fail  error
	calls int
}

func (s *fakeSyncer) Name() string { return s.name }

func (s *fakeSyncer) Sync(_ context.Context, _ *entity.Registration) error {
	s.calls++
	return s.fail
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmitAppendFailureStopsEverything(t *testing.T) {
	appender := &fakeAppender{fail: errors.New("disk full")}
	syncer := &fakeSyncer{name: "sheets"}
	st := stats.New()
	s := New(appender, st, discardLogger(), syncer)

	rec := testRecord(1)
	err := s.Submit(context.Background(), rec)
	if err == nil {
		t.Fatal("expected the durable failure surfaced")
	}
	if !strings.Contains(err.Error(), rec.ID) {
		t.Fatalf("expected the record id in the error, got %q", err)
	}
	if syncer.calls != 0 {
		t.Fatal("mirrors must not run before the record is durable")
	}
	if st.Snapshot(0).SyncFailures != 0 {
		t.Fatal("a durable failure is not a sync failure")
	}
}

func TestSubmitSyncFailureIsBestEffort(t *testing.T) {
	appender := &fakeAppender{}
	broken := &fakeSyncer{name: "sheets", fail: errors.New("quota exceeded")}
	healthy := &fakeSyncer{name: "mongo"}
	st := stats.New()
	s := New(appender, st, discardLogger(), broken, healthy)

	if err := s.Submit(context.Background(), testRecord(1)); err != nil {
		t.Fatalf("a failing mirror must not fail the submission: %v", err)
	}
	if appender.calls != 1 {
		t.Fatalf("expected one durable append, got %d", appender.calls)
	}
	if broken.calls != 1 || healthy.calls != 1 {
		t.Fatalf("expected every mirror attempted, got %d and %d", broken.calls, healthy.calls)
	}
	if got := st.Snapshot(0).SyncFailures; got != 1 {
		t.Fatalf("expected one sync failure counted, got %d", got)
	}
}

func TestSubmitWithoutSyncers(t *testing.T) {
	appender := &fakeAppender{}
	s := New(appender, stats.New(), discardLogger())

	if err := s.Submit(context.Background(), testRecord(1)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if appender.calls != 1 {
		t.Fatalf("expected one append, got %d", appender.calls)
	}
}

type fakeStore struct {
	saved []*entity.Registration
	fail  error
}

func (s *fakeStore) SaveRegistration(_ context.Context, rec *entity.Registration) error {
	s.saved = append(s.saved, rec)
	return s.fail
}

func TestStoreSyncAdapter(t *testing.T) {
	store := &fakeStore{}
	sync := NewStoreSync("mongo", store)

	if sync.Name() != "mongo" {
		t.Fatalf("expected the given name, got %q", sync.Name())
	}

	rec := testRecord(1)
	if err := sync.Sync(context.Background(), rec); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(store.saved) != 1 || store.saved[0] != rec {
		t.Fatal("expected the record handed to the store")
	}

	store.fail = errors.New("no reachable servers")
	if err := sync.Sync(context.Background(), rec); err == nil {
		t.Fatal("expected the store error surfaced to the sink")
	}
}
