package dialog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/internal/lib/api/response"
	"OchiqMuloqot/internal/stats"
)

type fakeCore struct {
	snap  stats.Snapshot
	views []workflow.View
}

func (c *fakeCore) StatsSnapshot() stats.Snapshot { return c.snap }
func (c *fakeCore) SessionViews() []workflow.View { return c.views }

func call(h http.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestStatsServesSnapshot(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	core := &fakeCore{snap: stats.Snapshot{LiveSessions: 4, Saved: 11}}

	rec := call(Stats(log, core))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status string         `json:"status"`
		Data   stats.Snapshot `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if resp.Status != response.StatusOk {
		t.Fatalf("expected ok, got %q", resp.Status)
	}
	if resp.Data.LiveSessions != 4 || resp.Data.Saved != 11 {
		t.Fatalf("unexpected snapshot %+v", resp.Data)
	}
}

func TestSessionsServesViews(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	core := &fakeCore{views: []workflow.View{{UserID: 42, StepIndex: 3}}}

	rec := call(Sessions(log, core))

	var resp struct {
		Status string          `json:"status"`
		Data   []workflow.View `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].UserID != 42 {
		t.Fatalf("unexpected views %+v", resp.Data)
	}
}

func TestHandlersWithoutCore(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	for name, h := range map[string]http.HandlerFunc{
		"stats":    Stats(log, nil),
		"sessions": Sessions(log, nil),
	} {
		rec := call(h)
		var resp response.Response
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: parse body: %v", name, err)
		}
		if resp.Status != response.StatusError {
			t.Fatalf("%s: expected an error envelope, got %+v", name, resp)
		}
	}
}
