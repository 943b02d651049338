package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"OchiqMuloqot/internal/stats"
)

type fakeCore struct {
	snap stats.Snapshot
}

func (c fakeCore) StatsSnapshot() stats.Snapshot { return c.snap }

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	Health(nil, fakeCore{snap: stats.Snapshot{UptimeSeconds: 12}})(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Status        string `json:"status"`
			UptimeSeconds int64  `json:"uptime_seconds"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if resp.Data.Status != "up" || resp.Data.UptimeSeconds != 12 {
		t.Fatalf("unexpected payload %+v", resp.Data)
	}
}

func TestHealthWithoutCore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	Health(nil, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("the probe must answer even before wiring, got %d", rec.Code)
	}
}
