package health

import (
	"OchiqMuloqot/internal/lib/api/response"
	"OchiqMuloqot/internal/stats"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Core interface {
	StatsSnapshot() stats.Snapshot
}

type statusResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func Health(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var uptime int64
		if handler != nil {
			uptime = handler.StatsSnapshot().UptimeSeconds
		}

		render.JSON(w, r, response.Ok(statusResponse{
			Status:        "up",
			UptimeSeconds: uptime,
		}))
	}
}
