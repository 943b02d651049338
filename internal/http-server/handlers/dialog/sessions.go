package dialog

import (
	"OchiqMuloqot/internal/lib/api/response"
	"OchiqMuloqot/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Sessions(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.dialog")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("dialog service not available")
			render.JSON(w, r, response.Error("dialog service not available"))
			return
		}

		views := handler.SessionViews()

		logger.Debug("sessions listed", slog.Int("count", len(views)))
		render.JSON(w, r, response.Ok(views))
	}
}
