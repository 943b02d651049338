package registrations

import (
	"OchiqMuloqot/internal/lib/api/cont"
	"OchiqMuloqot/internal/lib/api/response"
	"OchiqMuloqot/internal/lib/sl"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.registrations")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		if op, ok := cont.GetOperator(r.Context()); ok {
			logger = logger.With(slog.String("operator", op.Name))
		}

		if handler == nil {
			logger.Error("registrations service not available")
			render.JSON(w, r, response.Error("registrations service not available"))
			return
		}

		if !handler.ArchiveEnabled() {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Registrations archive is disabled"))
			return
		}

		limit := int64(defaultLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 {
				render.JSON(w, r, response.Error("Invalid limit"))
				return
			}
			limit = parsed
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		records, err := handler.ListRegistrations(r.Context(), limit)
		if err != nil {
			logger.Error("failed to list registrations", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Failed to list registrations: %v", err)))
			return
		}

		logger.Debug("registrations listed", slog.Int("count", len(records)))
		render.JSON(w, r, response.Ok(records))
	}
}
