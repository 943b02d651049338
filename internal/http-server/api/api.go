package api

import (
	"OchiqMuloqot/internal/config"
	"OchiqMuloqot/internal/http-server/handlers/dialog"
	"OchiqMuloqot/internal/http-server/handlers/errors"
	"OchiqMuloqot/internal/http-server/handlers/health"
	"OchiqMuloqot/internal/http-server/handlers/registrations"
	"OchiqMuloqot/internal/http-server/middleware/authenticate"
	"OchiqMuloqot/internal/http-server/middleware/timeout"
	"OchiqMuloqot/internal/lib/sl"
	"OchiqMuloqot/internal/ws"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	ws.Authenticator
	health.Core
	dialog.Core
	registrations.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/health", health.Health(log, handler))

	router.Route("/api/v1", func(v1 chi.Router) {
		// The live feed manages its own auth and lifetime, a request
		// timeout would tear the socket down mid-stream.
		v1.Get("/live", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(hub, handler, log, w, r)
		})

		v1.Group(func(r chi.Router) {
			r.Use(timeout.Timeout(5))
			r.Use(render.SetContentType(render.ContentTypeJSON))
			r.Use(authenticate.New(log, handler))

			r.Get("/stats", dialog.Stats(log, handler))
			r.Get("/sessions", dialog.Sessions(log, handler))
			r.Get("/registrations", registrations.List(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
