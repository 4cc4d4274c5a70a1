package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/tripcompass/tripcompass/internal/metrics"
)

// handlerTimeout bounds one request end to end. Ranking passes pause between
// result pages, so the budget is generous.
const handlerTimeout = 2 * time.Minute

// Server wraps the chi router with the middleware stack applied.
type Server struct {
	mux *chi.Mux
}

// New builds the router. Middlewares must be registered before any routes.
func New(log *slog.Logger, m *metrics.Metrics) *Server {
	mux := chi.NewRouter()

	mux.Use(chimw.RealIP)
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(Timeout(handlerTimeout))
	mux.Use(Metrics(m))
	mux.Use(Logger(log))

	return &Server{mux: mux}
}

// Mux returns the router as a plain http.Handler.
func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g. /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
