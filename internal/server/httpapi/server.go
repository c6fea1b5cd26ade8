// Package httpapi is the JSON-over-HTTP surface of the server.
package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/logging"
	"github.com/dmitrijs2005/healthsync/internal/server/metrics"
	"github.com/dmitrijs2005/healthsync/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

type Server struct {
	sessions   *services.SessionService
	authorizer *services.Authorizer
	records    *services.RecordService
	metrics    *metrics.Metrics
	logger     logging.Logger
	startedAt  time.Time
}

func NewServer(
	sessions *services.SessionService,
	authorizer *services.Authorizer,
	records *services.RecordService,
	m *metrics.Metrics,
	logger logging.Logger,
) *Server {
	return &Server{
		sessions:   sessions,
		authorizer: authorizer,
		records:    records,
		metrics:    m,
		logger:     logger.With("module", "http"),
		startedAt:  time.Now(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/refresh", s.handleRefresh)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/exercises", s.handleLogExercise)
		r.Post("/nutrition", s.handleLogNutrition)
	})

	return r
}

// observe logs each request and records its latency.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)

		s.metrics.ObserveRequest(route, r.Method, status, elapsed)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
