package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/htn/internal/dto"
	"github.com/aretw0/htn/pkg/adapters/memory"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/dsl"
	"github.com/aretw0/htn/pkg/ports"
	"github.com/aretw0/htn/pkg/scenario"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps scenario documents posted to /run.
const maxBodyBytes = 1 << 20

// Server exposes an action library and scenario runs over HTTP.
type Server struct {
	runner   scenario.Runner
	backend  ports.WorldBackend
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	version  string
}

// Option configures the Server.
type Option func(*Server)

// WithBackend sets where scenario worlds live. Defaults to an in-memory backend.
func WithBackend(b ports.WorldBackend) Option {
	return func(s *Server) { s.backend = b }
}

// WithGatherer mounts GET /metrics for the given registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the value reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// NewHandler creates a new HTTP handler for the runner.
func NewHandler(runner scenario.Runner, opts ...Option) http.Handler {
	s := &Server{
		runner:  runner,
		backend: memory.NewBackend(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/actions", s.ListActions)
	r.Get("/actions/{name}", s.GetAction)
	r.Get("/plan", s.GetPlan)
	r.Post("/run", s.Run)
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"name":    "htn",
		"version": s.version,
	})
}

// ListActions handles GET /actions.
func (s *Server) ListActions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string][]string{
		"actions": s.runner.Library().Names(),
	})
}

// GetAction handles GET /actions/{name}.
func (s *Server) GetAction(w http.ResponseWriter, r *http.Request) {
	a, err := s.runner.Library().Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.writeJSON(r.Context(), w, http.StatusOK, dto.FromAction(a))
}

// GetPlan handles GET /plan?mode=group&step=A&step=B and returns the composed interface.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode, err := dsl.ParseMode(q.Get("mode"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	p := dsl.New(s.runner.Library()).Plan(q.Get("name"), mode)
	for _, step := range q["step"] {
		p.Do(step)
	}
	a, err := p.Build()
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.writeJSON(r.Context(), w, http.StatusOK, dto.FromAction(a))
}

// Run handles POST /run with a JSON scenario document.
// A failed execution is still a 200; the report carries the reason.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	sc, err := scenario.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), "json")
	if err != nil {
		s.logger.WarnContext(r.Context(), "Run: invalid scenario", "error", err)
		s.writeError(r.Context(), w, err)
		return
	}

	report, err := scenario.Run(r.Context(), s.runner, s.backend, sc)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Run failed", "scenario", sc.Name, "error", err)
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Run finished",
		"scenario", sc.Name,
		"action", report.Action,
		"success", report.Result.Success,
	)
	s.writeJSON(r.Context(), w, http.StatusOK, report)
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(ctx, "response encode failed", "error", err)
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	s.writeJSON(ctx, w, statusOf(err), map[string]string{"error": err.Error()})
}

func statusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrActionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrSlotMismatch):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
