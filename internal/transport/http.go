package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/selflab/internal/domain/stats"
)

// StatsService computes the dashboard snapshot.
type StatsService interface {
	Compute(ctx context.Context) (*stats.Snapshot, error)
}

// HealthChecker reports the store's last write failure.
type HealthChecker interface {
	Health() error
}

// Config holds the collaborators served over HTTP.
type Config struct {
	MCP    http.Handler
	Stats  StatsService
	Store  HealthChecker
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	stats  StatsService
	store  HealthChecker
	logger *slog.Logger
}

// NewMCPHandler serves an MCP server over the streamable HTTP transport.
func NewMCPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	srv := &Server{stats: cfg.Stats, store: cfg.Store, logger: logger}

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}
	r.Get("/health", srv.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", srv.handleStats)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if s.store != nil {
		if err := s.store.Health(); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		WriteError(w, http.StatusNotFound, "stats unavailable")
		return
	}
	snap, err := s.stats.Compute(r.Context())
	if err != nil {
		s.logger.Error("computing stats", "error", err)
		WriteError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	WriteJSON(w, http.StatusOK, snap)
}
