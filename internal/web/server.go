// Package web serves the dashboard pages and the JSON reporting API.
package web

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/portico/internal/cache"
)

// Server wires HTTP handlers around the snapshot cache.
type Server struct {
	snapshots *cache.SnapshotCache
	logger    *slog.Logger
	ttl       time.Duration
}

// NewRouter creates the dashboard router with logging middleware.
func NewRouter(snapshots *cache.SnapshotCache, logger *slog.Logger, ttl time.Duration) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	srv := &Server{snapshots: snapshots, logger: logger, ttl: ttl}

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))

	r.Get("/", srv.handleDashboard)
	r.Get("/projects", srv.handleProjectsPage)
	r.Post("/refresh", srv.handleRefreshRedirect)

	r.Get("/api/summary", srv.handleSummary)
	r.Get("/api/projects", srv.handleProjects)
	r.Post("/api/refresh", srv.handleRefresh)

	r.Get("/health", srv.handleHealth)

	return r
}
