package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/metrics"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/storage"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store storage.Store, logger *zap.Logger, m *metrics.Metrics) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.MetricsEnabled {
		m = nil
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Initialize services
	projectService := services.NewProjectService(store, cfg.Store.Key, logger, m)
	sourceGuard := services.NewSourceGuard(m)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, sourceGuard, icons.TechTable(), logger)

	// Pages
	r.Get("/projects/{id}", projectHandler.ShowProject)
	r.Get("/projects/{id}/source", projectHandler.Source)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	if cfg.OTelEndpoint == "" {
		return r
	}
	return otelhttp.NewHandler(r, "portfolio",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
