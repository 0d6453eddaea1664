package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/calendrical/internal/config"
	"github.com/zapponejosh/calendrical/internal/metrics"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /metrics                                  (when enabled)
//	POST   /api/v1/analyses                          (API key)
//	GET    /api/v1/analyses                          (API key)
//	GET    /api/v1/analyses/{id}                     (API key)
//	DELETE /api/v1/analyses/{id}                     (API key)
//	POST   /api/v1/forms/convert
//	POST   /api/v1/forms/evaluate
//	GET    /api/v1/calendars
//	GET    /api/v1/calendars/{id}/days/{dayNumber}
//	GET    /api/v1/calendars/{id}/dates/{date}
//	GET    /api/v1/calendars/{id}/easter/{year}
//	GET    /api/v1/calendars/{id}/convert/{date}?to={id}
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)
	if cfg.RateLimit > 0 {
		limit, err := RateLimitMiddleware(cfg.RateLimit, cfg.RateBurst)
		if err != nil {
			return nil, err
		}
		r.Use(limit)
	}
	if cfg.MetricsEnabled {
		r.Use(MetricsMiddleware())
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/forms/convert", handlers.ConvertCodes)
		r.Post("/forms/evaluate", handlers.EvaluateForm)

		r.Route("/calendars", func(r chi.Router) {
			r.Get("/", handlers.ListCalendars)
			r.Get("/{id}/days/{dayNumber}", handlers.GetDayNumber)
			r.Get("/{id}/dates/{date}", handlers.GetDate)
			r.Get("/{id}/easter/{year}", handlers.GetEaster)
			r.Get("/{id}/convert/{date}", handlers.ConvertDate)
		})

		// ======================================================================
		// Stored analyses (API key)
		// ======================================================================
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/analyses", handlers.CreateAnalysis)
			r.Get("/analyses", handlers.ListAnalyses)
			r.Get("/analyses/{id}", handlers.GetAnalysis)
			r.Delete("/analyses/{id}", handlers.DeleteAnalysis)
		})
	})

	return r, nil
}
