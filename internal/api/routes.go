package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/lunar-calendar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /api/v1/today
//	GET  /api/v1/solar?start=&end=
//	GET  /api/v1/solar/{date}
//	GET  /api/v1/lunar/{year}/{month}/{day}?leap=
//	GET  /api/v1/years/{year}
//	GET  /api/v1/terms/{year}
//	GET  /api/v1/almanac/lunar/{month}/{day}?leap=&from=&to=
//	GET  /api/v1/almanac/terms/{name}?from=&to=
//	GET  /api/v1/almanac/stats
//	POST /api/v1/admin/almanac?from=&to=&keep=  (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// ======================================================================
		// Conversion routes
		// ======================================================================
		r.Get("/today", handlers.GetToday)
		r.Get("/solar", handlers.GetSolarRange)
		r.Get("/solar/{date}", handlers.GetSolarDate)
		r.Get("/lunar/{year}/{month}/{day}", handlers.GetLunarDate)
		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/terms/{year}", handlers.GetTerms)

		// ======================================================================
		// Stored almanac routes
		// ======================================================================
		r.Get("/almanac/lunar/{month}/{day}", handlers.FindLunarDate)
		r.Get("/almanac/terms/{name}", handlers.FindTerm)
		r.Get("/almanac/stats", handlers.GetAlmanacStats)

		// ======================================================================
		// Admin routes (API key)
		// ======================================================================
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/admin/almanac", handlers.BuildAlmanac)
		})
	})

	return r
}
