// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/wellbore/internal/middleware"
)

// NewRouter configures all HTTP routes on a chi router.
func NewRouter(h *Handler, mw *ChiMiddleware) http.Handler {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID, logging context, access log
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)      // Recover from panics
	r.Use(middleware.PrometheusMetrics) // Request metrics by route pattern
	r.Use(mw.CORS())                    // CORS must be global to handle OPTIONS preflight
	r.Use(Preflight)                    // OPTIONS -> 204
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Unthrottled so monitors and scrapers never trip the limiter.
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// ========================
	// Resource Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit())

		r.Route("/production", func(r chi.Router) {
			r.Get("/", h.ListProduction)
			r.Post("/", h.UpsertProduction)
		})

		r.Route("/wells", func(r chi.Router) {
			r.Get("/", h.ListWells)
			r.Delete("/{wellName}", h.DeleteWell)
		})

		r.Route("/rigs", func(r chi.Router) {
			r.Get("/", h.ListRigs)
			r.Post("/", h.CreateRig)
			r.Delete("/{id}", h.DeleteRig)
		})

		r.Route("/wells-down", func(r chi.Router) {
			r.Get("/", h.ListWellsDown)
			r.Post("/", h.UpsertWellsDown)
			r.Get("/deferred", h.ListDeferred)
			r.Patch("/{id}", h.PatchWellDown)
			r.Delete("/{id}", h.DeleteWellDown)
		})

		r.Route("/workovers", func(r chi.Router) {
			r.Get("/", h.ListWorkovers)
			r.Post("/", h.CreateWorkover)
			r.Patch("/{id}", h.PatchWorkover)
			r.Delete("/{id}", h.DeleteWorkover)
		})

		r.Route("/workover-updates", func(r chi.Router) {
			r.Get("/", h.ListWorkoverUpdates)
			r.Post("/", h.CreateWorkoverUpdate)
			r.Delete("/", h.DeleteWorkoverUpdate)
		})
	})

	return r
}

// routeLabel is the chi pattern matched so far, for metric labels.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
