// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/vortax/internal/middleware"
)

// Router wires handlers and middleware into a chi.Mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi builds the HTTP handler tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.AccessLog(0))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		// Monitoring is not rate limited
		r.Get("/health", router.handler.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Post("/recommendations", router.handler.Recommendations)
			r.Get("/search", router.handler.Search)

			r.Route("/movies", func(r chi.Router) {
				r.Get("/", router.handler.ListMovies)
				r.Post("/", router.handler.CreateMovie)
				r.Get("/{id}", router.handler.GetMovie)
				r.Put("/{id}", router.handler.UpdateMovie)
				r.Delete("/{id}", router.handler.DeleteMovie)
			})

			r.Route("/tvshows", func(r chi.Router) {
				r.Get("/", router.handler.ListTVShows)
				r.Post("/", router.handler.CreateTVShow)
				r.Get("/{id}", router.handler.GetTVShow)
				r.Put("/{id}", router.handler.UpdateTVShow)
				r.Delete("/{id}", router.handler.DeleteTVShow)
			})

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/watchlist", router.handler.GetWatchlist)
				r.Post("/watchlist", router.handler.AddToWatchlist)
				r.Delete("/watchlist", router.handler.ClearWatchlist)
				r.Delete("/watchlist/{itemID}", router.handler.RemoveFromWatchlist)

				r.Get("/history", router.handler.GetHistory)
				r.Post("/history", router.handler.RecordWatch)
				r.Delete("/history", router.handler.ClearHistory)
				r.Delete("/history/{itemID}", router.handler.RemoveFromHistory)

				r.Get("/recommendations", router.handler.PersonalRecommendations)
			})
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})

	return r
}
