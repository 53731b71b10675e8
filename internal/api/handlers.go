// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"time"

	"github.com/tomtom215/vortax/internal/config"
	"github.com/tomtom215/vortax/internal/database"
	"github.com/tomtom215/vortax/internal/recommend"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: health check
//   - handlers_recommend.go: free-text recommendations
//   - handlers_catalog.go: movie and TV show CRUD
//   - handlers_search.go: title search
//   - handlers_user_lists.go: watchlist, history and personal recommendations
type Handler struct {
	db           *database.DB
	resolver     *recommend.Resolver
	personal     *recommend.PersonalBuilder
	config       *config.Config
	breakerState func() string
	startTime    time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(db, resolver, personal, cfg)
//	handler.SetBreakerState(breaker.State)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":3857", router.SetupChi())
func NewHandler(db *database.DB, resolver *recommend.Resolver, personal *recommend.PersonalBuilder, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		resolver:  resolver,
		personal:  personal,
		config:    cfg,
		startTime: time.Now(),
	}
}

// SetBreakerState wires the TMDB circuit breaker into the health report.
// Without it the breaker is reported as "disabled".
func (h *Handler) SetBreakerState(fn func() string) {
	h.breakerState = fn
}

func (h *Handler) isDevelopment() bool {
	return h.config != nil && h.config.IsDevelopment()
}
