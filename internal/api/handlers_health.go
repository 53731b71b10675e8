// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	TMDBBreakerState  string  `json:"tmdb_breaker_state"`
	Uptime            float64 `json:"uptime_seconds"`
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns database connectivity, the TMDB circuit breaker state and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	breaker := "disabled"
	if h.breakerState != nil {
		breaker = h.breakerState()
	}

	// An open breaker still serves local results, so only the database
	// decides between healthy and degraded.
	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		TMDBBreakerState:  breaker,
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}
