// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package api provides the HTTP REST API layer for Vortax.

Every endpoint lives under /api/v1 and answers with the same JSON envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Failures replace data with an error object carrying a machine-readable code
(VALIDATION_ERROR, AMBIGUOUS_CONTENT_TYPE, NOT_FOUND, CONFLICT,
INTERNAL_ERROR, DATABASE_ERROR or RATE_LIMIT_EXCEEDED) and a message meant
for end users.

Endpoints:

  - POST /recommendations: free-text query resolution (see package recommend)
  - /movies and /tvshows: catalog CRUD with trending, latest and genre filters
  - GET /search: title search across both catalog tables
  - /users/{userID}/watchlist and /users/{userID}/history: user lists
  - GET /users/{userID}/recommendations: picks based on the user's lists
  - GET /health: database and TMDB circuit breaker status

The router also serves Prometheus metrics at /metrics and the OpenAPI UI at
/swagger/.

Middleware order: request ID, real IP, panic recovery, CORS, access log, then
security headers and Prometheus metrics for /api/v1, and the per-IP rate
limiter for everything but /health.

Usage:

	handler := api.NewHandler(db, resolver, personal, cfg)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(cfg.Security))
	srv := &http.Server{Addr: ":3857", Handler: router.SetupChi()}
*/
package api
