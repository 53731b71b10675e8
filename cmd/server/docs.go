// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package main provides the Vortax HTTP server
//
// @title Vortax API
// @version 1.0
// @description Movie and TV catalog with watchlists, watch history and free-text recommendations.
// @description
// @description ## Recommendations
// @description
// @description POST a sentence such as `"a funny tv series, nothing too dark"` to `/recommendations`.
// @description The query is mapped to genres, looked up in the local catalog and TMDB, and merged.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. `/health` is exempt.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {}},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/vortax/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and service status
//
// @tag.name Recommendations
// @tag.description Free-text and per-user recommendations
//
// @tag.name Catalog
// @tag.description Movie and TV show CRUD and title search
//
// @tag.name User Lists
// @tag.description Watchlist and watch history
package main
