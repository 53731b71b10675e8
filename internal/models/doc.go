// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package models defines the data structures shared between storage, the
recommendation resolver and the HTTP API.

Catalog:
  - Movie, TVShow: rows of the movies and tv_shows tables
  - CatalogItem: the projection both tables share, used for matching
  - SearchHit: title search result

Per-user lists:
  - WatchlistEntry, HistoryEntry: list rows joined with item title and thumbnail
  - UserItemRef: an item a user has interacted with, plus its genres
  - PersonalRecommendations: the "for you" payload

Resolver output:
  - RecommendationItem, RecommendationResult

JSON field names follow the public API (camelCase); the envelope itself lives
in internal/api.
*/
package models
