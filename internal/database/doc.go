// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package database provides the DuckDB-backed catalog and per-user lists.
//
// # Overview
//
// The package owns four tables:
//   - movies and tv_shows: the local catalog browsed by the API and matched
//     by the recommendation resolver
//   - watchlist and watch_history: per-user lists keyed by
//     (user_id, item_id, item_type)
//
// # Architecture
//
//   - database.go: connection lifecycle (open, initialize, close, ping)
//   - schema.go: table creation and the table name constants
//   - migrations.go: versioned, append-only migrations tracked in schema_migrations
//   - catalog_movies.go, catalog_tvshows.go: catalog CRUD and filtered listings
//   - catalog_items.go: term matching, title search and the candidate
//     queries behind personal recommendations
//   - watchlist.go, watch_history.go: user list operations
//   - seed.go: sample catalog for empty databases
//   - query_helpers.go: list column encoding, regex quoting and row scanning
//
// # Storage Notes
//
// Genres and cast are VARCHAR[] columns. They are bound through a parameter
// list ([?, ?, ...]) on write and read back with array_to_string using the
// unit separator, so the driver only ever sees scalar values. Genre names are
// stored lowercase. TV show seasons are kept as a JSON document.
//
// Only core DuckDB functions are used; extension autoloading is disabled.
//
// # Errors
//
// Lookups by ID return ErrNotFound when no row matches. AddToWatchlist
// returns ErrConflict for a duplicate entry. Both are matched with errors.Is.
//
// # Metrics
//
// Every query records duckdb_query_duration_seconds and, on failure,
// duckdb_query_errors_total through the metrics package.
package database
