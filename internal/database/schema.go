// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/vortax/internal/models"
)

// Table names. Only these constants are ever interpolated into SQL.
const (
	tableMovies       = "movies"
	tableTVShows      = "tv_shows"
	tableWatchlist    = "watchlist"
	tableWatchHistory = "watch_history"
)

var allTables = []string{tableMovies, tableTVShows, tableWatchlist, tableWatchHistory}

// tableFor maps an item kind to its catalog table.
func tableFor(kind models.ItemKind) (string, error) {
	switch kind {
	case models.KindMovie:
		return tableMovies, nil
	case models.KindTVShow:
		return tableTVShows, nil
	}
	return "", fmt.Errorf("unknown item kind %q", kind)
}

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the catalog and per-user tables.
//
// Lists are VARCHAR[] columns. TV show seasons are a JSON document in a
// VARCHAR column because their shape is only ever read back whole.
// Timestamps are written from Go so no ICU-dependent defaults are needed.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id VARCHAR PRIMARY KEY,
			title VARCHAR NOT NULL,
			description VARCHAR NOT NULL,
			genres VARCHAR[] NOT NULL,
			cast_members VARCHAR[] NOT NULL,
			is_trending BOOLEAN NOT NULL DEFAULT false,
			is_latest BOOLEAN NOT NULL DEFAULT false,
			url VARCHAR NOT NULL,
			video_url VARCHAR NOT NULL DEFAULT '',
			thumbnail VARCHAR NOT NULL DEFAULT '',
			views BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tv_shows (
			id VARCHAR PRIMARY KEY,
			title VARCHAR NOT NULL,
			description VARCHAR NOT NULL,
			genres VARCHAR[] NOT NULL,
			cast_members VARCHAR[] NOT NULL,
			is_trending BOOLEAN NOT NULL DEFAULT false,
			is_latest BOOLEAN NOT NULL DEFAULT false,
			url VARCHAR NOT NULL,
			thumbnail VARCHAR NOT NULL DEFAULT '',
			views BIGINT NOT NULL DEFAULT 0,
			seasons VARCHAR NOT NULL DEFAULT '[]',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS watchlist (
			user_id VARCHAR NOT NULL,
			item_id VARCHAR NOT NULL,
			item_type VARCHAR NOT NULL,
			added_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, item_id, item_type)
		)`,
		`CREATE TABLE IF NOT EXISTS watch_history (
			user_id VARCHAR NOT NULL,
			item_id VARCHAR NOT NULL,
			item_type VARCHAR NOT NULL,
			watched_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, item_id, item_type)
		)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}
