// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/vortax/internal/database/query"
	"github.com/tomtom215/vortax/internal/models"
)

var catalogItemColumns = "id, title, description, thumbnail, " + listColumn("genres") + ", views, created_at"

func catalogItemScanner(kind models.ItemKind) scanFunc[models.CatalogItem] {
	return func(rows *sql.Rows) (models.CatalogItem, error) {
		item := models.CatalogItem{Kind: kind}
		var genres string
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Thumbnail, &genres,
			&item.Views, &item.CreatedAt); err != nil {
			return models.CatalogItem{}, err
		}
		item.Genres = splitList(genres)
		return item, nil
	}
}

// queryCatalogItems selects CatalogItem projections from the table for kind.
// where must start with " WHERE" or be empty; tail holds ORDER BY and LIMIT.
func (db *DB) queryCatalogItems(ctx context.Context, kind models.ItemKind, where, tail string, args []interface{}) (_ []models.CatalogItem, err error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	defer observe("select", table, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	stmt := "SELECT " + catalogItemColumns + " FROM " + table + where + " " + tail
	items, err := queryAndScan(ctx, db.conn, stmt, args, catalogItemScanner(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return items, nil
}

// MatchByTerms returns up to limit items whose genre list, title or
// description matches any of terms, case-insensitively. Terms are matched
// literally. The most viewed items come first.
func (db *DB) MatchByTerms(ctx context.Context, kind models.ItemKind, terms []string, limit int) ([]models.CatalogItem, error) {
	pattern := termsPattern(terms)
	if pattern == "" || limit <= 0 {
		return []models.CatalogItem{}, nil
	}

	where := ` WHERE regexp_matches(array_to_string(genres, ','), ?, 'i')
		OR regexp_matches(title, ?, 'i')
		OR regexp_matches(description, ?, 'i')`
	return db.queryCatalogItems(ctx, kind, where, "ORDER BY views DESC, title LIMIT ?",
		[]interface{}{pattern, pattern, pattern, limit})
}

// SearchTitles runs a case-insensitive substring search over titles and
// returns at most perType hits from each table in scope, movies first.
func (db *DB) SearchTitles(ctx context.Context, q string, scope models.SearchScope, perType int) ([]models.SearchHit, error) {
	q = strings.TrimSpace(q)
	hits := make([]models.SearchHit, 0)
	if q == "" || perType <= 0 {
		return hits, nil
	}

	kinds := []models.ItemKind{models.KindMovie, models.KindTVShow}
	switch scope {
	case models.SearchMovies:
		kinds = kinds[:1]
	case models.SearchTVShows:
		kinds = kinds[1:]
	}

	for _, kind := range kinds {
		items, err := db.queryCatalogItems(ctx, kind, " WHERE contains(lower(title), lower(?::VARCHAR))",
			"ORDER BY views DESC, title LIMIT ?", []interface{}{q, perType})
		if err != nil {
			return nil, err
		}
		hitType := "movie"
		if kind == models.KindTVShow {
			hitType = "tv"
		}
		for _, it := range items {
			hits = append(hits, models.SearchHit{ID: it.ID, Title: it.Title, Thumbnail: it.Thumbnail, Type: hitType})
		}
	}
	return hits, nil
}

// RecentItems returns the newest limit items of a kind.
func (db *DB) RecentItems(ctx context.Context, kind models.ItemKind, limit int) ([]models.CatalogItem, error) {
	return db.queryCatalogItems(ctx, kind, "", "ORDER BY created_at DESC, id LIMIT ?", []interface{}{limit})
}

// ItemsByGenres returns up to limit items carrying any of genres whose IDs
// are not in exclude.
func (db *DB) ItemsByGenres(ctx context.Context, kind models.ItemKind, genres, exclude []string, limit int) ([]models.CatalogItem, error) {
	if len(genres) == 0 {
		return []models.CatalogItem{}, nil
	}
	where, args := query.NewWhereBuilder().
		AddListHasAny("genres", normalizeGenres(genres)).
		AddNotIn("id", exclude).
		BuildWithPrefix()
	return db.queryCatalogItems(ctx, kind, where, "ORDER BY id LIMIT ?", append(args, limit))
}

// ItemsExcluding returns up to limit items whose IDs are not in exclude.
func (db *DB) ItemsExcluding(ctx context.Context, kind models.ItemKind, exclude []string, limit int) ([]models.CatalogItem, error) {
	where, args := query.NewWhereBuilder().AddNotIn("id", exclude).BuildWithPrefix()
	return db.queryCatalogItems(ctx, kind, where, "ORDER BY id LIMIT ?", append(args, limit))
}

// ItemExists reports whether a catalog item of kind has the given ID.
func (db *DB) ItemExists(ctx context.Context, kind models.ItemKind, id string) (_ bool, err error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	defer observe("select", table, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int
	if err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE id = ?", id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}
	return n > 0, nil
}
