// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/vortax/internal/models"
)

// userListJoin resolves a user list row to its catalog title and thumbnail.
// The first two parameters are models.UnknownTitle and the user ID.
const userListJoin = `SELECT u.item_id, u.item_type,
		coalesce(m.title, t.title, ?::VARCHAR), coalesce(m.thumbnail, t.thumbnail, ''), u.%[2]s
	FROM %[1]s u
	LEFT JOIN movies m ON u.item_type = 'movie' AND m.id = u.item_id
	LEFT JOIN tv_shows t ON u.item_type = 'tvshow' AND t.id = u.item_id
	WHERE u.user_id = ?
	ORDER BY u.%[2]s DESC, u.item_id`

// AddToWatchlist adds an existing catalog item to a user's watchlist.
// It returns ErrNotFound for an unknown item and ErrConflict for a duplicate.
func (db *DB) AddToWatchlist(ctx context.Context, userID, itemID string, kind models.ItemKind) (_ *models.WatchlistEntry, err error) {
	exists, err := db.ItemExists(ctx, kind, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	defer observe("insert", tableWatchlist, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO watchlist (user_id, item_id, item_type, added_at) VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING`, userID, itemID, string(kind), now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert watchlist entry: %w", err)
	}
	if n, rerr := res.RowsAffected(); rerr == nil && n == 0 {
		return nil, ErrConflict
	}
	return &models.WatchlistEntry{ItemID: itemID, Type: kind, AddedAt: now}, nil
}

// GetWatchlist returns a user's watchlist, most recently added first.
func (db *DB) GetWatchlist(ctx context.Context, userID string) (_ []models.WatchlistEntry, err error) {
	defer observe("select", tableWatchlist, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(userListJoin, tableWatchlist, "added_at")
	entries, err := queryAndScan(ctx, db.conn, query, []interface{}{models.UnknownTitle, userID},
		func(rows *sql.Rows) (models.WatchlistEntry, error) {
			var e models.WatchlistEntry
			var kind string
			if err := rows.Scan(&e.ItemID, &kind, &e.Title, &e.Thumbnail, &e.AddedAt); err != nil {
				return models.WatchlistEntry{}, err
			}
			e.Type = models.ItemKind(kind)
			return e, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	return entries, nil
}

// RemoveFromWatchlist deletes one item from a user's watchlist.
func (db *DB) RemoveFromWatchlist(ctx context.Context, userID, itemID string) (err error) {
	defer observe("delete", tableWatchlist, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM watchlist WHERE user_id = ? AND item_id = ?", userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	return requireAffected(res)
}

// ClearWatchlist deletes every watchlist entry of a user and returns how many were removed.
func (db *DB) ClearWatchlist(ctx context.Context, userID string) (_ int64, err error) {
	defer observe("delete", tableWatchlist, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM watchlist WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear watchlist: %w", err)
	}
	return res.RowsAffected()
}
