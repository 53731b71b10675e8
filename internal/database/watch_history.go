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

// RecordWatch marks an item as watched now. Watching it again moves the
// existing entry to the top instead of adding a second one.
func (db *DB) RecordWatch(ctx context.Context, userID, itemID string, kind models.ItemKind) (_ *models.HistoryEntry, err error) {
	exists, err := db.ItemExists(ctx, kind, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	defer observe("upsert", tableWatchHistory, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	if _, err = db.conn.ExecContext(ctx,
		`INSERT INTO watch_history (user_id, item_id, item_type, watched_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, item_id, item_type) DO UPDATE SET watched_at = excluded.watched_at`,
		userID, itemID, string(kind), now); err != nil {
		return nil, fmt.Errorf("failed to record watch: %w", err)
	}
	return &models.HistoryEntry{ItemID: itemID, Type: kind, WatchedAt: now}, nil
}

// GetHistory returns a user's watch history, most recent first.
func (db *DB) GetHistory(ctx context.Context, userID string) (_ []models.HistoryEntry, err error) {
	defer observe("select", tableWatchHistory, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(userListJoin, tableWatchHistory, "watched_at")
	entries, err := queryAndScan(ctx, db.conn, query, []interface{}{models.UnknownTitle, userID},
		func(rows *sql.Rows) (models.HistoryEntry, error) {
			var e models.HistoryEntry
			var kind string
			if err := rows.Scan(&e.ItemID, &kind, &e.Title, &e.Thumbnail, &e.WatchedAt); err != nil {
				return models.HistoryEntry{}, err
			}
			e.Type = models.ItemKind(kind)
			return e, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to get watch history: %w", err)
	}
	return entries, nil
}

// RemoveFromHistory deletes one item from a user's watch history.
func (db *DB) RemoveFromHistory(ctx context.Context, userID, itemID string) (err error) {
	defer observe("delete", tableWatchHistory, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM watch_history WHERE user_id = ? AND item_id = ?", userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return requireAffected(res)
}

// ClearHistory deletes a user's whole watch history.
func (db *DB) ClearHistory(ctx context.Context, userID string) (_ int64, err error) {
	defer observe("delete", tableWatchHistory, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM watch_history WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear watch history: %w", err)
	}
	return res.RowsAffected()
}

// UserItemRefs returns every watchlist and history item of a user with the
// genres of the catalog item it points at. An item on both lists appears twice.
func (db *DB) UserItemRefs(ctx context.Context, userID string) (_ []models.UserItemRef, err error) {
	defer observe("select", tableWatchHistory, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT u.item_id, u.item_type,
			array_to_string(coalesce(m.genres, t.genres, []::VARCHAR[]), chr(31))
		FROM (
			SELECT item_id, item_type FROM watchlist WHERE user_id = ?
			UNION ALL
			SELECT item_id, item_type FROM watch_history WHERE user_id = ?
		) u
		LEFT JOIN movies m ON u.item_type = 'movie' AND m.id = u.item_id
		LEFT JOIN tv_shows t ON u.item_type = 'tvshow' AND t.id = u.item_id`

	refs, err := queryAndScan(ctx, db.conn, query, []interface{}{userID, userID},
		func(rows *sql.Rows) (models.UserItemRef, error) {
			var r models.UserItemRef
			var kind, genres string
			if err := rows.Scan(&r.ItemID, &kind, &genres); err != nil {
				return models.UserItemRef{}, err
			}
			r.Kind = models.ItemKind(kind)
			r.Genres = splitList(genres)
			return r, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to load user items: %w", err)
	}
	return refs, nil
}
