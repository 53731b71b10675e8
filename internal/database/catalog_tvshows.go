// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/vortax/internal/models"
)

var tvShowColumns = "id, title, description, " + listColumn("genres") + ", " + listColumn("cast_members") +
	", is_trending, is_latest, url, thumbnail, views, seasons, created_at, updated_at"

func scanTVShow(row rowScanner) (models.TVShow, error) {
	var s models.TVShow
	var genres, cast, seasons string
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &genres, &cast,
		&s.IsTrending, &s.IsLatest, &s.URL, &s.Thumbnail, &s.Views, &seasons,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return models.TVShow{}, err
	}
	s.Genres = splitList(genres)
	s.Cast = splitList(cast)
	s.Type = models.KindTVShow
	s.Seasons = []models.Season{}
	if seasons != "" {
		if err := json.Unmarshal([]byte(seasons), &s.Seasons); err != nil {
			return models.TVShow{}, fmt.Errorf("failed to decode seasons for %s: %w", s.ID, err)
		}
	}
	return s, nil
}

func encodeSeasons(seasons []models.Season) (string, error) {
	if seasons == nil {
		seasons = []models.Season{}
	}
	b, err := json.Marshal(seasons)
	if err != nil {
		return "", fmt.Errorf("failed to encode seasons: %w", err)
	}
	return string(b), nil
}

// CreateTVShow inserts a TV show. A missing ID is generated; timestamps are set to now.
func (db *DB) CreateTVShow(ctx context.Context, s *models.TVShow) (err error) {
	defer observe("insert", tableTVShows, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	s.Type = models.KindTVShow
	s.Genres = normalizeGenres(s.Genres)
	if s.Cast == nil {
		s.Cast = []string{}
	}
	if s.Seasons == nil {
		s.Seasons = []models.Season{}
	}

	seasons, err := encodeSeasons(s.Seasons)
	if err != nil {
		return err
	}
	genresSQL, genresArgs := listExpr(s.Genres)
	castSQL, castArgs := listExpr(s.Cast)

	query := `INSERT INTO tv_shows (id, title, description, genres, cast_members, is_trending, is_latest,
		url, thumbnail, views, seasons, created_at, updated_at)
		VALUES (?, ?, ?, ` + genresSQL + `, ` + castSQL + `, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{s.ID, s.Title, s.Description}
	args = append(args, genresArgs...)
	args = append(args, castArgs...)
	args = append(args, s.IsTrending, s.IsLatest, s.URL, s.Thumbnail, s.Views, seasons, s.CreatedAt, s.UpdatedAt)

	if _, err = db.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert tv show: %w", err)
	}
	return nil
}

// GetTVShow returns one TV show or ErrNotFound.
func (db *DB) GetTVShow(ctx context.Context, id string) (_ *models.TVShow, err error) {
	defer observe("select", tableTVShows, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	s, err := scanTVShow(db.conn.QueryRowContext(ctx, "SELECT "+tvShowColumns+" FROM tv_shows WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tv show: %w", err)
	}
	return &s, nil
}

// UpdateTVShow replaces the editable fields, seasons included.
func (db *DB) UpdateTVShow(ctx context.Context, s *models.TVShow) (err error) {
	defer observe("update", tableTVShows, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	s.UpdatedAt = time.Now().UTC()
	s.Genres = normalizeGenres(s.Genres)
	if s.Cast == nil {
		s.Cast = []string{}
	}
	seasons, err := encodeSeasons(s.Seasons)
	if err != nil {
		return err
	}
	genresSQL, genresArgs := listExpr(s.Genres)
	castSQL, castArgs := listExpr(s.Cast)

	query := `UPDATE tv_shows SET title = ?, description = ?, genres = ` + genresSQL + `, cast_members = ` + castSQL + `,
		is_trending = ?, is_latest = ?, url = ?, thumbnail = ?, views = ?, seasons = ?, updated_at = ?
		WHERE id = ?`

	args := []interface{}{s.Title, s.Description}
	args = append(args, genresArgs...)
	args = append(args, castArgs...)
	args = append(args, s.IsTrending, s.IsLatest, s.URL, s.Thumbnail, s.Views, seasons, s.UpdatedAt, s.ID)

	res, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update tv show: %w", err)
	}
	return requireAffected(res)
}

// DeleteTVShow removes a TV show.
func (db *DB) DeleteTVShow(ctx context.Context, id string) (err error) {
	defer observe("delete", tableTVShows, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM tv_shows WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tv show: %w", err)
	}
	return requireAffected(res)
}

// ListTVShows returns a page of TV shows, newest first, and the filtered total.
func (db *DB) ListTVShows(ctx context.Context, filter models.CatalogFilter) (_ []models.TVShow, total int, err error) {
	defer observe("select", tableTVShows, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	where, args := catalogWhere(filter)
	if err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM tv_shows"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tv shows: %w", err)
	}

	limit, offset := pageBounds(filter)
	query := "SELECT " + tvShowColumns + " FROM tv_shows" + where + " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	shows, err := queryAndScan(ctx, db.conn, query, append(args, limit, offset), func(rows *sql.Rows) (models.TVShow, error) {
		return scanTVShow(rows)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tv shows: %w", err)
	}
	return shows, total, nil
}
