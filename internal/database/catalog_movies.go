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

	"github.com/google/uuid"

	"github.com/tomtom215/vortax/internal/models"
)

var movieColumns = "id, title, description, " + listColumn("genres") + ", " + listColumn("cast_members") +
	", is_trending, is_latest, url, video_url, thumbnail, views, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var m models.Movie
	var genres, cast string
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &genres, &cast,
		&m.IsTrending, &m.IsLatest, &m.URL, &m.VideoURL, &m.Thumbnail, &m.Views,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return models.Movie{}, err
	}
	m.Genres = splitList(genres)
	m.Cast = splitList(cast)
	m.Type = models.KindMovie
	return m, nil
}

// CreateMovie inserts a movie. A missing ID is generated; timestamps are set to now.
func (db *DB) CreateMovie(ctx context.Context, m *models.Movie) (err error) {
	defer observe("insert", tableMovies, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt, m.UpdatedAt = now, now
	m.Type = models.KindMovie
	m.Genres = normalizeGenres(m.Genres)
	if m.Cast == nil {
		m.Cast = []string{}
	}

	genresSQL, genresArgs := listExpr(m.Genres)
	castSQL, castArgs := listExpr(m.Cast)

	query := `INSERT INTO movies (id, title, description, genres, cast_members, is_trending, is_latest,
		url, video_url, thumbnail, views, created_at, updated_at)
		VALUES (?, ?, ?, ` + genresSQL + `, ` + castSQL + `, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{m.ID, m.Title, m.Description}
	args = append(args, genresArgs...)
	args = append(args, castArgs...)
	args = append(args, m.IsTrending, m.IsLatest, m.URL, m.VideoURL, m.Thumbnail, m.Views, m.CreatedAt, m.UpdatedAt)

	if _, err = db.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}
	return nil
}

// GetMovie returns one movie or ErrNotFound.
func (db *DB) GetMovie(ctx context.Context, id string) (_ *models.Movie, err error) {
	defer observe("select", tableMovies, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	m, err := scanMovie(db.conn.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &m, nil
}

// UpdateMovie replaces the editable fields of an existing movie.
func (db *DB) UpdateMovie(ctx context.Context, m *models.Movie) (err error) {
	defer observe("update", tableMovies, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	m.UpdatedAt = time.Now().UTC()
	m.Genres = normalizeGenres(m.Genres)
	if m.Cast == nil {
		m.Cast = []string{}
	}
	genresSQL, genresArgs := listExpr(m.Genres)
	castSQL, castArgs := listExpr(m.Cast)

	query := `UPDATE movies SET title = ?, description = ?, genres = ` + genresSQL + `, cast_members = ` + castSQL + `,
		is_trending = ?, is_latest = ?, url = ?, video_url = ?, thumbnail = ?, views = ?, updated_at = ?
		WHERE id = ?`

	args := []interface{}{m.Title, m.Description}
	args = append(args, genresArgs...)
	args = append(args, castArgs...)
	args = append(args, m.IsTrending, m.IsLatest, m.URL, m.VideoURL, m.Thumbnail, m.Views, m.UpdatedAt, m.ID)

	res, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	return requireAffected(res)
}

// DeleteMovie removes a movie. User list entries that point at it are kept
// and render with an unknown title.
func (db *DB) DeleteMovie(ctx context.Context, id string) (err error) {
	defer observe("delete", tableMovies, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return requireAffected(res)
}

// ListMovies returns a page of movies, newest first, and the filtered total.
func (db *DB) ListMovies(ctx context.Context, filter models.CatalogFilter) (_ []models.Movie, total int, err error) {
	defer observe("select", tableMovies, time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	where, args := catalogWhere(filter)
	if err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	limit, offset := pageBounds(filter)
	query := "SELECT " + movieColumns + " FROM movies" + where + " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	movies, err := queryAndScan(ctx, db.conn, query, append(args, limit, offset), func(rows *sql.Rows) (models.Movie, error) {
		return scanMovie(rows)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, total, nil
}

// requireAffected maps a zero-row update or delete to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
