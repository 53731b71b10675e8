// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/vortax/internal/models"
)

func TestWatchlist(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := uuid.New().String()

	movie := insertTestMovie(t, db, "Watch Me", []string{"drama"}, 1)
	show := insertTestShow(t, db, "Binge Me", []string{"comedy"}, 1)

	if _, err := db.AddToWatchlist(ctx, user, movie.ID, models.KindMovie); err != nil {
		t.Fatalf("AddToWatchlist(movie) error = %v", err)
	}
	if _, err := db.AddToWatchlist(ctx, user, show.ID, models.KindTVShow); err != nil {
		t.Fatalf("AddToWatchlist(show) error = %v", err)
	}

	if _, err := db.AddToWatchlist(ctx, user, movie.ID, models.KindMovie); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate AddToWatchlist() error = %v, want ErrConflict", err)
	}
	if _, err := db.AddToWatchlist(ctx, user, uuid.New().String(), models.KindMovie); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddToWatchlist(unknown) error = %v, want ErrNotFound", err)
	}
	// A movie ID is not a TV show.
	if _, err := db.AddToWatchlist(ctx, user, movie.ID, models.KindTVShow); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddToWatchlist(wrong kind) error = %v, want ErrNotFound", err)
	}

	entries, err := db.GetWatchlist(ctx, user)
	if err != nil {
		t.Fatalf("GetWatchlist() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("GetWatchlist() = %d entries, want 2", len(entries))
	}
	if entries[0].Title != "Binge Me" || entries[0].Type != models.KindTVShow {
		t.Errorf("first entry = %+v, want most recent (Binge Me)", entries[0])
	}

	// Deleted catalog items stay listed with an unknown title.
	if err := db.DeleteMovie(ctx, movie.ID); err != nil {
		t.Fatalf("DeleteMovie() error = %v", err)
	}
	entries, err = db.GetWatchlist(ctx, user)
	if err != nil {
		t.Fatalf("GetWatchlist() error = %v", err)
	}
	if entries[1].Title != models.UnknownTitle || entries[1].Thumbnail != "" {
		t.Errorf("orphaned entry = %+v, want Unknown title", entries[1])
	}

	if err := db.RemoveFromWatchlist(ctx, user, show.ID); err != nil {
		t.Fatalf("RemoveFromWatchlist() error = %v", err)
	}
	if err := db.RemoveFromWatchlist(ctx, user, show.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second RemoveFromWatchlist() error = %v, want ErrNotFound", err)
	}

	n, err := db.ClearWatchlist(ctx, user)
	if err != nil {
		t.Fatalf("ClearWatchlist() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ClearWatchlist() removed %d, want 1", n)
	}

	other, err := db.GetWatchlist(ctx, uuid.New().String())
	if err != nil {
		t.Fatalf("GetWatchlist(other) error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("GetWatchlist(other user) = %d entries, want 0", len(other))
	}
}

func TestWatchHistory_RewatchUpdatesTimestamp(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := uuid.New().String()

	first := insertTestMovie(t, db, "First", []string{"action"}, 1)
	second := insertTestMovie(t, db, "Second", []string{"war"}, 1)

	e1, err := db.RecordWatch(ctx, user, first.ID, models.KindMovie)
	if err != nil {
		t.Fatalf("RecordWatch(first) error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := db.RecordWatch(ctx, user, second.ID, models.KindMovie); err != nil {
		t.Fatalf("RecordWatch(second) error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	e3, err := db.RecordWatch(ctx, user, first.ID, models.KindMovie)
	if err != nil {
		t.Fatalf("RecordWatch(first again) error = %v", err)
	}
	if !e3.WatchedAt.After(e1.WatchedAt) {
		t.Errorf("rewatch time %v not after first watch %v", e3.WatchedAt, e1.WatchedAt)
	}

	history, err := db.GetHistory(ctx, user)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("GetHistory() = %d entries, want 2 (rewatch must not duplicate)", len(history))
	}
	if history[0].ItemID != first.ID {
		t.Errorf("history[0] = %q, want rewatched item first", history[0].Title)
	}

	if _, err := db.RecordWatch(ctx, user, uuid.New().String(), models.KindMovie); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordWatch(unknown) error = %v, want ErrNotFound", err)
	}

	if err := db.RemoveFromHistory(ctx, user, second.ID); err != nil {
		t.Fatalf("RemoveFromHistory() error = %v", err)
	}
	n, err := db.ClearHistory(ctx, user)
	if err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ClearHistory() removed %d, want 1", n)
	}
}

func TestUserItemRefs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := uuid.New().String()

	movie := insertTestMovie(t, db, "M", []string{"horror", "comedy"}, 1)
	show := insertTestShow(t, db, "S", []string{"horror"}, 1)

	if _, err := db.AddToWatchlist(ctx, user, movie.ID, models.KindMovie); err != nil {
		t.Fatalf("AddToWatchlist() error = %v", err)
	}
	if _, err := db.RecordWatch(ctx, user, movie.ID, models.KindMovie); err != nil {
		t.Fatalf("RecordWatch(movie) error = %v", err)
	}
	if _, err := db.RecordWatch(ctx, user, show.ID, models.KindTVShow); err != nil {
		t.Fatalf("RecordWatch(show) error = %v", err)
	}

	refs, err := db.UserItemRefs(ctx, user)
	if err != nil {
		t.Fatalf("UserItemRefs() error = %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("UserItemRefs() = %d refs, want 3", len(refs))
	}

	genreCount := map[string]int{}
	for _, r := range refs {
		for _, g := range r.Genres {
			genreCount[g]++
		}
	}
	if genreCount["horror"] != 3 || genreCount["comedy"] != 2 {
		t.Errorf("genre counts = %v", genreCount)
	}
}
