// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/vortax/internal/metrics"
	"github.com/tomtom215/vortax/internal/models"
)

func firstItem(t *testing.T, env *testEnv, kind models.ItemKind, genre string) models.CatalogItem {
	t.Helper()
	items, err := env.db.ItemsByGenres(context.Background(), kind, []string{genre}, nil, 1)
	if err != nil || len(items) == 0 {
		t.Fatalf("no seeded %s with genre %q: %v", kind, genre, err)
	}
	return items[0]
}

func TestWatchlist_Lifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	user := uuid.New().String()
	base := "/api/v1/users/" + user + "/watchlist"
	movie := firstItem(t, env, models.KindMovie, "horror")
	body := fmt.Sprintf(`{"itemId":%q,"type":"movie"}`, movie.ID)

	before := testutil.ToFloat64(metrics.WatchEvents.WithLabelValues(listWatchlist, "add"))

	rec := env.do(t, http.MethodPost, base, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := testutil.ToFloat64(metrics.WatchEvents.WithLabelValues(listWatchlist, "add")); got != before+1 {
		t.Errorf("watch events = %v, want %v", got, before+1)
	}

	expectError(t, env.do(t, http.MethodPost, base, body), http.StatusConflict, ErrCodeConflict)

	rec = env.do(t, http.MethodGet, base, "")
	var entries []models.WatchlistEntry
	decodeEnvelope(t, rec, &entries)
	if len(entries) != 1 || entries[0].Title != movie.Title || entries[0].Type != models.KindMovie {
		t.Fatalf("watchlist = %+v", entries)
	}

	rec = env.do(t, http.MethodDelete, base+"/"+movie.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d", rec.Code)
	}
	expectError(t, env.do(t, http.MethodDelete, base+"/"+movie.ID, ""), http.StatusNotFound, ErrCodeNotFound)
}

func TestWatchlist_AddRejectsBadInput(t *testing.T) {
	env := newTestEnv(t, nil)
	base := "/api/v1/users/" + uuid.New().String() + "/watchlist"
	movie := firstItem(t, env, models.KindMovie, "comedy")

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"unknown item", base, fmt.Sprintf(`{"itemId":%q,"type":"movie"}`, uuid.New()), http.StatusNotFound, ErrCodeNotFound},
		{"wrong table", base, fmt.Sprintf(`{"itemId":%q,"type":"tvshow"}`, movie.ID), http.StatusNotFound, ErrCodeNotFound},
		{"bad type", base, fmt.Sprintf(`{"itemId":%q,"type":"book"}`, movie.ID), http.StatusBadRequest, ErrCodeValidation},
		{"bad item id", base, `{"itemId":"42","type":"movie"}`, http.StatusBadRequest, ErrCodeValidation},
		{"bad user id", "/api/v1/users/bob/watchlist", fmt.Sprintf(`{"itemId":%q,"type":"movie"}`, movie.ID), http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, env.do(t, http.MethodPost, tt.path, tt.body), tt.wantStatus, tt.wantCode)
		})
	}
}

func TestHistory_RewatchAndClear(t *testing.T) {
	env := newTestEnv(t, nil)
	base := "/api/v1/users/" + uuid.New().String() + "/history"
	show := firstItem(t, env, models.KindTVShow, "comedy")
	movie := firstItem(t, env, models.KindMovie, "comedy")

	for _, body := range []string{
		fmt.Sprintf(`{"itemId":%q,"type":"tvshow"}`, show.ID),
		fmt.Sprintf(`{"itemId":%q,"type":"movie"}`, movie.ID),
		fmt.Sprintf(`{"itemId":%q,"type":"tvshow"}`, show.ID),
	} {
		if rec := env.do(t, http.MethodPost, base, body); rec.Code != http.StatusCreated {
			t.Fatalf("record status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	rec := env.do(t, http.MethodGet, base, "")
	var entries []models.HistoryEntry
	decodeEnvelope(t, rec, &entries)
	if len(entries) != 2 {
		t.Fatalf("history = %+v, want 2 entries after a rewatch", entries)
	}
	if entries[0].ItemID != show.ID {
		t.Errorf("newest entry = %s, want the rewatched show", entries[0].ItemID)
	}

	rec = env.do(t, http.MethodDelete, base, "")
	var cleared ClearResult
	decodeEnvelope(t, rec, &cleared)
	if cleared.Removed != 2 {
		t.Errorf("cleared = %d, want 2", cleared.Removed)
	}

	rec = env.do(t, http.MethodGet, base, "")
	entries = nil
	decodeEnvelope(t, rec, &entries)
	if len(entries) != 0 {
		t.Errorf("history after clear = %+v", entries)
	}
}

func TestPersonalRecommendations(t *testing.T) {
	env := newTestEnv(t, nil)
	user := uuid.New().String()

	rec := env.do(t, http.MethodGet, "/api/v1/users/"+user+"/recommendations", "")
	var cold models.PersonalRecommendations
	decodeEnvelope(t, rec, &cold)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(cold.Movies) != 4 || len(cold.TVShows) != 4 || cold.SectionTitle != "Recommendations" {
		t.Errorf("cold start = %d movies, %d shows, title %q", len(cold.Movies), len(cold.TVShows), cold.SectionTitle)
	}

	watched := firstItem(t, env, models.KindMovie, "horror")
	body := fmt.Sprintf(`{"itemId":%q,"type":"movie"}`, watched.ID)
	if rec := env.do(t, http.MethodPost, "/api/v1/users/"+user+"/history", body); rec.Code != http.StatusCreated {
		t.Fatalf("record status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/users/"+user+"/recommendations", "")
	var warm models.PersonalRecommendations
	decodeEnvelope(t, rec, &warm)
	// every genre counts once, so ties sort by name
	wantGenres := slices.Sorted(slices.Values(watched.Genres))
	if !slices.Equal(warm.TopGenres, wantGenres) {
		t.Errorf("top genres = %v, want %v", warm.TopGenres, wantGenres)
	}
	for _, m := range warm.Movies {
		if m.ID == watched.ID {
			t.Errorf("watched movie %q recommended again", m.Title)
		}
	}
	if len(warm.Movies) != 4 {
		t.Errorf("len(movies) = %d, want 4 with filler", len(warm.Movies))
	}
}
