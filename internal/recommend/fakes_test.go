// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/vortax/internal/models"
	"github.com/tomtom215/vortax/internal/tmdb"
)

type fakeCatalog struct {
	mu      sync.Mutex
	items   []models.CatalogItem
	err     error
	panics  bool
	calls   int
	kind    models.ItemKind
	terms   []string
	limitIn int
}

func (f *fakeCatalog) MatchByTerms(_ context.Context, kind models.ItemKind, terms []string, limit int) ([]models.CatalogItem, error) {
	f.mu.Lock()
	f.calls++
	f.kind, f.terms, f.limitIn = kind, terms, limit
	f.mu.Unlock()

	if f.panics {
		panic("catalog exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeDiscovery struct {
	mu      sync.Mutex
	results []tmdb.Result
	err     error
	delay   time.Duration
	calls   int
	params  tmdb.DiscoverParams
}

func (f *fakeDiscovery) Discover(ctx context.Context, params tmdb.DiscoverParams) ([]tmdb.Result, error) {
	f.mu.Lock()
	f.calls++
	f.params = params
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func localItems(n int, kind models.ItemKind) []models.CatalogItem {
	items := make([]models.CatalogItem, n)
	for i := range items {
		items[i] = models.CatalogItem{
			ID:        fmt.Sprintf("local-%d", i),
			Kind:      kind,
			Title:     fmt.Sprintf("Local Title %d", i),
			Thumbnail: fmt.Sprintf("https://cdn.example/%d.jpg", i),
			Genres:    []string{"horror"},
			Views:     int64(100 * (i + 1)),
		}
	}
	return items
}

func tmdbResults(n int) []tmdb.Result {
	results := make([]tmdb.Result, n)
	for i := range results {
		results[i] = tmdb.Result{
			ID:         int64(1000 + i),
			Title:      fmt.Sprintf("External Title %d", i),
			Overview:   "overview",
			PosterPath: fmt.Sprintf("/poster%d.jpg", i),
			Popularity: float64(50 + i),
		}
	}
	return results
}
