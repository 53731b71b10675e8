// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/tomtom215/vortax/internal/logging"
	"github.com/tomtom215/vortax/internal/metrics"
	"github.com/tomtom215/vortax/internal/models"
	"github.com/tomtom215/vortax/internal/tmdb"
)

// DefaultSourceLimit caps each source's contribution.
const DefaultSourceLimit = 5

// CatalogSource is the local catalog. *database.DB implements it.
type CatalogSource interface {
	MatchByTerms(ctx context.Context, kind models.ItemKind, terms []string, limit int) ([]models.CatalogItem, error)
}

// DiscoverySource is the external discovery API. tmdb.Client and
// tmdb.CircuitBreakerClient implement it.
type DiscoverySource interface {
	Discover(ctx context.Context, params tmdb.DiscoverParams) ([]tmdb.Result, error)
}

// FetchRequest describes one dual-source lookup.
type FetchRequest struct {
	ContentType ContentType
	Genres      []string // genres, or keywords when Fallback is set
	Fallback    bool
}

// FetchResult holds what each source returned. A failed source leaves its
// slice empty.
type FetchResult struct {
	External []tmdb.Result
	Local    []models.CatalogItem
}

// Fetcher queries the external and local sources concurrently.
type Fetcher struct {
	catalog   CatalogSource
	discovery DiscoverySource
	limit     int
}

// NewFetcher creates a Fetcher. discovery may be nil when the external API
// is disabled; limit <= 0 selects DefaultSourceLimit.
func NewFetcher(catalog CatalogSource, discovery DiscoverySource, limit int) *Fetcher {
	if limit <= 0 {
		limit = DefaultSourceLimit
	}
	return &Fetcher{catalog: catalog, discovery: discovery, limit: limit}
}

// Fetch runs both lookups and waits for them. Errors and panics in either
// lookup are logged and turned into an empty contribution; Fetch itself
// never fails.
func (f *Fetcher) Fetch(ctx context.Context, req FetchRequest) FetchResult {
	res := FetchResult{
		External: []tmdb.Result{},
		Local:    []models.CatalogItem{},
	}

	var genreIDs []int
	if !req.Fallback {
		genreIDs = GenreIDs(req.Genres)
	}

	var wg conc.WaitGroup
	if f.discovery != nil && (len(genreIDs) > 0 || req.Fallback) {
		wg.Go(func() {
			items, err := f.discover(ctx, req, genreIDs)
			metrics.RecordSourceLookup(models.SourceTMDB, len(items), err)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Str("source", models.SourceTMDB).Msg("external lookup failed, continuing without it")
				return
			}
			if items != nil {
				res.External = items
			}
		})
	}
	if f.catalog != nil && len(req.Genres) > 0 {
		wg.Go(func() {
			items, err := f.catalog.MatchByTerms(ctx, req.ContentType.ItemKind(), req.Genres, f.limit)
			metrics.RecordSourceLookup(models.SourceLocal, len(items), err)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Str("source", models.SourceLocal).Msg("catalog lookup failed, continuing without it")
				return
			}
			if len(items) > f.limit {
				items = items[:f.limit]
			}
			if items != nil {
				res.Local = items
			}
		})
	}

	if recovered := wg.WaitAndRecover(); recovered != nil {
		logging.Ctx(ctx).Error().
			Str("panic", fmt.Sprint(recovered.Value)).
			Msg("recommendation source panicked")
	}
	return res
}

func (f *Fetcher) discover(ctx context.Context, req FetchRequest, genreIDs []int) ([]tmdb.Result, error) {
	params := tmdb.DiscoverParams{
		MediaType: req.ContentType.MediaType(),
		GenreIDs:  joinInts(genreIDs),
		SortBy:    tmdb.DefaultSortBy,
		Page:      1,
	}
	if req.Fallback {
		params.Keywords = strings.Join(req.Genres, ",")
	}

	results, err := f.discovery.Discover(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", params.MediaType, err)
	}
	if len(results) > f.limit {
		results = results[:f.limit]
	}
	return results, nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
