// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/tomtom215/vortax/internal/models"
)

// PersonalSectionTitle is the heading shown above personal picks.
const PersonalSectionTitle = "Recommendations"

// UserCatalog is what the personal builder needs from storage.
// *database.DB implements it.
type UserCatalog interface {
	UserItemRefs(ctx context.Context, userID string) ([]models.UserItemRef, error)
	RecentItems(ctx context.Context, kind models.ItemKind, limit int) ([]models.CatalogItem, error)
	ItemsByGenres(ctx context.Context, kind models.ItemKind, genres, exclude []string, limit int) ([]models.CatalogItem, error)
	ItemsExcluding(ctx context.Context, kind models.ItemKind, exclude []string, limit int) ([]models.CatalogItem, error)
}

// PersonalBuilder builds a user's "for you" section from their watchlist and
// watch history.
type PersonalBuilder struct {
	store   UserCatalog
	config  PersonalConfig
	shuffle func(n int, swap func(i, j int))
}

// NewPersonalBuilder creates a PersonalBuilder.
func NewPersonalBuilder(store UserCatalog, cfg PersonalConfig) *PersonalBuilder {
	return &PersonalBuilder{store: store, config: cfg, shuffle: rand.Shuffle}
}

// Build returns up to PerType movies and PerType shows for userID. A user
// with no activity gets a random sample of the newest titles; otherwise the
// picks favour the user's most frequent genres and skip anything already on
// the watchlist or in the history.
func (b *PersonalBuilder) Build(ctx context.Context, userID string) (*models.PersonalRecommendations, error) {
	refs, err := b.store.UserItemRefs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user items: %w", err)
	}

	out := &models.PersonalRecommendations{
		SectionTitle: PersonalSectionTitle,
		Timestamp:    time.Now().UnixMilli(),
	}

	if len(refs) == 0 {
		if out.Movies, err = b.coldStart(ctx, models.KindMovie); err != nil {
			return nil, err
		}
		if out.TVShows, err = b.coldStart(ctx, models.KindTVShow); err != nil {
			return nil, err
		}
		return out, nil
	}

	top := TopGenres(refs, b.config.TopGenres)
	watched := watchedIDs(refs)
	out.TopGenres = top

	if out.Movies, err = b.pick(ctx, models.KindMovie, top, watched); err != nil {
		return nil, err
	}
	if out.TVShows, err = b.pick(ctx, models.KindTVShow, top, watched); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *PersonalBuilder) coldStart(ctx context.Context, kind models.ItemKind) ([]models.CatalogItem, error) {
	items, err := b.store.RecentItems(ctx, kind, b.config.ColdStartPool)
	if err != nil {
		return nil, fmt.Errorf("load recent %s items: %w", kind, err)
	}
	return b.sample(items, b.config.PerType), nil
}

// pick selects unwatched items carrying a top genre and tops the list up
// with other unwatched items when there are too few.
func (b *PersonalBuilder) pick(ctx context.Context, kind models.ItemKind, genres, watched []string) ([]models.CatalogItem, error) {
	want := b.config.PerType

	var picked []models.CatalogItem
	if len(genres) > 0 {
		matches, err := b.store.ItemsByGenres(ctx, kind, genres, watched, want*3)
		if err != nil {
			return nil, fmt.Errorf("load %s items by genre: %w", kind, err)
		}
		picked = b.sample(matches, want)
	}

	if short := want - len(picked); short > 0 {
		exclude := slices.Clone(watched)
		for _, it := range picked {
			exclude = append(exclude, it.ID)
		}
		extra, err := b.store.ItemsExcluding(ctx, kind, exclude, short*3)
		if err != nil {
			return nil, fmt.Errorf("load unwatched %s items: %w", kind, err)
		}
		picked = append(picked, b.sample(extra, short)...)
	}

	b.shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked, nil
}

// sample shuffles items and keeps at most n. The result is never nil.
func (b *PersonalBuilder) sample(items []models.CatalogItem, n int) []models.CatalogItem {
	out := slices.Clone(items)
	if out == nil {
		out = []models.CatalogItem{}
	}
	b.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopGenres returns the n most frequent genres across refs, most frequent
// first, ties broken by name.
func TopGenres(refs []models.UserItemRef, n int) []string {
	counts := make(map[string]int)
	for _, ref := range refs {
		for _, g := range ref.Genres {
			counts[g]++
		}
	}

	genres := make([]string, 0, len(counts))
	for g := range counts {
		genres = append(genres, g)
	}
	slices.SortFunc(genres, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if len(genres) > n {
		genres = genres[:n]
	}
	return genres
}

func watchedIDs(refs []models.UserItemRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = appendUnique(ids, ref.ItemID)
	}
	return ids
}
