// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/tomtom215/vortax/internal/models"
	"github.com/tomtom215/vortax/internal/tmdb"
)

// DefaultMaxResults caps a merged recommendation list.
const DefaultMaxResults = 8

// Merge combines external and local results into one ranked list. External
// items come first, so on a duplicate title the external copy is kept. The
// list is stably sorted by popularity, highest first, and cut to max items.
func Merge(external []tmdb.Result, local []models.CatalogItem, ct ContentType, imageBase string, max int) []models.RecommendationItem {
	if max <= 0 {
		max = DefaultMaxResults
	}
	imageBase = strings.TrimSuffix(imageBase, "/")

	items := make([]models.RecommendationItem, 0, len(external)+len(local))
	for _, r := range external {
		items = append(items, models.RecommendationItem{
			ID:          strconv.FormatInt(r.ID, 10),
			Title:       r.DisplayTitle(),
			Description: r.Overview,
			Poster:      posterURL(imageBase, r.PosterPath),
			Type:        string(ct),
			Source:      models.SourceTMDB,
			Popularity:  r.Popularity,
		})
	}
	for _, c := range local {
		items = append(items, models.RecommendationItem{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Poster:      c.Thumbnail,
			Type:        string(ct),
			Source:      models.SourceLocal,
			Popularity:  float64(c.Views),
		})
	}

	items = dedupeByTitle(items)
	slices.SortStableFunc(items, func(a, b models.RecommendationItem) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	if len(items) > max {
		items = items[:max]
	}
	return items
}

func dedupeByTitle(items []models.RecommendationItem) []models.RecommendationItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, dup := seen[it.Title]; dup {
			continue
		}
		seen[it.Title] = struct{}{}
		out = append(out, it)
	}
	return out
}

func posterURL(base, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
