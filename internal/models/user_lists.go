// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package models

import (
	"time"
)

// UnknownTitle is shown for watchlist entries whose item has been deleted.
const UnknownTitle = "Unknown"

// WatchlistEntry is a watchlist row joined with its catalog item.
type WatchlistEntry struct {
	ItemID    string    `json:"itemId"`
	Type      ItemKind  `json:"type"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	AddedAt   time.Time `json:"addedAt"`
}

// HistoryEntry is a watch_history row joined with its catalog item.
type HistoryEntry struct {
	ItemID    string    `json:"itemId"`
	Type      ItemKind  `json:"type"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	WatchedAt time.Time `json:"watchedAt"`
}

// UserItemRef identifies a catalog item from a user's watchlist or history,
// with the genres needed to build a taste profile.
type UserItemRef struct {
	ItemID string
	Kind   ItemKind
	Genres []string
}

// PersonalRecommendations is the "for you" section payload.
type PersonalRecommendations struct {
	Movies       []CatalogItem `json:"movies"`
	TVShows      []CatalogItem `json:"tvShows"`
	SectionTitle string        `json:"sectionTitle"`
	TopGenres    []string      `json:"topGenres,omitempty"`
	Timestamp    int64         `json:"timestamp"`
}
