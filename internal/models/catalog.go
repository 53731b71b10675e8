// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package models

import (
	"time"
)

// ItemKind identifies a catalog table on the wire: "movie" or "tvshow".
type ItemKind string

const (
	KindMovie  ItemKind = "movie"
	KindTVShow ItemKind = "tvshow"
)

// ParseItemKind accepts "movie" and "tvshow".
func ParseItemKind(s string) (ItemKind, bool) {
	switch ItemKind(s) {
	case KindMovie, KindTVShow:
		return ItemKind(s), true
	}
	return "", false
}

// Movie is a row of the movies table.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	Cast        []string  `json:"cast"`
	IsTrending  bool      `json:"isTrending"`
	IsLatest    bool      `json:"isLatest"`
	URL         string    `json:"url"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Thumbnail   string    `json:"thumbnail"`
	Views       int64     `json:"views"`
	Type        ItemKind  `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Episode is one entry of a season.
type Episode struct {
	EpisodeNumber int    `json:"episodeNumber" validate:"gte=0"`
	Title         string `json:"title"`
	URL           string `json:"url" validate:"required,http_url"`
}

// Season groups the episodes of a TV show.
type Season struct {
	SeasonNumber int       `json:"seasonNumber" validate:"gte=0"`
	Episodes     []Episode `json:"episodes" validate:"dive"`
}

// TVShow is a row of the tv_shows table. Seasons are stored as a JSON document.
type TVShow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	Cast        []string  `json:"cast"`
	IsTrending  bool      `json:"isTrending"`
	IsLatest    bool      `json:"isLatest"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail"`
	Views       int64     `json:"views"`
	Seasons     []Season  `json:"seasons"`
	Type        ItemKind  `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EpisodeCount sums the episodes across all seasons.
func (s *TVShow) EpisodeCount() int {
	n := 0
	for i := range s.Seasons {
		n += len(s.Seasons[i].Episodes)
	}
	return n
}

// CatalogItem is the projection shared by both catalog tables. The resolver
// matches against it and personal recommendations are built from it.
type CatalogItem struct {
	ID          string    `json:"id"`
	Kind        ItemKind  `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Genres      []string  `json:"genres"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CatalogFilter narrows a catalog listing.
type CatalogFilter struct {
	Trending bool
	Latest   bool
	Genre    string
	Limit    int
	Offset   int
}

// SearchHit is one title search result. Type is "movie" or "tv".
type SearchHit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Type      string `json:"type"`
}

// SearchScope selects which tables a title search covers.
type SearchScope string

const (
	SearchMovies  SearchScope = "movies"
	SearchTVShows SearchScope = "tvshows"
	SearchAll     SearchScope = "all"
)
