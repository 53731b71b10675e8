// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"github.com/tomtom215/vortax/internal/models"
)

// RecommendationRequest is the body of POST /recommendations. An empty
// query is rejected by the resolver, not by a validation tag, so the client
// gets the resolver's prompt message.
type RecommendationRequest struct {
	Query string `json:"query"`
}

// CatalogListRequest holds the validated query parameters of the list endpoints.
type CatalogListRequest struct {
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Offset int    `json:"offset" validate:"min=0,max=1000000"`
	Genre  string `json:"genre" validate:"omitempty,genrename"`
}

// MovieRequest is the body of POST and PUT /movies.
type MovieRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=300"`
	Description string   `json:"description" validate:"required,notblank,max=5000"`
	Genres      []string `json:"genres" validate:"required,min=1,max=20,dive,notblank"`
	Cast        []string `json:"cast" validate:"omitempty,max=100,dive,notblank"`
	IsTrending  bool     `json:"isTrending"`
	IsLatest    bool     `json:"isLatest"`
	URL         string   `json:"url" validate:"required,url"`
	VideoURL    string   `json:"videoUrl" validate:"omitempty,url"`
	Thumbnail   string   `json:"thumbnail" validate:"omitempty,max=2048"`
	Views       int64    `json:"views" validate:"gte=0"`
}

func (req *MovieRequest) toModel(id string) *models.Movie {
	return &models.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		Cast:        req.Cast,
		IsTrending:  req.IsTrending,
		IsLatest:    req.IsLatest,
		URL:         req.URL,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Views:       req.Views,
	}
}

// TVShowRequest is the body of POST and PUT /tvshows.
type TVShowRequest struct {
	Title       string          `json:"title" validate:"required,notblank,max=300"`
	Description string          `json:"description" validate:"required,notblank,max=5000"`
	Genres      []string        `json:"genres" validate:"required,min=1,max=20,dive,notblank"`
	Cast        []string        `json:"cast" validate:"omitempty,max=100,dive,notblank"`
	IsTrending  bool            `json:"isTrending"`
	IsLatest    bool            `json:"isLatest"`
	URL         string          `json:"url" validate:"required,url"`
	Thumbnail   string          `json:"thumbnail" validate:"omitempty,max=2048"`
	Views       int64           `json:"views" validate:"gte=0"`
	Seasons     []models.Season `json:"seasons" validate:"omitempty,dive"`
}

func (req *TVShowRequest) toModel(id string) *models.TVShow {
	seasons := req.Seasons
	if seasons == nil {
		seasons = []models.Season{}
	}
	return &models.TVShow{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		Cast:        req.Cast,
		IsTrending:  req.IsTrending,
		IsLatest:    req.IsLatest,
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
		Views:       req.Views,
		Seasons:     seasons,
	}
}

// SearchRequest holds the validated query parameters of GET /search.
type SearchRequest struct {
	Q    string `json:"q" validate:"required,notblank,max=200"`
	Type string `json:"type" validate:"oneof=movies tvshows all"`
}

// UserListRequest is the body of POST /users/{userID}/watchlist and /history.
type UserListRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid"`
	Type   string `json:"type" validate:"required,oneof=movie tvshow"`
}
