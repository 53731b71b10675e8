// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"net/http"

	"github.com/tomtom215/vortax/internal/models"
)

// searchPerType caps the hits returned from each catalog table.
const searchPerType = 5

// SearchResults is the payload of GET /search.
type SearchResults struct {
	Results []models.SearchHit `json:"results"`
}

// Search runs a case-insensitive title search over movies and TV shows.
//
// @Summary Search titles
// @Tags Catalog
// @Produce json
// @Param q query string true "Title substring"
// @Param type query string false "movies, tvshows or all" default(all)
// @Success 200 {object} APIResponse{data=SearchResults}
// @Failure 400 {object} APIResponse
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := SearchRequest{
		Q:    r.URL.Query().Get("q"),
		Type: r.URL.Query().Get("type"),
	}
	if req.Type == "" {
		req.Type = string(models.SearchAll)
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	hits, err := h.db.SearchTitles(r.Context(), req.Q, models.SearchScope(req.Type), searchPerType)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(SearchResults{Results: hits})
}
