// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/vortax/internal/models"
)

const (
	defaultListLimit = 50

	msgMovieNotFound  = "Movie not found"
	msgTVShowNotFound = "TV show not found"
)

// catalogFilter reads and validates the list query parameters, writing a
// 400 and returning false when they are out of range.
func catalogFilter(rw *ResponseWriter, r *http.Request) (models.CatalogFilter, bool) {
	req := CatalogListRequest{
		Limit:  getIntParam(r, "limit", defaultListLimit),
		Offset: getIntParam(r, "offset", 0),
		Genre:  strings.ToLower(strings.TrimSpace(r.URL.Query().Get("genre"))),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return models.CatalogFilter{}, false
	}
	return models.CatalogFilter{
		Trending: getBoolParam(r, "trending"),
		Latest:   getBoolParam(r, "latest"),
		Genre:    req.Genre,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}, true
}

func pageMeta(filter models.CatalogFilter, count, total int) *PaginationMeta {
	return &PaginationMeta{
		Total:   int64(total),
		Count:   count,
		Offset:  filter.Offset,
		Limit:   filter.Limit,
		HasMore: filter.Offset+count < total,
	}
}

// ListMovies returns movies, newest first.
//
// @Summary List movies
// @Tags Catalog
// @Produce json
// @Param trending query bool false "Only trending movies"
// @Param latest query bool false "Only latest movies"
// @Param genre query string false "Genre name"
// @Param limit query int false "Page size (1-100)" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} APIResponse{data=[]models.Movie}
// @Failure 400 {object} APIResponse
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	filter, ok := catalogFilter(rw, r)
	if !ok {
		return
	}

	movies, total, err := h.db.ListMovies(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	rw.SuccessWithPagination(movies, pageMeta(filter, len(movies), total))
}

// GetMovie returns one movie.
//
// @Summary Get a movie
// @Tags Catalog
// @Produce json
// @Param id path string true "Movie ID (UUID)"
// @Success 200 {object} APIResponse{data=models.Movie}
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := uuidParam(rw, r, "id")
	if !ok {
		return
	}

	movie, err := h.db.GetMovie(r.Context(), id)
	if err != nil {
		writeStoreError(rw, err, msgMovieNotFound, "")
		return
	}
	rw.Success(movie)
}

// CreateMovie adds a movie to the catalog.
//
// @Summary Create a movie
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body MovieRequest true "Movie"
// @Success 201 {object} APIResponse{data=models.Movie}
// @Failure 400 {object} APIResponse
// @Router /movies [post]
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req MovieRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	movie := req.toModel("")
	if err := h.db.CreateMovie(r.Context(), movie); err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Created(movie)
}

// UpdateMovie replaces the editable fields of a movie.
//
// @Summary Update a movie
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Movie ID (UUID)"
// @Param request body MovieRequest true "Movie"
// @Success 200 {object} APIResponse{data=models.Movie}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [put]
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := uuidParam(rw, r, "id")
	if !ok {
		return
	}
	var req MovieRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if err := h.db.UpdateMovie(r.Context(), req.toModel(id)); err != nil {
		writeStoreError(rw, err, msgMovieNotFound, "")
		return
	}
	movie, err := h.db.GetMovie(r.Context(), id)
	if err != nil {
		writeStoreError(rw, err, msgMovieNotFound, "")
		return
	}
	rw.Success(movie)
}

// DeleteMovie removes a movie.
//
// @Summary Delete a movie
// @Tags Catalog
// @Produce json
// @Param id path string true "Movie ID (UUID)"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [delete]
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := uuidParam(rw, r, "id")
	if !ok {
		return
	}

	if err := h.db.DeleteMovie(r.Context(), id); err != nil {
		writeStoreError(rw, err, msgMovieNotFound, "")
		return
	}
	rw.Success(map[string]string{"message": "Movie deleted successfully", "id": id})
}

// ListTVShows returns TV shows, newest first.
//
// @Summary List TV shows
// @Tags Catalog
// @Produce json
// @Param trending query bool false "Only trending shows"
// @Param latest query bool false "Only latest shows"
// @Param genre query string false "Genre name"
// @Param limit query int false "Page size (1-100)" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} APIResponse{data=[]models.TVShow}
// @Failure 400 {object} APIResponse
// @Router /tvshows [get]
func (h *Handler) ListTVShows(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	filter, ok := catalogFilter(rw, r)
	if !ok {
		return
	}

	shows, total, err := h.db.ListTVShows(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if shows == nil {
		shows = []models.TVShow{}
	}
	rw.SuccessWithPagination(shows, pageMeta(filter, len(shows), total))
}

// GetTVShow returns one TV show with its seasons.
//
// @Summary Get a TV show
// @Tags Catalog
// @Produce json
// @Param id path string true "TV show ID (UUID)"
// @Success 200 {object} APIResponse{data=models.TVShow}
// @Failure 404 {object} APIResponse
// @Router /tvshows/{id} [get]
func (h *Handler) GetTVShow(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := uuidParam(rw, r, "id")
	if !ok {
		return
	}

	show, err := h.db.GetTVShow(r.Context(), id)
	if err != nil {
		writeStoreError(rw, err, msgTVShowNotFound, "")
		return
	}
	rw.Success(show)
}

// CreateTVShow adds a TV show to the catalog.
//
// @Summary Create a TV show
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body TVShowRequest true "TV show"
// @Success 201 {object} APIResponse{data=models.TVShow}
// @Failure 400 {object} APIResponse
// @Router /tvshows [post]
func (h *Handler) CreateTVShow(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req TVShowRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	show := req.toModel("")
	if err := h.db.CreateTVShow(r.Context(), show); err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Created(show)
}

// UpdateTVShow replaces the editable fields of a TV show.
//
// @Summary Update a TV show
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "TV show ID (UUID)"
// @Param request body TVShowRequest true "TV show"
// @Success 200 {object} APIResponse{data=models.TVShow}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /tvshows/{id} [put]
func (h *Handler) UpdateTVShow(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := uuidParam(rw, r, "id")
	if !ok {
		return
	}
	var req TVShowRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if err := h.db.UpdateTVShow(r.Context(), req.toModel(id)); err != nil {
		writeStoreError(rw, err, msgTVShowNotFound, "")
		return
	}
	show, err := h.db.GetTVShow(r.Context(), id)
	if err != nil {
		writeStoreError(rw, err, msgTVShowNotFound, "")
		return
	}
	rw.Success(show)
}

// DeleteTVShow removes a TV show.
//
// @Summary Delete a TV show
// @Tags Catalog
// @Produce json
// @Param id path string true "TV show ID (UUID)"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /tvshows/{id} [delete]
func (h *Handler) DeleteTVShow(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := uuidParam(rw, r, "id")
	if !ok {
		return
	}

	if err := h.db.DeleteTVShow(r.Context(), id); err != nil {
		writeStoreError(rw, err, msgTVShowNotFound, "")
		return
	}
	rw.Success(map[string]string{"message": "TV show deleted successfully", "id": id})
}
