// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/vortax/internal/logging"
	"github.com/tomtom215/vortax/internal/recommend"
)

// Client-facing messages of the recommendation endpoint.
const (
	msgEmptyQuery     = "Please tell me what you're looking for!"
	msgAmbiguousType  = "Do you want a movie or a TV show? Please specify one."
	msgResolverFailed = "Oops, something went wrong!"
)

// Recommendations resolves a free-text query into movie or TV show picks.
//
// @Summary Recommend titles for a free-text query
// @Description Detects the content type, maps the query to genres and merges TMDB discovery results with matching local catalog items
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationRequest true "Free-text query"
// @Success 200 {object} APIResponse{data=models.RecommendationResult}
// @Failure 400 {object} APIResponse "VALIDATION_ERROR or AMBIGUOUS_CONTENT_TYPE"
// @Failure 500 {object} APIResponse "INTERNAL_ERROR"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}

	result, err := h.resolver.Resolve(r.Context(), req.Query)
	switch {
	case err == nil:
		rw.Success(result)
	case errors.Is(err, recommend.ErrEmptyQuery):
		rw.BadRequest(msgEmptyQuery)
	case errors.Is(err, recommend.ErrAmbiguousContentType):
		rw.Error(http.StatusBadRequest, ErrCodeAmbiguousContent, msgAmbiguousType)
	default:
		logging.Ctx(r.Context()).Error().Err(err).
			Str("query", sanitizeLogValue(req.Query)).
			Msg("Recommendation resolve failed")
		var details interface{}
		if h.isDevelopment() {
			details = map[string]string{"error": err.Error()}
		}
		rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeInternalError, msgResolverFailed, details)
	}
}
