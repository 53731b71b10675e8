// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package models

// Recommendation sources as they appear on the wire.
const (
	SourceTMDB  = "tmdb"
	SourceLocal = "local"
)

// RecommendationItem is one entry of a resolved recommendation list.
// Popularity is the provider's popularity for TMDB items and the view count
// for local items, 0 when absent.
type RecommendationItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Poster      string  `json:"poster"`
	Type        string  `json:"type"`
	Source      string  `json:"source"`
	Popularity  float64 `json:"popularity"`
}

// RecommendationResult is the success payload of POST /api/v1/recommendations.
type RecommendationResult struct {
	Query           string               `json:"query"`
	ContentType     string               `json:"contentType"`
	DetectedTerms   []string             `json:"detectedTerms"`
	DetectedGenres  []string             `json:"detectedGenres"`
	FallbackKeyword bool                 `json:"fallbackToKeyword"`
	Recommendations []RecommendationItem `json:"recommendations"`
}
