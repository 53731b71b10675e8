// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/vortax/internal/models"
)

// Input errors. Both are surfaced to the caller as client errors.
var (
	// ErrEmptyQuery is returned when the query is missing or blank.
	ErrEmptyQuery = errors.New("recommend: query is required")

	// ErrAmbiguousContentType is returned when a query names both movies and shows.
	ErrAmbiguousContentType = errors.New("recommend: query names both movies and tv shows")
)

// TermSet is the ordered list of normalized query terms. Duplicates are kept.
type TermSet []string

// NegatedSet holds the words a query explicitly excludes.
type NegatedSet map[string]struct{}

// Has reports whether word was negated.
func (n NegatedSet) Has(word string) bool {
	_, ok := n[word]
	return ok
}

// Add records word as negated.
func (n NegatedSet) Add(word string) {
	n[word] = struct{}{}
}

// ContentType is the kind of content a query asks for.
type ContentType string

const (
	ContentMovie     ContentType = "movie"
	ContentTV        ContentType = "tv"
	ContentAmbiguous ContentType = "ambiguous"
)

// ParseContentType accepts "movie" or "tv".
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentMovie, ContentTV:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("recommend: unknown content type %q", s)
	}
}

// ItemKind maps the content type onto the catalog table it reads from.
func (c ContentType) ItemKind() models.ItemKind {
	if c == ContentTV {
		return models.KindTVShow
	}
	return models.KindMovie
}

// MediaType is the TMDB discover path segment for the content type.
func (c ContentType) MediaType() string {
	return string(c)
}
