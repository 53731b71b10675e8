// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"github.com/tomtom215/vortax/internal/textmatch"
)

var (
	movieKeywords = textmatch.NewKeywordSet("movie", "film", "movies", "films", "cinema", "feature")
	showKeywords  = textmatch.NewKeywordSet("show", "tv", "series", "shows", "episode", "season")
)

// DetectContentType decides whether query asks for movies or shows. Keywords
// match as case-insensitive substrings. A query naming neither gets def; one
// naming both is ContentAmbiguous.
func DetectContentType(query string, def ContentType) ContentType {
	movie := movieKeywords.Contains(query)
	show := showKeywords.Contains(query)
	switch {
	case movie && show:
		return ContentAmbiguous
	case show:
		return ContentTV
	case movie:
		return ContentMovie
	default:
		return def
	}
}
