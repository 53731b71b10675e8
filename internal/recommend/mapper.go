// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

// minKeywordLen is the shortest term used as a fallback keyword.
const minKeywordLen = 4

// MapGenres resolves terms to vocabulary genres and drops the genres whose
// name or alias was negated. Genres are returned in first-resolution order.
//
// When nothing resolves, fallback is true and the terms longer than three
// characters are returned in place of genres, for use as free-text keywords.
func MapGenres(terms TermSet, negated NegatedSet) (genres []string, fallback bool) {
	for _, term := range terms {
		for _, g := range resolveTerm(term) {
			genres = appendUnique(genres, g)
		}
	}

	if len(negated) > 0 {
		kept := genres[:0]
		for _, g := range genres {
			if !isNegatedGenre(g, negated) {
				kept = append(kept, g)
			}
		}
		genres = kept
	}

	if len(genres) > 0 {
		return genres, false
	}

	keywords := make([]string, 0, len(terms))
	for _, term := range terms {
		if len(term) >= minKeywordLen {
			keywords = append(keywords, term)
		}
	}
	return keywords, true
}

// resolveTerm applies the resolution rules in order; the first rule that
// yields anything wins.
func resolveTerm(term string) []string {
	if IsGenre(term) {
		return []string{term}
	}
	if mood, ok := moodGenres[term]; ok {
		return mood
	}
	if aliased, ok := aliasIndex[term]; ok {
		return []string{aliased}
	}
	if _, ok := tmdbGenreIDs[term]; ok {
		return []string{term}
	}
	return prefixTrie.PrefixesOf(term)
}

func isNegatedGenre(genre string, negated NegatedSet) bool {
	if negated.Has(genre) {
		return true
	}
	for _, alias := range genreAliases[genre] {
		if negated.Has(alias) {
			return true
		}
	}
	return false
}

// GenreIDs returns the TMDB IDs of genres, skipping any without one.
func GenreIDs(genres []string) []int {
	ids := make([]int, 0, len(genres))
	for _, g := range genres {
		if id, ok := GenreID(g); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
