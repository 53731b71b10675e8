// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package recommend turns free-text requests such as "something to make me
// laugh" into ranked movie and TV show recommendations.
//
// # Pipeline
//
// Resolver.Resolve runs one pass per request and keeps no state between
// calls:
//
//  1. DetectContentType picks movie or tv from keywords in the query.
//     Queries naming both are rejected with ErrAmbiguousContentType.
//  2. Normalize folds the query and extracts nouns, adjectives and verb
//     infinitives from a closed lexicon. A query naming a genre outright
//     short-circuits to that genre.
//  3. ExtractNegations finds the words following "not", "no", "without",
//     "don't" and "doesn't".
//  4. MapGenres resolves terms through the genre, mood, alias and prefix
//     tables in genres.go, then drops negated genres. With nothing left it
//     falls back to the raw terms as keywords.
//  5. Fetcher queries TMDB discover and the local DuckDB catalog
//     concurrently. A failing source contributes nothing.
//  6. Merge deduplicates by title, ranks by popularity and truncates.
//
// # Personal recommendations
//
// PersonalBuilder produces the "for you" section from a user's watchlist and
// watch history, weighting picks toward their three most frequent genres.
//
// # Usage
//
//	cfg, err := recommend.ConfigFrom(appConfig)
//	resolver, err := recommend.NewResolver(cfg, db, tmdbClient)
//	result, err := resolver.Resolve(ctx, "I want a scary movie")
package recommend
