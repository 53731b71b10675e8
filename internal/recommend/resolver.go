// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vortax/internal/logging"
	"github.com/tomtom215/vortax/internal/metrics"
	"github.com/tomtom215/vortax/internal/models"
)

// Resolver turns a free-text query into a ranked recommendation list.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	config  *Config
	fetcher *Fetcher
	logger  zerolog.Logger
}

// NewResolver creates a Resolver. discovery may be nil to run against the
// local catalog only.
func NewResolver(cfg *Config, catalog CatalogSource, discovery DiscoverySource) (*Resolver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Resolver{
		config:  cfg,
		fetcher: NewFetcher(catalog, discovery, cfg.SourceLimit),
		logger:  logging.WithComponent("recommend"),
	}, nil
}

// Resolve runs the full pipeline for query. It fails with ErrEmptyQuery or
// ErrAmbiguousContentType on bad input; source failures only shrink the
// result.
func (r *Resolver) Resolve(ctx context.Context, query string) (*models.RecommendationResult, error) {
	start := time.Now()

	if strings.TrimSpace(query) == "" {
		metrics.RecordResolverRequest("none", "empty_query", 0)
		return nil, ErrEmptyQuery
	}

	ct := DetectContentType(query, r.config.DefaultContentType)
	if ct == ContentAmbiguous {
		metrics.RecordResolverRequest(string(ct), "ambiguous", 0)
		return nil, ErrAmbiguousContentType
	}

	terms, negated := Analyze(query)
	genres, fallback := MapGenres(terms, negated)

	fetched := r.fetcher.Fetch(ctx, FetchRequest{
		ContentType: ct,
		Genres:      genres,
		Fallback:    fallback,
	})
	if err := ctx.Err(); err != nil {
		metrics.RecordResolverRequest(string(ct), "canceled", time.Since(start))
		return nil, fmt.Errorf("resolve %q: %w", query, err)
	}

	recs := Merge(fetched.External, fetched.Local, ct, r.config.ImageBaseURL, r.config.MaxResults)

	outcome := "ok"
	if fallback {
		outcome = "fallback"
	}
	metrics.RecordResolverRequest(string(ct), outcome, time.Since(start))

	r.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("content_type", string(ct)).
		Strs("terms", terms).
		Strs("genres", genres).
		Int("negated", len(negated)).
		Bool("fallback", fallback).
		Int("external", len(fetched.External)).
		Int("local", len(fetched.Local)).
		Int("results", len(recs)).
		Dur("duration", time.Since(start)).
		Msg("resolved recommendation query")

	if terms == nil {
		terms = TermSet{}
	}
	if genres == nil {
		genres = []string{}
	}
	return &models.RecommendationResult{
		Query:           query,
		ContentType:     string(ct),
		DetectedTerms:   terms,
		DetectedGenres:  genres,
		FallbackKeyword: fallback,
		Recommendations: recs,
	}, nil
}
