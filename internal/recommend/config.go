// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"fmt"

	"github.com/tomtom215/vortax/internal/config"
)

// Config tunes the resolver and the personal recommendation builder.
type Config struct {
	// DefaultContentType applies when a query names neither movies nor shows.
	DefaultContentType ContentType `json:"default_content_type"`

	// MaxResults caps the merged recommendation list.
	MaxResults int `json:"max_results"`

	// SourceLimit caps what each source contributes before merging.
	SourceLimit int `json:"source_limit"`

	// ImageBaseURL is prefixed to TMDB poster paths.
	ImageBaseURL string `json:"image_base_url"`

	// Personal holds the personal recommendation settings.
	Personal PersonalConfig `json:"personal"`
}

// PersonalConfig sizes the personal recommendation sections.
type PersonalConfig struct {
	// PerType is how many movies and how many shows are returned.
	PerType int `json:"per_type"`

	// TopGenres is how many favourite genres drive the picks.
	TopGenres int `json:"top_genres"`

	// ColdStartPool is how many of the newest titles a user with no
	// activity is sampled from.
	ColdStartPool int `json:"cold_start_pool"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultContentType: ContentMovie,
		MaxResults:         DefaultMaxResults,
		SourceLimit:        DefaultSourceLimit,
		ImageBaseURL:       "https://image.tmdb.org/t/p/w500",
		Personal: PersonalConfig{
			PerType:       4,
			TopGenres:     3,
			ColdStartPool: 8,
		},
	}
}

// ConfigFrom builds a resolver Config from the application configuration.
func ConfigFrom(app *config.Config) (*Config, error) {
	cfg := DefaultConfig()
	ct, err := ParseContentType(app.Resolver.DefaultContentType)
	if err != nil {
		return nil, err
	}
	cfg.DefaultContentType = ct
	cfg.MaxResults = app.Resolver.MaxResults
	cfg.SourceLimit = app.Resolver.SourceLimit
	if app.TMDB.ImageBaseURL != "" {
		cfg.ImageBaseURL = app.TMDB.ImageBaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.DefaultContentType != ContentMovie && c.DefaultContentType != ContentTV {
		return fmt.Errorf("default_content_type must be movie or tv, got %q", c.DefaultContentType)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.SourceLimit < 1 {
		return fmt.Errorf("source_limit must be positive, got %d", c.SourceLimit)
	}
	if c.Personal.PerType < 1 {
		return fmt.Errorf("personal.per_type must be positive, got %d", c.Personal.PerType)
	}
	if c.Personal.TopGenres < 1 {
		return fmt.Errorf("personal.top_genres must be positive, got %d", c.Personal.TopGenres)
	}
	if c.Personal.ColdStartPool < c.Personal.PerType {
		return fmt.Errorf("personal.cold_start_pool must be at least per_type (%d), got %d",
			c.Personal.PerType, c.Personal.ColdStartPool)
	}
	return nil
}
