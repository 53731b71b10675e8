// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
client.go - TMDB discover API client

Only the discover endpoints are used: GET /discover/movie and GET /discover/tv.

API Reference: https://developer.themoviedb.org/reference/discover-movie
*/

package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/vortax/internal/config"
	"github.com/tomtom215/vortax/internal/metrics"
)

// Media types accepted by Discover.
const (
	MediaMovie = "movie"
	MediaTV    = "tv"
)

// DefaultSortBy orders discover results by popularity.
const DefaultSortBy = "popularity.desc"

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Discoverer is implemented by Client and CircuitBreakerClient.
type Discoverer interface {
	Discover(ctx context.Context, params DiscoverParams) ([]Result, error)
}

// Ensure Client implements Discoverer
var _ Discoverer = (*Client)(nil)

// DiscoverParams selects one page of discover results.
type DiscoverParams struct {
	MediaType string // MediaMovie or MediaTV
	GenreIDs  string // comma-joined TMDB genre IDs
	Keywords  string // comma-joined keywords, fallback mode only
	SortBy    string // defaults to DefaultSortBy
	Page      int    // defaults to 1
}

// Result is one discover entry. Movies carry Title, TV shows carry Name.
type Result struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Name       string  `json:"name"`
	Overview   string  `json:"overview"`
	PosterPath string  `json:"poster_path"`
	Popularity float64 `json:"popularity"`
}

// DisplayTitle returns Title for movies and Name for TV shows.
func (r Result) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

type discoverResponse struct {
	Page    int      `json:"page"`
	Results []Result `json:"results"`
}

// Client calls the TMDB REST API. Outbound requests are paced by a token
// bucket so bursts of resolver traffic stay under the provider's limit.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 40
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		timeout: timeout,
	}
}

// Discover fetches the first page (or params.Page) of discover results.
// The configured timeout covers the rate limiter wait as well as the request.
func (c *Client) Discover(ctx context.Context, params DiscoverParams) ([]Result, error) {
	if params.MediaType != MediaMovie && params.MediaType != MediaTV {
		return nil, fmt.Errorf("tmdb discover: unsupported media type %q", params.MediaType)
	}
	endpoint := "discover_" + params.MediaType

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb rate limiter: %w", err)
	}

	reqURL := c.baseURL + "/discover/" + params.MediaType + "?" + c.discoverQuery(params).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordTMDBRequest(endpoint, "error", time.Since(start))
		return nil, fmt.Errorf("tmdb discover request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordTMDBRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			return nil, fmt.Errorf("tmdb discover returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("tmdb discover returned status %d: %s", resp.StatusCode, string(body))
	}

	var page discoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb discover response: %w", err)
	}
	if page.Results == nil {
		page.Results = []Result{}
	}
	return page.Results, nil
}

func (c *Client) discoverQuery(params DiscoverParams) url.Values {
	q := url.Values{}
	q.Set("api_key", c.apiKey)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	q.Set("sort_by", sortBy)

	page := params.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))

	if params.GenreIDs != "" {
		q.Set("with_genres", params.GenreIDs)
	}
	if params.Keywords != "" {
		q.Set("with_keywords", params.Keywords)
	}
	return q
}
