// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"strings"

	"github.com/tomtom215/vortax/internal/database/query"
	"github.com/tomtom215/vortax/internal/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// catalogWhere builds the WHERE clause shared by movie and TV show listings.
func catalogWhere(filter models.CatalogFilter) (string, []interface{}) {
	return query.NewWhereBuilder().
		AddFlag("is_trending", filter.Trending).
		AddFlag("is_latest", filter.Latest).
		AddListContains("genres", strings.ToLower(strings.TrimSpace(filter.Genre))).
		BuildWithPrefix()
}

// pageBounds clamps limit and offset to the listing range.
func pageBounds(filter models.CatalogFilter) (limit, offset int) {
	limit = filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset = filter.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
