// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
)

// listSep separates list elements when a VARCHAR[] column is read back as a
// single string. The unit separator never appears in titles or genre names.
const listSep = "\x1f"

// listColumn renders a VARCHAR[] column as one string for scanning.
// array_to_string yields NULL for an empty list, so it is coalesced to ''.
func listColumn(col string) string {
	return "coalesce(array_to_string(" + col + ", chr(31)), '')"
}

// varcharPlaceholders returns "?::VARCHAR, ..." for n parameters. The casts
// let DuckDB type parameters inside list literals.
func varcharPlaceholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?::VARCHAR, ", n), ", ")
}

// listExpr builds a VARCHAR[] literal bound through parameters.
func listExpr(values []string) (string, []interface{}) {
	if len(values) == 0 {
		return "[]::VARCHAR[]", nil
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return "[" + varcharPlaceholders(len(values)) + "]", args
}

// splitList reverses listColumn. An empty string is an empty list.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSep)
}

// normalizeGenres lowercases and trims genre names and drops blanks.
func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// termsPattern quotes each term and joins them into one alternation.
func termsPattern(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	return strings.Join(quoted, "|")
}

// scanFunc is a function that scans a single row into a result type
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan function
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
