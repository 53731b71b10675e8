// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package query provides SQL query building utilities for the database package.
package query

import (
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddFlag("is_trending", true)
//	wb.AddListContains("genres", "comedy")
//	wb.AddNotIn("id", watchedIDs)
//	whereClause, args := wb.BuildWithPrefix()
//	// WHERE is_trending AND list_contains(genres, ?::VARCHAR) AND id NOT IN (?, ?)
//
// Column names are interpolated as given and must never come from user input.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
// This is useful for custom conditions not covered by helper methods.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddFlag requires a BOOLEAN column to be true. A false flag adds nothing.
func (wb *WhereBuilder) AddFlag(column string, enabled bool) *WhereBuilder {
	if enabled {
		wb.clauses = append(wb.clauses, column)
	}
	return wb
}

// AddListContains requires a VARCHAR[] column to contain value.
// An empty value is skipped.
func (wb *WhereBuilder) AddListContains(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause("list_contains("+column+", ?::VARCHAR)", value)
}

// AddListHasAny requires a VARCHAR[] column to share at least one element
// with values. An empty slice is skipped.
func (wb *WhereBuilder) AddListHasAny(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	wb.clauses = append(wb.clauses, "list_has_any("+column+", ["+placeholders(len(values), "?::VARCHAR")+"])")
	wb.appendStrings(values)
	return wb
}

// AddNotIn excludes rows whose column is one of values. An empty slice is skipped.
func (wb *WhereBuilder) AddNotIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	wb.clauses = append(wb.clauses, column+" NOT IN ("+placeholders(len(values), "?")+")")
	wb.appendStrings(values)
	return wb
}

func (wb *WhereBuilder) appendStrings(values []string) {
	for _, v := range values {
		wb.args = append(wb.args, v)
	}
}

func placeholders(n int, marker string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = marker
	}
	return strings.Join(parts, ", ")
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns " WHERE <clauses>", or "" when no clause was added,
// so the result can be appended directly after a FROM clause.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	if wb.IsEmpty() {
		return "", []interface{}{}
	}
	whereClause, args := wb.Build()
	return " WHERE " + whereClause, args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}
