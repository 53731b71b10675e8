// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package query

import (
	"reflect"
	"testing"
)

func TestWhereBuilder_Empty(t *testing.T) {
	wb := NewWhereBuilder()

	if !wb.IsEmpty() {
		t.Error("Expected new builder to be empty")
	}
	if wb.Count() != 0 {
		t.Errorf("Expected count 0, got %d", wb.Count())
	}

	whereClause, args := wb.Build()
	if whereClause != "1=1" {
		t.Errorf("Expected '1=1' for empty builder, got %q", whereClause)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}

	prefixed, _ := wb.BuildWithPrefix()
	if prefixed != "" {
		t.Errorf("Expected empty prefix clause, got %q", prefixed)
	}
}

func TestWhereBuilder_Clauses(t *testing.T) {
	tests := []struct {
		name      string
		build     func(*WhereBuilder)
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "flag enabled",
			build:     func(wb *WhereBuilder) { wb.AddFlag("is_trending", true) },
			wantWhere: "is_trending",
			wantArgs:  []interface{}{},
		},
		{
			name:      "flag disabled is skipped",
			build:     func(wb *WhereBuilder) { wb.AddFlag("is_latest", false) },
			wantWhere: "1=1",
			wantArgs:  []interface{}{},
		},
		{
			name:      "list contains",
			build:     func(wb *WhereBuilder) { wb.AddListContains("genres", "comedy") },
			wantWhere: "list_contains(genres, ?::VARCHAR)",
			wantArgs:  []interface{}{"comedy"},
		},
		{
			name:      "list contains empty value is skipped",
			build:     func(wb *WhereBuilder) { wb.AddListContains("genres", "") },
			wantWhere: "1=1",
			wantArgs:  []interface{}{},
		},
		{
			name:      "list has any",
			build:     func(wb *WhereBuilder) { wb.AddListHasAny("genres", []string{"war", "drama"}) },
			wantWhere: "list_has_any(genres, [?::VARCHAR, ?::VARCHAR])",
			wantArgs:  []interface{}{"war", "drama"},
		},
		{
			name:      "not in",
			build:     func(wb *WhereBuilder) { wb.AddNotIn("id", []string{"a", "b", "c"}) },
			wantWhere: "id NOT IN (?, ?, ?)",
			wantArgs:  []interface{}{"a", "b", "c"},
		},
		{
			name:      "not in empty is skipped",
			build:     func(wb *WhereBuilder) { wb.AddNotIn("id", nil) },
			wantWhere: "1=1",
			wantArgs:  []interface{}{},
		},
		{
			name: "combined in call order",
			build: func(wb *WhereBuilder) {
				wb.AddFlag("is_trending", true).
					AddListContains("genres", "horror").
					AddNotIn("id", []string{"x"}).
					AddClause("views > ?", 10)
			},
			wantWhere: "is_trending AND list_contains(genres, ?::VARCHAR) AND id NOT IN (?) AND views > ?",
			wantArgs:  []interface{}{"horror", "x", 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := NewWhereBuilder()
			tt.build(wb)
			where, args := wb.Build()
			if where != tt.wantWhere {
				t.Errorf("Build() where = %q, want %q", where, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Build() args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestWhereBuilder_BuildWithPrefix(t *testing.T) {
	wb := NewWhereBuilder().AddFlag("is_latest", true)
	where, _ := wb.BuildWithPrefix()
	if where != " WHERE is_latest" {
		t.Errorf("BuildWithPrefix() = %q", where)
	}
	if wb.Count() != 1 {
		t.Errorf("Count() = %d, want 1", wb.Count())
	}
}
