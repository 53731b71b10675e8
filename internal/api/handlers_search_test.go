// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package api

import (
	"net/http"
	"testing"
)

func TestSearch(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name      string
		query     string
		wantTypes []string
	}{
		{"all scopes, movies first", "?q=HOLLOW", []string{"movie", "tv"}},
		{"movies only", "?q=hollow&type=movies", []string{"movie"}},
		{"tv only", "?q=hollow&type=tvshows", []string{"tv"}},
		{"no match", "?q=zzzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/search"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			var got SearchResults
			decodeEnvelope(t, rec, &got)
			if len(got.Results) != len(tt.wantTypes) {
				t.Fatalf("results = %+v, want types %v", got.Results, tt.wantTypes)
			}
			for i, hit := range got.Results {
				if hit.Type != tt.wantTypes[i] {
					t.Errorf("results[%d].type = %q, want %q", i, hit.Type, tt.wantTypes[i])
				}
			}
		})
	}
}

func TestSearch_CapsPerType(t *testing.T) {
	env := newTestEnv(t, nil)

	// "e" appears in most seeded titles
	rec := env.do(t, http.MethodGet, "/api/v1/search?q=e&type=movies", "")
	var got SearchResults
	decodeEnvelope(t, rec, &got)
	if len(got.Results) != searchPerType {
		t.Errorf("len(results) = %d, want %d", len(got.Results), searchPerType)
	}
}

func TestSearch_RejectsBadParams(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, q := range []string{"", "?q=", "?q=%20%20", "?q=x&type=books"} {
		expectError(t, env.do(t, http.MethodGet, "/api/v1/search"+q, ""), http.StatusBadRequest, ErrCodeValidation)
	}
}
