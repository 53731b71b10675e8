// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"testing"
)

func TestExtractNegations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"not adjective", "something funny but not scary", []string{"scary"}},
		{"no noun singularized", "a western with no ghosts", []string{"ghost"}},
		{"without noun", "romance without aliens", []string{"alien"}},
		{"don't", "i don't want romantic stuff", nil},
		{"doesn't verb ignored", "it doesn't need to be violent", nil},
		{"doesn't noun", "doesn't matter", []string{"matter"}},
		{"multiple cues", "no cartoons and not sad", []string{"cartoon", "sad"}},
		{"plain verb after cue ignored", "not looking for romance", nil},
		{"alias verb after cue", "not laughing", []string{"laugh"}},
		{"alias verb infinitive", "no fight scenes", []string{"fight"}},
		{"function word after cue ignored", "not the usual", nil},
		{"multi-word alias", "no fairy tale please", []string{"fairy tale"}},
		{"cue at end", "anything but no", nil},
		{"no cue", "scary movie", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractNegations(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractNegations(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for _, w := range tt.want {
				if !got.Has(w) {
					t.Errorf("ExtractNegations(%q) missing %q (got %v)", tt.query, w, got)
				}
			}
		})
	}
}

func TestAnalyze_DirectGenreHasNoNegations(t *testing.T) {
	t.Parallel()

	terms, negated := Analyze("a horror movie without ghosts")
	if len(terms) != 1 || terms[0] != "horror" {
		t.Errorf("terms = %q, want [horror]", terms)
	}
	if len(negated) != 0 {
		t.Errorf("negated = %v, want empty", negated)
	}
}
