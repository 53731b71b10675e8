// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"slices"
	"testing"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  Scary MOVIE ", "scary movie"},
		{"Café Noir", "cafe noir"},
		{"Don’t scare me", "don't scare me"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirectGenre(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"a horror movie", "horror", true},
		{"comedy or horror", "comedy", true},
		{"classic science fiction", "science fiction", true},
		{"family-friendly", "family", true},
		{"a musical", "", false},
		{"melodrama", "", false},
		{"horrors", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := DirectGenre(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DirectGenre(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  TermSet
	}{
		{"direct genre short-circuits", "I want a HORROR movie with ghosts", TermSet{"horror"}},
		{"adjective and verb", "I want a scary movie", TermSet{"scary", "want"}},
		{"function words dropped", "funny tv series", TermSet{"funny"}},
		{"nouns before adjectives", "a romantic story about cowboys", TermSet{"story", "cowboy", "romantic"}},
		{"alias surface form kept", "ghosts and kids", TermSet{"ghost", "kids"}},
		{"verb inflections reduced", "laughing and crying", TermSet{"laugh", "cry"}},
		{"make me laugh idiom", "make me laugh", TermSet{"make", "laugh", "comedy", "funny"}},
		{"cheer me up idiom", "cheer me up", TermSet{"cheer", "comedy", "funny"}},
		{"scare me idiom", "scare me tonight", TermSet{"scare", "horror", "scary"}},
		{"multi-word alias", "a fairy tale", TermSet{"fairy tale", "fairy", "tale"}},
		{"short tokens dropped", "an ok sf", TermSet{}},
		{"empty", "", TermSet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.query)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Normalize(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	queries := []string{
		"something scary and romantic without ghosts",
		"make me laugh with a cartoon about space",
		"a tense heist story, not violent",
	}
	for _, q := range queries {
		firstTerms, firstNeg := Analyze(q)
		firstGenres, firstFallback := MapGenres(firstTerms, firstNeg)
		for i := 0; i < 20; i++ {
			terms, neg := Analyze(q)
			genres, fallback := MapGenres(terms, neg)
			if !slices.Equal(terms, firstTerms) || !slices.Equal(genres, firstGenres) || fallback != firstFallback {
				t.Fatalf("run %d of %q differs: terms %q genres %q, first %q %q", i, q, terms, genres, firstTerms, firstGenres)
			}
		}
	}
}

func TestVerbLemma(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{"laugh", "laugh", true},
		{"laughs", "laugh", true},
		{"scared", "scare", true},
		{"running", "run", true},
		{"cries", "cry", true},
		{"dances", "dance", true},
		{"fighting", "fight", true},
		{"ghost", "", false},
		{"dating", "", false},
	}
	for _, tt := range tests {
		got, ok := verbLemma(tt.word)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("verbLemma(%q) = %q, %v; want %q, %v", tt.word, got, ok, tt.want, tt.wantOK)
		}
	}
}
