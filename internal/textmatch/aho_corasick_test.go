// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package textmatch

import (
	"strings"
	"sync"
	"testing"
)

func stringPatterns(words ...string) []Pattern[string] {
	out := make([]Pattern[string], 0, len(words))
	for _, w := range words {
		out = append(out, Pattern[string]{Text: w, Data: w})
	}
	return out
}

func TestAutomaton_BasicOperations(t *testing.T) {
	t.Parallel()

	ac := NewAutomaton(stringPatterns("he", "she", "his", "hers"), false)
	matches := ac.Search("ushers")

	found := make(map[string]Match[string])
	for _, m := range matches {
		found[m.Pattern] = m
	}
	for _, want := range []string{"she", "he", "hers"} {
		if _, ok := found[want]; !ok {
			t.Errorf("expected to find %q in %v", want, matches)
		}
	}
	if _, ok := found["his"]; ok {
		t.Error("did not expect to find \"his\"")
	}
	if m := found["she"]; m.Start != 1 || m.End != 4 {
		t.Errorf("she offsets = [%d,%d), want [1,4)", m.Start, m.End)
	}
	if m := found["hers"]; m.Start != 2 || m.End != 6 {
		t.Errorf("hers offsets = [%d,%d), want [2,6)", m.Start, m.End)
	}
}

func TestAutomaton_CaseSensitivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		caseSensitive bool
		text          string
		want          bool
	}{
		{"insensitive upper", false, "A great MOVIE night", true},
		{"insensitive mixed", false, "Movie", true},
		{"sensitive upper", true, "MOVIE", false},
		{"sensitive exact", true, "movie", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ac := NewAutomaton(stringPatterns("movie"), tt.caseSensitive)
			if got := ac.Contains(tt.text); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAutomaton_SearchFirst(t *testing.T) {
	t.Parallel()

	ac := NewAutomaton(stringPatterns("series", "tv"), false)
	m, ok := ac.SearchFirst("funny tv series")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Pattern != "tv" || m.Start != 6 {
		t.Errorf("SearchFirst = %+v, want tv at 6", m)
	}

	if _, ok := ac.SearchFirst("a scary movie"); ok {
		t.Error("expected no match")
	}
}

func TestAutomaton_EmptyPatternsAndText(t *testing.T) {
	t.Parallel()

	ac := NewAutomaton(stringPatterns("", "film", ""), false)
	if ac.PatternCount() != 1 {
		t.Errorf("PatternCount() = %d, want 1", ac.PatternCount())
	}
	if ac.Contains("") {
		t.Error("empty text should not match")
	}

	empty := NewAutomaton[string](nil, false)
	if empty.Contains("anything") {
		t.Error("automaton without patterns should never match")
	}
	if got := empty.Search("anything"); got != nil {
		t.Errorf("Search() = %v, want nil", got)
	}
}

func TestAutomaton_OverlappingPatterns(t *testing.T) {
	t.Parallel()

	ac := NewAutomaton(stringPatterns("show", "shows"), false)
	if got := len(ac.Search("tv shows")); got != 2 {
		t.Errorf("expected show and shows to both match, got %d matches", got)
	}
}

func TestAutomaton_WithData(t *testing.T) {
	t.Parallel()

	ac := NewAutomaton([]Pattern[int]{
		{Text: "horror", Data: 27},
		{Text: "comedy", Data: 35},
	}, false)

	sum := 0
	for _, m := range ac.Search("horror comedy") {
		sum += m.Data
	}
	if sum != 62 {
		t.Errorf("sum of data = %d, want 62", sum)
	}
}

func TestAutomaton_Concurrent(t *testing.T) {
	t.Parallel()

	ac := NewAutomaton(stringPatterns("movie", "film", "cinema"), false)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !ac.Contains("late night CINEMA") {
					t.Error("expected match")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKeywordSet(t *testing.T) {
	t.Parallel()

	ks := NewKeywordSet("show", "tv", "series", "shows", "episode", "season")

	if !ks.Contains("Any good TV tonight?") {
		t.Error("expected TV to be detected")
	}
	if ks.Contains("a scary movie") {
		t.Error("did not expect a show keyword")
	}

	got := strings.Join(ks.Found("the tv series with the best season, tv again"), ",")
	if got != "tv,series,season" {
		t.Errorf("Found() = %q, want tv,series,season", got)
	}
}

func BenchmarkKeywordSet_Contains(b *testing.B) {
	ks := NewKeywordSet("movie", "film", "movies", "films", "cinema", "feature")
	text := "i would like something funny and light to watch with the family tonight"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ks.Contains(text)
	}
}
