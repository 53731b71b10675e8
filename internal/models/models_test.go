// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package models

import (
	"testing"
)

func TestParseItemKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   ItemKind
		wantOK bool
	}{
		{"movie", KindMovie, true},
		{"tvshow", KindTVShow, true},
		{"tv", "", false},
		{"Movie", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseItemKind(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseItemKind(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTVShow_EpisodeCount(t *testing.T) {
	t.Parallel()

	show := TVShow{Seasons: []Season{
		{SeasonNumber: 1, Episodes: []Episode{{EpisodeNumber: 1}, {EpisodeNumber: 2}}},
		{SeasonNumber: 2, Episodes: []Episode{{EpisodeNumber: 1}}},
		{SeasonNumber: 3},
	}}
	if got := show.EpisodeCount(); got != 3 {
		t.Errorf("EpisodeCount() = %d, want 3", got)
	}
	if got := (&TVShow{}).EpisodeCount(); got != 0 {
		t.Errorf("EpisodeCount() on empty show = %d, want 0", got)
	}
}
