// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package textmatch

import (
	"reflect"
	"testing"
)

func TestPrefixTrie_PrefixesOf(t *testing.T) {
	t.Parallel()

	trie := NewPrefixTrie[string]()
	trie.Insert("thrill", "thriller")
	trie.Insert("funn", "comedy")
	trie.Insert("horr", "horror")
	trie.Insert("ho", "short")

	tests := []struct {
		word string
		want []string
	}{
		{"thrilling", []string{"thriller"}},
		{"FUNNIEST", []string{"comedy"}},
		{"horrific", []string{"short", "horror"}},
		{"thri", nil},
		{"romantic", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := trie.PrefixesOf(tt.word); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PrefixesOf(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestPrefixTrie_InsertAccumulates(t *testing.T) {
	t.Parallel()

	trie := NewPrefixTrie[int]()
	trie.Insert("advent", 12)
	trie.Insert("ADVENT", 10751)
	trie.Insert("", 1)

	if trie.Len() != 1 {
		t.Errorf("Len() = %d, want 1", trie.Len())
	}
	if got := trie.PrefixesOf("adventure"); !reflect.DeepEqual(got, []int{12, 10751}) {
		t.Errorf("PrefixesOf(adventure) = %v, want [12 10751]", got)
	}
}
