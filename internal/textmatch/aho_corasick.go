// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package textmatch

import (
	"strings"
)

// Automaton implements the Aho-Corasick multi-pattern matcher.
// It finds all occurrences of every pattern in O(n + m + z) time, where
// n is the text length, m the total pattern length and z the match count.
//
// An Automaton is immutable once built, so it can be shared by any number
// of goroutines without locking.
//
//	ac := textmatch.NewAutomaton([]textmatch.Pattern[string]{
//	    {Text: "movie", Data: "movie"},
//	    {Text: "series", Data: "tv"},
//	}, false)
//	ac.Contains("a funny TV series") // true
type Automaton[T any] struct {
	root          *acNode
	patterns      []Pattern[T]
	caseSensitive bool
}

type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	output   []int // indices into patterns that end here, including via failure links
}

// Pattern is a search string with an associated value.
type Pattern[T any] struct {
	Text string
	Data T
}

// Match is one occurrence of a pattern. Start and End are byte offsets into
// the case-folded text, End exclusive.
type Match[T any] struct {
	Pattern string
	Data    T
	Start   int
	End     int
}

// NewAutomaton builds an automaton over patterns. Empty patterns are ignored.
// Unless caseSensitive is set, both patterns and text are lowercased.
func NewAutomaton[T any](patterns []Pattern[T], caseSensitive bool) *Automaton[T] {
	ac := &Automaton[T]{
		root:          newACNode(),
		caseSensitive: caseSensitive,
	}
	for _, p := range patterns {
		if p.Text == "" {
			continue
		}
		ac.patterns = append(ac.patterns, p)
		ac.insert(len(ac.patterns)-1, ac.fold(p.Text))
	}
	ac.buildFailureLinks()
	return ac
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

func (ac *Automaton[T]) fold(s string) string {
	if ac.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func (ac *Automaton[T]) insert(index int, text string) {
	node := ac.root
	for _, ch := range text {
		next, ok := node.children[ch]
		if !ok {
			next = newACNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// buildFailureLinks wires failure links breadth-first so each node's output
// also carries the patterns of its longest proper suffix.
func (ac *Automaton[T]) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = ac.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// scan walks text and calls visit for every match; visit returns false to stop.
func (ac *Automaton[T]) scan(text string, visit func(Match[T]) bool) {
	if len(ac.patterns) == 0 {
		return
	}
	node := ac.root
	for i, ch := range ac.fold(text) {
		for node != ac.root && node.children[ch] == nil {
			node = node.failure
		}
		next, ok := node.children[ch]
		if !ok {
			continue
		}
		node = next

		end := i + len(string(ch))
		for _, idx := range node.output {
			p := ac.patterns[idx]
			m := Match[T]{Pattern: p.Text, Data: p.Data, Start: end - len(ac.fold(p.Text)), End: end}
			if !visit(m) {
				return
			}
		}
	}
}

// Search returns every match in text, ordered by end offset.
func (ac *Automaton[T]) Search(text string) []Match[T] {
	var matches []Match[T]
	ac.scan(text, func(m Match[T]) bool {
		matches = append(matches, m)
		return true
	})
	return matches
}

// SearchFirst returns the match that ends earliest in text.
func (ac *Automaton[T]) SearchFirst(text string) (Match[T], bool) {
	var (
		first Match[T]
		found bool
	)
	ac.scan(text, func(m Match[T]) bool {
		first, found = m, true
		return false
	})
	return first, found
}

// Contains reports whether any pattern occurs in text.
func (ac *Automaton[T]) Contains(text string) bool {
	_, found := ac.SearchFirst(text)
	return found
}

// PatternCount returns the number of non-empty patterns.
func (ac *Automaton[T]) PatternCount() int {
	return len(ac.patterns)
}

// KeywordSet is a case-insensitive substring detector for a fixed word list.
type KeywordSet struct {
	ac *Automaton[struct{}]
}

// NewKeywordSet builds a KeywordSet over words.
func NewKeywordSet(words ...string) *KeywordSet {
	patterns := make([]Pattern[struct{}], 0, len(words))
	for _, w := range words {
		patterns = append(patterns, Pattern[struct{}]{Text: w})
	}
	return &KeywordSet{ac: NewAutomaton(patterns, false)}
}

// Contains reports whether any keyword occurs in text as a substring.
func (k *KeywordSet) Contains(text string) bool {
	return k.ac.Contains(text)
}

// Found returns the distinct keywords present in text, in order of first occurrence.
func (k *KeywordSet) Found(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range k.ac.Search(text) {
		if _, ok := seen[m.Pattern]; ok {
			continue
		}
		seen[m.Pattern] = struct{}{}
		out = append(out, m.Pattern)
	}
	return out
}
