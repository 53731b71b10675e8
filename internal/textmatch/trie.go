// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package textmatch

import (
	"strings"
)

type trieNode[T any] struct {
	children map[rune]*trieNode[T]
	isEnd    bool
	data     []T
}

func newTrieNode[T any]() *trieNode[T] {
	return &trieNode[T]{children: make(map[rune]*trieNode[T])}
}

// PrefixTrie is a case-insensitive prefix tree. Build it up front with
// Insert, then share it read-only.
//
// PrefixesOf answers which stored keys are prefixes of a given word, which is
// how stem rules such as "thrill" matching "thrilling" are evaluated.
type PrefixTrie[T any] struct {
	root *trieNode[T]
	size int
}

// NewPrefixTrie creates an empty trie.
func NewPrefixTrie[T any]() *PrefixTrie[T] {
	return &PrefixTrie[T]{root: newTrieNode[T]()}
}

// Insert stores data under key. A key inserted twice accumulates both values.
func (t *PrefixTrie[T]) Insert(key string, data T) {
	if key == "" {
		return
	}
	node := t.root
	for _, ch := range strings.ToLower(key) {
		next, ok := node.children[ch]
		if !ok {
			next = newTrieNode[T]()
			node.children[ch] = next
		}
		node = next
	}
	if !node.isEnd {
		t.size++
	}
	node.isEnd = true
	node.data = append(node.data, data)
}

// Len returns the number of distinct keys.
func (t *PrefixTrie[T]) Len() int {
	return t.size
}

// PrefixesOf returns the values of every stored key that is a prefix of word,
// shortest key first.
func (t *PrefixTrie[T]) PrefixesOf(word string) []T {
	var out []T
	node := t.root
	for _, ch := range strings.ToLower(word) {
		node = node.children[ch]
		if node == nil {
			break
		}
		if node.isEnd {
			out = append(out, node.data...)
		}
	}
	return out
}
