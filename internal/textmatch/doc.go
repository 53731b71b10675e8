// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package textmatch provides immutable string matchers used by the
// recommendation resolver: an Aho-Corasick automaton for keyword detection
// and a prefix trie for stem rules.
//
// Both structures are built once from static tables and never mutated
// afterwards, so they are safe for concurrent use without locks.
package textmatch
