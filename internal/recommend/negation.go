// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"strings"
)

var negationCues = []string{"not", "no", "without", "don't", "doesn't"}

// ExtractNegations returns the adjectives and nouns that directly follow a
// negation cue in the folded query, plus verbs whose infinitive is itself an
// alias or mood word ("no fighting"). A cue is only considered when it occurs
// in the query as a substring, so "nothing" arms "not" and "no" even though
// neither word is present. A multi-word alias right after a cue is negated
// as a whole.
func ExtractNegations(folded string) NegatedSet {
	negated := NegatedSet{}
	tokens := tokenize(folded)

	for _, cue := range negationCues {
		if !strings.Contains(folded, cue) {
			continue
		}
		for i := 0; i+1 < len(tokens); i++ {
			if tokens[i] != cue {
				continue
			}
			rest := strings.Join(tokens[i+1:], " ")
			if phrase, ok := leadingPhraseAlias(rest); ok {
				negated.Add(phrase)
				continue
			}
			switch class, lemma := classify(tokens[i+1]); class {
			case classAdjective:
				negated.Add(strings.TrimSpace(lemma))
			case classNoun:
				negated.Add(strings.TrimSpace(nounLemma(lemma)))
			case classVerb:
				if isTableWord(lemma) {
					negated.Add(lemma)
				}
			}
		}
	}
	return negated
}

// leadingPhraseAlias reports the multi-word alias text starts with, if any.
func leadingPhraseAlias(text string) (string, bool) {
	for _, m := range multiWordAliases.Search(text) {
		if m.Start == 0 && wordBoundary(text, m.End) {
			return m.Data, true
		}
	}
	return "", false
}
