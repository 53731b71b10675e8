// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
)

// minTermLen is the shortest term the normalizer keeps.
const minTermLen = 3

var (
	directGenrePatterns = compileDirectGenres()

	// tokenPattern keeps letters, digits, apostrophes and hyphens so that
	// "don't" and "action-packed" survive as single tokens.
	tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9'-]*`)
)

// idiom adds fixed terms when any of its phrases occurs in the query.
type idiom struct {
	phrases []string
	terms   []string
}

var idioms = []idiom{
	{phrases: []string{"make me laugh", "cheer me up"}, terms: []string{"comedy", "funny"}},
	{phrases: []string{"scare me", "frighten me"}, terms: []string{"horror", "scary"}},
}

func compileDirectGenres() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(Vocabulary))
	for i, genre := range Vocabulary {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(genre) + `\b`)
	}
	return out
}

// Fold transliterates query to ASCII and case-folds it.
func Fold(query string) string {
	ascii := unidecode.Unidecode(query)
	return strings.TrimSpace(cases.Fold().String(ascii))
}

// DirectGenre returns the first vocabulary genre that appears in the folded
// query as a whole word.
func DirectGenre(folded string) (string, bool) {
	for i, re := range directGenrePatterns {
		if re.MatchString(folded) {
			return Vocabulary[i], true
		}
	}
	return "", false
}

// Analyze normalizes query into terms and extracts its negations. A query
// naming a vocabulary genre directly yields just that genre and no negations.
func Analyze(query string) (TermSet, NegatedSet) {
	folded := Fold(query)
	if genre, ok := DirectGenre(folded); ok {
		return TermSet{genre}, NegatedSet{}
	}
	return extractTerms(folded), ExtractNegations(folded)
}

// Normalize returns the terms of query. See Analyze.
func Normalize(query string) TermSet {
	terms, _ := Analyze(query)
	return terms
}

// extractTerms collects nouns, then adjectives, then verbs, then idiom terms.
func extractTerms(folded string) TermSet {
	var nouns, adjs, vbs []string

	nouns = append(nouns, phraseAliases(folded)...)

	for _, tok := range tokenize(folded) {
		class, lemma := classify(tok)
		switch class {
		case classNoun:
			nouns = append(nouns, nounLemma(lemma))
		case classAdjective:
			adjs = append(adjs, lemma)
		case classVerb:
			vbs = append(vbs, lemma)
		}
	}

	terms := make(TermSet, 0, len(nouns)+len(adjs)+len(vbs))
	for _, group := range [][]string{nouns, adjs, vbs} {
		for _, t := range group {
			if t = strings.TrimSpace(t); len(t) >= minTermLen {
				terms = append(terms, t)
			}
		}
	}

	for _, id := range idioms {
		for _, p := range id.phrases {
			if strings.Contains(folded, p) {
				terms = append(terms, id.terms...)
				break
			}
		}
	}
	return terms
}

// tokenize splits folded text into words with stray edge punctuation removed.
func tokenize(folded string) []string {
	raw := tokenPattern.FindAllString(folded, -1)
	out := raw[:0]
	for _, tok := range raw {
		if tok = strings.Trim(tok, "'-"); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// nounLemma singularizes a noun unless the surface form is already a known
// alias or mood word, so "kids" and "children" keep matching.
func nounLemma(word string) string {
	if isTableWord(word) {
		return word
	}
	return inflection.Singular(word)
}

func isTableWord(word string) bool {
	if _, ok := aliasIndex[word]; ok {
		return true
	}
	_, ok := moodGenres[word]
	return ok
}

// phraseAliases returns the multi-word aliases present in folded as whole
// words, in order of occurrence.
func phraseAliases(folded string) []string {
	var out []string
	for _, m := range multiWordAliases.Search(folded) {
		if wordBoundary(folded, m.Start-1) && wordBoundary(folded, m.End) {
			out = append(out, m.Data)
		}
	}
	return out
}

// wordBoundary reports whether the byte at i is outside s or not a word character.
func wordBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '\'' || c == '-')
}
