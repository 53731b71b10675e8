// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"strings"
)

// wordClass is the part of speech assigned by the closed lexicon.
type wordClass int

const (
	classFunction wordClass = iota
	classAdjective
	classVerb
	classNoun
)

// functionWords are never terms: determiners, pronouns, auxiliaries,
// prepositions, conjunctions, negation cues and filler.
var functionWords = toSet([]string{
	"a", "an", "the", "this", "that", "these", "those", "some", "any", "every", "each",
	"all", "both", "either", "neither", "much", "many", "more", "most", "few", "less",
	"i", "me", "my", "mine", "myself", "we", "us", "our", "you", "your", "he", "him",
	"his", "she", "her", "it", "its", "they", "them", "their", "what", "which", "who",
	"whom", "whose", "something", "anything", "nothing", "everything", "someone",
	"anyone", "somebody", "anybody", "one", "ones",
	"am", "is", "are", "was", "were", "be", "been", "being", "do", "does", "did",
	"have", "has", "had", "will", "would", "shall", "should", "can", "could", "may",
	"might", "must", "i'm", "i'd", "i'll", "i've", "it's", "that's", "let's", "wanna",
	"gonna", "gotta",
	"in", "on", "at", "by", "for", "with", "about", "from", "to", "of", "into", "onto",
	"over", "under", "after", "before", "during", "like", "than", "as", "up", "down",
	"out", "off", "around", "through", "between", "tonight", "today", "tomorrow",
	"now", "then", "again", "just", "also", "too", "very", "really", "quite", "so",
	"and", "or", "but", "nor", "if", "because", "while", "though", "although",
	"not", "no", "without", "don't", "doesn't", "didn't", "isn't", "aren't", "won't",
	"never", "please", "maybe", "perhaps", "kind", "sort", "lot", "bit",
	"movie", "film", "cinema", "feature", "show", "tv", "series", "episode", "season",
	"watch", "something's",
})

// adjectives are the mood keys and alias words that describe, plus common
// descriptive words seen in requests.
var adjectives = toSet([]string{
	"happy", "cheerful", "sad", "melancholic", "depressing", "exciting", "thrilled",
	"thrilling", "funny", "hilarious", "humorous", "scary", "frightening", "terrifying",
	"romantic", "mysterious", "adventurous", "relaxed", "calm", "energetic",
	"thoughtful", "nostalgic", "suspenseful", "animated", "edge-of-your-seat",
	"non-fiction", "real-life", "action-packed", "explosive", "emotional", "serious",
	"mythical", "historical", "child-friendly", "futuristic", "tense", "haunted",
	"good", "great", "new", "old", "best", "light", "dark", "classic", "recent",
	"popular", "short", "long", "sweet", "heartwarming", "intense", "epic", "cute",
	"weird", "silly", "smart", "clever", "gritty", "violent", "bloody", "creepy",
	"spooky", "uplifting", "feel-good", "slow", "fast", "big", "little", "nice", "cool",
	"awesome", "amazing", "interesting", "boring", "beautiful", "true", "real",
	"famous", "young", "other", "different", "easy", "hard", "wild", "fun", "lighthearted",
	"sad", "tragic", "inspiring", "moving", "dramatic", "magical", "crazy",
})

// verbs are listed in their infinitive form.
var verbs = toSet([]string{
	"want", "see", "need", "feel", "make", "laugh", "cry", "scare", "frighten", "cheer",
	"fight", "think", "look", "find", "give", "recommend", "get", "enjoy", "explore",
	"travel", "kill", "solve", "fall", "dance", "sing", "play", "help", "take", "keep",
	"let", "put", "say", "tell", "try", "use", "hate", "prefer", "relax", "smile",
	"suggest", "binge", "stream", "escape", "survive", "save", "chase", "hunt", "run",
	"cook", "learn", "know", "wish", "hope", "go", "come",
})

// classify assigns a word class. Words reducing to a listed verb after
// stripping -ing, -ed or -s are verbs; lemma is then the infinitive.
// Anything unlisted is a noun.
func classify(word string) (class wordClass, lemma string) {
	if _, ok := functionWords[word]; ok {
		return classFunction, word
	}
	if _, ok := adjectives[word]; ok {
		return classAdjective, word
	}
	if inf, ok := verbLemma(word); ok {
		return classVerb, inf
	}
	return classNoun, word
}

// verbLemma returns the infinitive of word if it is a listed verb or an
// inflection of one.
func verbLemma(word string) (string, bool) {
	if _, ok := verbs[word]; ok {
		return word, true
	}
	for _, suffix := range []string{"ing", "ed", "es", "s"} {
		stem, found := strings.CutSuffix(word, suffix)
		if !found || len(stem) < 2 {
			continue
		}
		for _, cand := range stemCandidates(stem, suffix) {
			if _, ok := verbs[cand]; ok {
				return cand, true
			}
		}
	}
	return "", false
}

// stemCandidates undoes the common spelling changes of English inflection:
// dropped final e (scared), doubled consonant (running) and y to i (cries).
func stemCandidates(stem, suffix string) []string {
	out := []string{stem}
	if suffix == "ing" || suffix == "ed" {
		out = append(out, stem+"e")
		if n := len(stem); n >= 2 && stem[n-1] == stem[n-2] {
			out = append(out, stem[:n-1])
		}
	}
	if (suffix == "ed" || suffix == "es") && strings.HasSuffix(stem, "i") {
		out = append(out, strings.TrimSuffix(stem, "i")+"y")
	}
	return out
}
