// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package recommend

import (
	"strings"

	"github.com/tomtom215/vortax/internal/textmatch"
)

// Vocabulary is the closed set of genres, in canonical order. Direct-genre
// detection walks it in this order, so an earlier genre wins when a query
// names several.
var Vocabulary = []string{
	"action", "adventure", "animation", "comedy", "crime",
	"documentary", "drama", "family", "fantasy", "history",
	"horror", "music", "mystery", "romance", "science fiction",
	"thriller", "war", "western",
}

// tmdbGenreIDs maps vocabulary genres to TMDB genre IDs.
var tmdbGenreIDs = map[string]int{
	"action":          28,
	"adventure":       12,
	"animation":       16,
	"comedy":          35,
	"crime":           80,
	"documentary":     99,
	"drama":           18,
	"family":          10751,
	"fantasy":         14,
	"history":         36,
	"horror":          27,
	"music":           10402,
	"mystery":         9648,
	"romance":         10749,
	"science fiction": 878,
	"thriller":        53,
	"war":             10752,
	"western":         37,
}

// moodGenres maps mood words to genres. Targets are restricted to the
// vocabulary; musical, parody, suspense, sport and biography are not genres
// here and are left out.
var moodGenres = map[string][]string{
	"happy":             {"comedy", "family", "animation"},
	"cheerful":          {"comedy", "family", "animation"},
	"sad":               {"drama", "romance"},
	"melancholic":       {"drama", "romance"},
	"depressing":        {"drama"},
	"exciting":          {"action", "adventure", "thriller"},
	"thrilled":          {"thriller", "action", "mystery"},
	"thrilling":         {"thriller", "action"},
	"funny":             {"comedy"},
	"hilarious":         {"comedy"},
	"humor":             {"comedy"},
	"humorous":          {"comedy"},
	"scary":             {"horror", "thriller"},
	"frightening":       {"horror"},
	"terrifying":        {"horror"},
	"romantic":          {"romance", "drama"},
	"love":              {"romance"},
	"mysterious":        {"mystery", "thriller", "crime"},
	"adventurous":       {"adventure", "action", "fantasy"},
	"fantasy":           {"fantasy", "adventure"},
	"scifi":             {"science fiction", "action"},
	"sci-fi":            {"science fiction"},
	"sf":                {"science fiction"},
	"relaxed":           {"drama", "romance", "documentary"},
	"calm":              {"drama", "documentary"},
	"energetic":         {"action", "adventure"},
	"thoughtful":        {"drama", "documentary"},
	"nostalgic":         {"drama", "history", "family"},
	"thriller":          {"thriller"},
	"suspense":          {"thriller"},
	"suspenseful":       {"thriller"},
	"edge-of-your-seat": {"thriller"},
	"animated":          {"animation"},
	"cartoon":           {"animation"},
	"anime":             {"animation"},
	"doc":               {"documentary"},
	"non-fiction":       {"documentary"},
	"real-life":         {"documentary"},
}

// genreAliases lists the words that stand for each genre.
var genreAliases = map[string][]string{
	"action":          {"action-packed", "fight", "battle", "explosive"},
	"adventure":       {"quest", "journey", "expedition"},
	"animation":       {"animated", "cartoon", "anime"},
	"comedy":          {"funny", "humorous", "humor", "hilarious", "laugh", "satire"},
	"crime":           {"gangster", "mafia", "heist", "police"},
	"documentary":     {"doc", "non-fiction", "real-life", "biography", "historical"},
	"drama":           {"emotional", "serious", "melodrama"},
	"family":          {"kids", "children", "child-friendly"},
	"fantasy":         {"magic", "mythical", "fairy tale"},
	"history":         {"historical", "period piece"},
	"horror":          {"scary", "frightening", "terrifying", "ghost", "haunted"},
	"music":           {"musical", "concert", "rock", "pop"},
	"mystery":         {"whodunit", "detective", "crime solver"},
	"romance":         {"romantic", "love", "relationship", "dating"},
	"science fiction": {"scifi", "sci-fi", "sf", "futuristic", "space", "alien"},
	"thriller":        {"suspense", "suspenseful", "edge-of-your-seat", "tense"},
	"war":             {"military", "soldier", "battlefield"},
	"western":         {"cowboy", "frontier", "wild west"},
}

// prefixRules are the last-resort stem heuristics. Every matching rule applies.
var prefixRules = []struct {
	prefix string
	genre  string
}{
	{"thrill", "thriller"},
	{"funn", "comedy"},
	{"horr", "horror"},
	{"roman", "romance"},
	{"actio", "action"},
	{"advent", "adventure"},
}

// Lookup structures derived from the tables above. They are built once at
// package init and only read afterwards.
var (
	vocabularySet = toSet(Vocabulary)

	// aliasIndex maps an alias or genre name to one genre. An alias listed
	// under several genres belongs to the first of them in vocabulary order.
	aliasIndex = buildAliasIndex()

	prefixTrie = buildPrefixTrie()

	// multiWordAliases are aliases the tokenizer would otherwise split apart.
	multiWordAliases = buildMultiWordAliases()
)

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func buildAliasIndex() map[string]string {
	index := make(map[string]string)
	for _, genre := range Vocabulary {
		index[genre] = genre
	}
	for _, genre := range Vocabulary {
		for _, alias := range genreAliases[genre] {
			if _, taken := index[alias]; !taken {
				index[alias] = genre
			}
		}
	}
	return index
}

func buildPrefixTrie() *textmatch.PrefixTrie[string] {
	trie := textmatch.NewPrefixTrie[string]()
	for _, r := range prefixRules {
		trie.Insert(r.prefix, r.genre)
	}
	return trie
}

func buildMultiWordAliases() *textmatch.Automaton[string] {
	var patterns []textmatch.Pattern[string]
	for _, genre := range Vocabulary {
		for _, alias := range genreAliases[genre] {
			if strings.Contains(alias, " ") {
				patterns = append(patterns, textmatch.Pattern[string]{Text: alias, Data: alias})
			}
		}
	}
	return textmatch.NewAutomaton(patterns, false)
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// GenreID returns the TMDB genre ID for a vocabulary genre.
func GenreID(genre string) (int, bool) {
	id, ok := tmdbGenreIDs[genre]
	return id, ok
}

// IsGenre reports whether name is in the vocabulary.
func IsGenre(name string) bool {
	_, ok := vocabularySet[name]
	return ok
}
