package retrieval

import (
	"regexp"
	"strings"

	"github.com/lorekeep/lorekeep/pkg/ingest"
)

var (
	quotedRe = regexp.MustCompile(`"([^"]{2,80})"|'([^']{2,80})'`)
	// Two or more consecutive capitalized words, e.g. "Circuit Breaker"
	capPhraseRe = regexp.MustCompile(`\b([A-Z][a-zA-Z0-9]*(?:\s+[A-Z][a-zA-Z0-9]*)+)\b`)
	wordRe      = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*`)
	// A capital after the first character, e.g. "GraphRAG", "PostgreSQL"
	internalCapRe = regexp.MustCompile(`^[A-Za-z][a-z0-9]*[A-Z]`)
)

// titleStopwords are capitalized words that carry no entity signal on their
// own ("when does The job fail?").
var titleStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {},
	"it": {}, "i": {}, "we": {}, "you": {}, "they": {},
	"what": {}, "how": {}, "when": {}, "where": {}, "why": {}, "who": {},
	"which": {}, "is": {}, "are": {}, "do": {}, "does": {}, "can": {},
	"and": {}, "or": {}, "but": {}, "if": {}, "in": {}, "on": {}, "of": {},
}

// KeyTerms extracts graph seed candidates from a query: quoted phrases,
// capitalized multi-word phrases, and single entity-looking words — tokens
// with an internal capital ("GraphRAG") or capitalized words that do not
// open a sentence — normalized the same way node names are. This runs even
// when vector search returns nothing, so graph-only corners of the corpus
// stay reachable.
func KeyTerms(query string) []string {
	seen := map[string]struct{}{}
	var terms []string

	add := func(raw string) {
		norm := ingest.Normalize(raw)
		if norm == "" {
			return
		}
		if _, ok := seen[norm]; ok {
			return
		}
		seen[norm] = struct{}{}
		terms = append(terms, norm)
	}

	for _, m := range quotedRe.FindAllStringSubmatch(query, -1) {
		if m[1] != "" {
			add(m[1])
		} else {
			add(m[2])
		}
	}

	// Strip quoted spans so their contents are not re-matched
	stripped := quotedRe.ReplaceAllString(query, " ")
	for _, m := range capPhraseRe.FindAllStringSubmatch(stripped, -1) {
		add(m[1])
	}

	// Single-word pass over what the phrase pass did not consume.
	rest := capPhraseRe.ReplaceAllString(stripped, " ")
	for _, loc := range wordRe.FindAllStringIndex(rest, -1) {
		word := rest[loc[0]:loc[1]]
		if internalCapRe.MatchString(word) {
			add(word)
			continue
		}
		if word[0] < 'A' || word[0] > 'Z' {
			continue
		}
		if opensSentence(rest, loc[0]) {
			continue
		}
		if _, stop := titleStopwords[strings.ToLower(word)]; stop {
			continue
		}
		add(word)
	}

	return terms
}

// opensSentence reports whether the word starting at pos is the first of the
// text or follows sentence-ending punctuation.
func opensSentence(s string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '.', '?', '!':
			return true
		default:
			return false
		}
	}
	return true
}
