package ingest

import (
	"strings"

	"github.com/cognicore/reviewsense/pkg/reviewsense/lexicon"
)

// Tokenizer lowercases text and splits it on runs of non-word characters.
// Word characters are ASCII letters, ASCII digits and underscore.
//
// The zero-option tokenizer returned by NewTokenizer keeps every token, which
// is what sentiment scoring needs. Stopwords, a minimum length and a synonym
// lexicon can be layered on for word statistics.
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
	lexicon   *lexicon.Lexicon // Optional: for synonym normalization
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// SetLexicon assigns a lexicon for synonym normalization.
// When set, tokens will be normalized to their canonical forms.
// Example: "loved" → "love"
func (t *Tokenizer) SetLexicon(lex *lexicon.Lexicon) {
	t.lexicon = lex
}

// SetMinLength drops tokens shorter than n bytes.
func (t *Tokenizer) SetMinLength(n int) {
	t.minLen = n
}

// Tokenize splits text into normalized tokens, removing stopwords.
// If a lexicon is set, tokens are normalized to their canonical forms.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if isWordRune(r) {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// processToken applies lexicon normalization, length and stopword filtering.
func (t *Tokenizer) processToken(word string) string {
	if len(word) < t.minLen {
		return ""
	}

	if t.lexicon != nil {
		word = t.lexicon.Normalize(word)
	}

	if t.isStopword(word) {
		return ""
	}

	return word
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}
