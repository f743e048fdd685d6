package phrases

import (
	"slices"
	"strings"
)

// DefaultMax is the number of phrases kept by default.
const DefaultMax = 8

var defaultFallback = []string{
	"excellent customer service",
	"user friendly interface",
	"great value for money",
	"highly recommended",
	"easy to use",
	"responsive support team",
	"impressive features",
	"regular updates",
}

// DefaultFallback returns a copy of the phrases used in place of extraction
// when there is no text.
func DefaultFallback() []string {
	return slices.Clone(defaultFallback)
}

// Source says where a phrase list came from.
type Source string

const (
	SourceExtracted Source = "extracted"
	SourceFallback  Source = "fallback"
)

// Phrases is the output of an extraction.
type Phrases struct {
	Items  []string
	Source Source
}

// Fallback reports whether Items is the fallback list.
func (p Phrases) Fallback() bool {
	return p.Source == SourceFallback
}

// Extractor turns review text into a short list of distinct key phrases.
type Extractor struct {
	tagger   Tagger
	max      int
	fallback []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMax caps the number of phrases. Values below 1 are ignored.
func WithMax(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.max = n
		}
	}
}

// WithFallback replaces the fallback list.
func WithFallback(phrases []string) Option {
	return func(e *Extractor) {
		e.fallback = append([]string(nil), phrases...)
	}
}

// NewExtractor creates an extractor. A nil tagger means NewProseTagger.
func NewExtractor(tagger Tagger, opts ...Option) *Extractor {
	if tagger == nil {
		tagger = NewProseTagger()
	}
	e := &Extractor{
		tagger:   tagger,
		max:      DefaultMax,
		fallback: defaultFallback,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns up to max lowercased phrases, deduplicated case-insensitively
// in order of first occurrence. Blank text yields the fallback list instead.
// A tagger failure is returned as is.
func (e *Extractor) Extract(text string) (Phrases, error) {
	if strings.TrimSpace(text) == "" {
		return Phrases{Items: distinct(e.fallback, e.max), Source: SourceFallback}, nil
	}

	matches, err := e.tagger.AdjectiveNounPhrases(text)
	if err != nil {
		return Phrases{}, err
	}

	return Phrases{Items: distinct(matches, e.max), Source: SourceExtracted}, nil
}

// distinct lowercases and whitespace-normalizes phrases, keeping the first
// occurrence of each and at most limit entries. The result is never nil.
func distinct(phrases []string, limit int) []string {
	items := make([]string, 0, min(len(phrases), limit))
	seen := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		if len(items) == limit {
			break
		}
		phrase := strings.ToLower(strings.Join(strings.Fields(p), " "))
		if phrase == "" {
			continue
		}
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}
		items = append(items, phrase)
	}
	return items
}
