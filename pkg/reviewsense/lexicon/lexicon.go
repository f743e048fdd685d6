package lexicon

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
)

// Lexicon folds word variants ("loved", "loving") onto a canonical word
// ("love") so they score and count as one term.
//
// Lookups are case-insensitive. Build a Lexicon once and share it
// read-only; mutation is not synchronized.
type Lexicon struct {
	groups      map[string][]string // canonical -> canonical + variants
	canonicalOf map[string]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		groups:      make(map[string][]string),
		canonicalOf: make(map[string]string),
	}
}

// File is the on-disk lexicon format:
//
//	synonyms:
//	  - canonical: love
//	    variants: [loved, loving, loves]
type File struct {
	Synonyms []Group `yaml:"synonyms"`
}

// Group is one canonical word and the variants folded onto it.
type Group struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// LoadFromYAML reads a lexicon file.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a lexicon from YAML bytes. Groups with a blank canonical
// word are skipped.
func Parse(data []byte) (*Lexicon, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: lexicon: %v", internalerr.ErrInvalidConfig, err)
	}

	lex := New()
	for _, g := range file.Synonyms {
		lex.AddSynonymGroup(g.Canonical, g.Variants)
	}
	return lex, nil
}

// AddSynonymGroup registers canonical and its variants. Redefining a
// canonical word replaces its previous variants.
func (l *Lexicon) AddSynonymGroup(canonical string, variants []string) {
	canonical = clean(canonical)
	if canonical == "" {
		return
	}
	for _, old := range l.groups[canonical] {
		delete(l.canonicalOf, old)
	}

	group := []string{canonical}
	for _, v := range variants {
		v = clean(v)
		if v != "" && !slices.Contains(group, v) {
			group = append(group, v)
		}
	}

	l.groups[canonical] = group
	for _, v := range group {
		l.canonicalOf[v] = canonical
	}
}

// Normalize maps a token to its canonical word, or returns it lowercased.
func (l *Lexicon) Normalize(token string) string {
	token = strings.ToLower(token)
	if canonical, ok := l.canonicalOf[token]; ok {
		return canonical
	}
	return token
}

// Variants returns a copy of the group containing token, canonical word
// first, or just the lowercased token when it is unknown.
func (l *Lexicon) Variants(token string) []string {
	canonical := l.Normalize(token)
	if group, ok := l.groups[canonical]; ok {
		return slices.Clone(group)
	}
	return []string{canonical}
}

// HasSynonyms reports whether token belongs to any group.
func (l *Lexicon) HasSynonyms(token string) bool {
	_, ok := l.canonicalOf[strings.ToLower(token)]
	return ok
}

// Canonicals returns the canonical words in sorted order.
func (l *Lexicon) Canonicals() []string {
	out := make([]string, 0, len(l.groups))
	for c := range l.groups {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Stats summarizes a lexicon.
type Stats struct {
	SynonymGroups int
	TotalVariants int // canonical words included
}

// Stats counts groups and variants.
func (l *Lexicon) Stats() Stats {
	st := Stats{SynonymGroups: len(l.groups)}
	for _, group := range l.groups {
		st.TotalVariants += len(group)
	}
	return st
}

func clean(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
