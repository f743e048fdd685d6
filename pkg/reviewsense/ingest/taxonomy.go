package ingest

import (
	"sort"
	"strings"
)

// Taxonomy maps review vocabulary onto product features and competitor names.
type Taxonomy struct {
	features    map[string][]string // feature → keywords (lowercase)
	competitors map[string][]string // competitor → aliases (lowercase)
}

// NewTaxonomy creates an empty taxonomy
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		features:    make(map[string][]string),
		competitors: make(map[string][]string),
	}
}

// DefaultTaxonomy returns the feature vocabulary behind the four standard
// review categories.
func DefaultTaxonomy() *Taxonomy {
	t := NewTaxonomy()
	t.AddFeature("performance", []string{"fast", "faster", "speed", "slow", "slower", "lag", "laggy", "performance", "responsive", "quick", "load", "loading"})
	t.AddFeature("usability", []string{"easy", "intuitive", "interface", "ui", "usability", "confusing", "navigate", "navigation", "simple", "design", "layout"})
	t.AddFeature("reliability", []string{"reliable", "reliability", "crash", "crashes", "crashed", "bug", "bugs", "buggy", "stable", "downtime", "outage", "broken"})
	t.AddFeature("support", []string{"support", "service", "help", "helpful", "staff", "team", "response", "agent", "documentation", "docs"})
	return t
}

// AddFeature adds a feature with its keywords
func (t *Taxonomy) AddFeature(name string, keywords []string) {
	t.features[strings.ToLower(name)] = lowerAll(keywords)
}

// AddCompetitor adds a competitor and the aliases it is mentioned by.
// Aliases may span several words.
func (t *Taxonomy) AddCompetitor(name string, aliases []string) {
	if len(aliases) == 0 {
		aliases = []string{name}
	}
	t.competitors[name] = lowerAll(aliases)
}

// Features returns the configured feature names in sorted order.
func (t *Taxonomy) Features() []string {
	names := make([]string, 0, len(t.features))
	for name := range t.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssignFeatures determines which features the given tokens talk about.
// The result is sorted.
func (t *Taxonomy) AssignFeatures(tokens []string) []string {
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[strings.ToLower(tok)] = struct{}{}
	}

	var result []string
	for feature, keywords := range t.features {
		for _, kw := range keywords {
			if _, ok := tokenSet[kw]; ok {
				result = append(result, feature)
				break
			}
		}
	}
	sort.Strings(result)
	return result
}

// MentionedCompetitors returns the competitors whose aliases occur in text,
// as whole words, sorted by name.
func (t *Taxonomy) MentionedCompetitors(text string) []string {
	padded := " " + strings.Join(strings.Fields(normalizeForMatch(text)), " ") + " "

	var result []string
	for name, aliases := range t.competitors {
		for _, alias := range aliases {
			needle := " " + strings.Join(strings.Fields(normalizeForMatch(alias)), " ") + " "
			if strings.TrimSpace(needle) != "" && strings.Contains(padded, needle) {
				result = append(result, name)
				break
			}
		}
	}
	sort.Strings(result)
	return result
}

// normalizeForMatch lowercases s and replaces non-word characters with spaces.
func normalizeForMatch(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			if r >= 'A' && r <= 'Z' {
				return r + 'a' - 'A'
			}
			return r
		}
		return ' '
	}, s)
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
