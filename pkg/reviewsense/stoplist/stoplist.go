package stoplist

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manager holds the stopwords filtered out of derived word statistics.
// It is not consulted by sentiment scoring.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]struct{}, len(initialStops))
	for _, s := range initialStops {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			stops[s] = struct{}{}
		}
	}
	return &Manager{stops: stops}
}

// Default returns a manager seeded with a compact list of English
// function words.
func Default() *Manager {
	return NewManager(defaultEnglish)
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[strings.ToLower(token)]
	return ok
}

// File is the on-disk stoplist format.
type File struct {
	Terms []string `yaml:"terms"`
}

// LoadFromYAML reads a stoplist file of the form `terms: [the, a, ...]`.
func LoadFromYAML(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return NewManager(f.Terms), nil
}

var defaultEnglish = []string{
	"a", "about", "after", "again", "all", "also", "am", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "before", "being", "but", "by", "can", "could", "did", "do", "does",
	"doing", "don", "for", "from", "had", "has", "have", "having", "he", "her", "here", "him",
	"his", "how", "i", "if", "in", "into", "is", "it", "its", "just", "me", "more", "most", "my",
	"no", "not", "now", "of", "on", "once", "only", "or", "other", "our", "out", "over", "own",
	"re", "s", "same", "she", "should", "so", "some", "such", "t", "than", "that", "the", "their",
	"them", "then", "there", "these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where", "which", "while", "who",
	"why", "will", "with", "would", "you", "your",
}
