package sentiment

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
)

// Label is the coarse sentiment class of a text.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Default classification cutoffs.
const (
	DefaultPositiveThreshold = 0.2
	DefaultNegativeThreshold = -0.2
)

var (
	defaultPositiveWords = []string{"great", "excellent", "good", "best", "amazing", "love", "perfect", "helpful", "impressed"}
	defaultNegativeWords = []string{"bad", "poor", "terrible", "worst", "hate", "disappointing", "difficult", "frustrated"}
)

// DefaultPositiveWords returns a copy of the built-in positive lexicon.
func DefaultPositiveWords() []string { return slices.Clone(defaultPositiveWords) }

// DefaultNegativeWords returns a copy of the built-in negative lexicon.
func DefaultNegativeWords() []string { return slices.Clone(defaultNegativeWords) }

// Config holds the scoring lexicon and classification thresholds.
// A score strictly above PositiveThreshold is positive, strictly below
// NegativeThreshold is negative, anything else is neutral.
type Config struct {
	PositiveWords     map[string]struct{}
	NegativeWords     map[string]struct{}
	PositiveThreshold float64
	NegativeThreshold float64
}

// DefaultConfig returns the built-in lexicon with ±0.2 thresholds.
func DefaultConfig() Config {
	return NewConfig(defaultPositiveWords, defaultNegativeWords, DefaultPositiveThreshold, DefaultNegativeThreshold)
}

// NewConfig builds a Config from word lists. Words are lowercased.
func NewConfig(positive, negative []string, positiveThreshold, negativeThreshold float64) Config {
	return Config{
		PositiveWords:     wordSet(positive),
		NegativeWords:     wordSet(negative),
		PositiveThreshold: positiveThreshold,
		NegativeThreshold: negativeThreshold,
	}
}

// Validate reports whether the thresholds are ordered.
func (c Config) Validate() error {
	if c.NegativeThreshold > c.PositiveThreshold {
		return fmt.Errorf("%w: negative threshold %.2f above positive threshold %.2f",
			internalerr.ErrInvalidConfig, c.NegativeThreshold, c.PositiveThreshold)
	}
	return nil
}

// Classify maps a polarity score onto a Label.
func (c Config) Classify(score float64) Label {
	switch {
	case score > c.PositiveThreshold:
		return Positive
	case score < c.NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Rating maps a polarity score in [-1, 1] onto a 1–5 rating, saturating
// outside that range.
func Rating(score float64) float64 {
	r := (score + 1) * 2.5
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
