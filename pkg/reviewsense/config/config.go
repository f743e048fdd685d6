package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
)

// Scorer names accepted in File.Scorer.
const (
	ScorerLexicon = "lexicon"
	ScorerVader   = "vader"
)

// Insight modes accepted in Insights.Mode.
const (
	InsightsStatic  = "static"
	InsightsDerived = "derived"
)

// File is the analyzer configuration file.
type File struct {
	Sentiment Sentiment `yaml:"sentiment"`
	Scorer    string    `yaml:"scorer"`
	Phrases   Phrases   `yaml:"phrases"`
	Insights  Insights  `yaml:"insights"`
}

// Sentiment overrides the scoring lexicon and thresholds. Omitted lists and
// thresholds keep their defaults.
type Sentiment struct {
	PositiveWords     []string `yaml:"positive_words"`
	NegativeWords     []string `yaml:"negative_words"`
	PositiveThreshold *float64 `yaml:"positive_threshold"`
	NegativeThreshold *float64 `yaml:"negative_threshold"`
}

// Phrases configures key phrase extraction.
type Phrases struct {
	Max      int      `yaml:"max"`
	Fallback []string `yaml:"fallback"`
}

// Insights selects and configures the insights provider.
type Insights struct {
	Mode          string              `yaml:"mode"`
	StaticPath    string              `yaml:"static_path"`
	WordCloudSize int                 `yaml:"word_cloud_size"`
	Features      map[string][]string `yaml:"features"`
	Competitors   map[string][]string `yaml:"competitors"`
}

// LoadFile reads and validates a configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates configuration YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks enumerated fields and thresholds.
func (f *File) Validate() error {
	switch f.Scorer {
	case "", ScorerLexicon, ScorerVader:
	default:
		return fmt.Errorf("%w: unknown scorer %q", internalerr.ErrInvalidConfig, f.Scorer)
	}
	switch f.Insights.Mode {
	case "", InsightsStatic, InsightsDerived:
	default:
		return fmt.Errorf("%w: unknown insights mode %q", internalerr.ErrInvalidConfig, f.Insights.Mode)
	}
	if f.Phrases.Max < 0 {
		return fmt.Errorf("%w: phrases.max must not be negative", internalerr.ErrInvalidConfig)
	}
	return f.SentimentConfig().Validate()
}

// SentimentConfig merges the file's sentiment section over the defaults.
func (f *File) SentimentConfig() sentiment.Config {
	positive := sentiment.DefaultPositiveWords()
	if len(f.Sentiment.PositiveWords) > 0 {
		positive = f.Sentiment.PositiveWords
	}
	negative := sentiment.DefaultNegativeWords()
	if len(f.Sentiment.NegativeWords) > 0 {
		negative = f.Sentiment.NegativeWords
	}
	pos := sentiment.DefaultPositiveThreshold
	if f.Sentiment.PositiveThreshold != nil {
		pos = *f.Sentiment.PositiveThreshold
	}
	neg := sentiment.DefaultNegativeThreshold
	if f.Sentiment.NegativeThreshold != nil {
		neg = *f.Sentiment.NegativeThreshold
	}
	return sentiment.NewConfig(positive, negative, pos, neg)
}
