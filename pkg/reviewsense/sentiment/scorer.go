package sentiment

import (
	"math"

	"github.com/cognicore/reviewsense/pkg/reviewsense/ingest"
)

// Scorer computes a polarity score in [-1, 1] for a text.
type Scorer interface {
	Score(text string) float64
}

// LexiconScorer averages ±1 votes from lexicon hits.
// It is safe for concurrent use once constructed.
type LexiconScorer struct {
	cfg       Config
	tokenizer *ingest.Tokenizer
}

// NewLexiconScorer creates a scorer over cfg. A nil tokenizer means a plain
// tokenizer with no stopwords or synonym normalization.
func NewLexiconScorer(cfg Config, tokenizer *ingest.Tokenizer) *LexiconScorer {
	if tokenizer == nil {
		tokenizer = ingest.NewTokenizer(nil)
	}
	return &LexiconScorer{cfg: cfg, tokenizer: tokenizer}
}

// Score returns sum/count over matched tokens, or exactly 0 when no token
// is in the lexicon. A word listed as both positive and negative counts as
// positive.
func (s *LexiconScorer) Score(text string) float64 {
	sum, count := 0, 0
	for _, tok := range s.tokenizer.Tokenize(text) {
		if _, ok := s.cfg.PositiveWords[tok]; ok {
			sum++
			count++
		} else if _, ok := s.cfg.NegativeWords[tok]; ok {
			sum--
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// Result is the outcome of scoring a single text.
type Result struct {
	Score  float64 // polarity in [-1, 1]
	Label  Label
	Rating float64 // 1–5
}

var (
	defaultConfig = DefaultConfig()
	defaultScorer = NewLexiconScorer(defaultConfig, nil)
)

// Analyze scores text with the default lexicon and thresholds.
func Analyze(text string) Result {
	return Evaluate(defaultScorer, defaultConfig, text)
}

// Evaluate scores text with scorer and classifies it with cfg.
func Evaluate(scorer Scorer, cfg Config, text string) Result {
	score := scorer.Score(text)
	if math.IsNaN(score) {
		score = 0
	}
	return Result{
		Score:  score,
		Label:  cfg.Classify(score),
		Rating: Rating(score),
	}
}
