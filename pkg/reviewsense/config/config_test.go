package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseFull(t *testing.T) {
	content := `sentiment:
  positive_words: [snappy, Great]
  negative_words: [sluggish]
  positive_threshold: 0.5
  negative_threshold: -0.4
scorer: vader
phrases:
  max: 5
  fallback: [nothing yet]
insights:
  mode: derived
  static_path: insights.yaml
  word_cloud_size: 10
  features:
    pricing: [price, cost]
  competitors:
    Acme: [acme]
`
	f, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Scorer != ScorerVader {
		t.Errorf("Scorer = %q", f.Scorer)
	}
	if f.Phrases.Max != 5 || len(f.Phrases.Fallback) != 1 {
		t.Errorf("Phrases = %+v", f.Phrases)
	}
	if f.Insights.Mode != InsightsDerived || f.Insights.WordCloudSize != 10 {
		t.Errorf("Insights = %+v", f.Insights)
	}
	if len(f.Insights.Features["pricing"]) != 2 || len(f.Insights.Competitors["Acme"]) != 1 {
		t.Errorf("taxonomy config = %+v", f.Insights)
	}

	cfg := f.SentimentConfig()
	if _, ok := cfg.PositiveWords["great"]; !ok {
		t.Error("words should be lowercased")
	}
	if _, ok := cfg.PositiveWords["excellent"]; ok {
		t.Error("configured list should replace the default list")
	}
	if cfg.PositiveThreshold != 0.5 || cfg.NegativeThreshold != -0.4 {
		t.Errorf("thresholds = %v / %v", cfg.PositiveThreshold, cfg.NegativeThreshold)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg := f.SentimentConfig()
	def := sentiment.DefaultConfig()
	if len(cfg.PositiveWords) != len(def.PositiveWords) || len(cfg.NegativeWords) != len(def.NegativeWords) {
		t.Error("empty config should keep the default lexicon")
	}
	if cfg.PositiveThreshold != 0.2 || cfg.NegativeThreshold != -0.2 {
		t.Errorf("thresholds = %v / %v, want ±0.2", cfg.PositiveThreshold, cfg.NegativeThreshold)
	}
}

func TestParseZeroThresholdIsExplicit(t *testing.T) {
	f, err := Parse([]byte("sentiment:\n  positive_threshold: 0\n  negative_threshold: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg := f.SentimentConfig()
	if cfg.PositiveThreshold != 0 || cfg.NegativeThreshold != 0 {
		t.Errorf("explicit zero thresholds lost: %v / %v", cfg.PositiveThreshold, cfg.NegativeThreshold)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown scorer":     "scorer: bert\n",
		"unknown mode":       "insights:\n  mode: magic\n",
		"negative max":       "phrases:\n  max: -1\n",
		"inverted threshold": "sentiment:\n  positive_threshold: -0.5\n  negative_threshold: 0.5\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("Parse error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("sentiment: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/reviewsense.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
