package config

import (
	"errors"
	"testing"

	"github.com/cognicore/reviewsense/pkg/reviewsense/insights"
	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
)

func TestLoaderAllEmpty(t *testing.T) {
	loader := Loader{}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}

	if comp.Tokenizer == nil || comp.Scorer == nil || comp.Extractor == nil || comp.Insights == nil {
		t.Fatalf("all components should be set: %+v", comp)
	}
	if _, ok := comp.Scorer.(*sentiment.LexiconScorer); !ok {
		t.Errorf("default scorer = %T, want *sentiment.LexiconScorer", comp.Scorer)
	}
	if _, ok := comp.Insights.(*insights.Static); !ok {
		t.Errorf("default insights = %T, want *insights.Static", comp.Insights)
	}
}

func TestLoaderNonExistentFiles(t *testing.T) {
	tests := map[string]Loader{
		"config":   {ConfigPath: "/nonexistent/config.yaml"},
		"lexicon":  {LexiconPath: "/nonexistent/lexicon.yaml"},
		"stoplist": {StoplistPath: "/nonexistent/stoplist.yaml", InsightsMode: InsightsDerived},
	}

	for name, loader := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := loader.Load(); err == nil {
				t.Errorf("Should error on nonexistent %s", name)
			}
		})
	}
}

func TestLoaderStoplistIgnoredForStaticInsights(t *testing.T) {
	loader := Loader{StoplistPath: "/nonexistent/stoplist.yaml"}

	if _, err := loader.Load(); err != nil {
		t.Errorf("static insights should not read the stoplist: %v", err)
	}
}

func TestLoaderLexiconNormalizesScoring(t *testing.T) {
	dir := t.TempDir()
	lexPath := writeFile(t, dir, "lexicon.yaml", `synonyms:
  - canonical: love
    variants: [loved, loving]
`)

	comp, err := (&Loader{LexiconPath: lexPath}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := comp.Scorer.Score("loved it"); got != 1 {
		t.Errorf("Score('loved it') = %v, want 1 via lexicon", got)
	}
}

func TestLoaderOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "scorer: lexicon\ninsights:\n  mode: static\n")

	comp, err := (&Loader{ConfigPath: cfgPath, Scorer: ScorerVader, InsightsMode: InsightsDerived}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := comp.Scorer.(*sentiment.VaderScorer); !ok {
		t.Errorf("scorer = %T, want *sentiment.VaderScorer", comp.Scorer)
	}
	if _, ok := comp.Insights.(*insights.Derived); !ok {
		t.Errorf("insights = %T, want *insights.Derived", comp.Insights)
	}

	_, err = (&Loader{Scorer: "bogus"}).Load()
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("bad override error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoaderRelativeStaticPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "insights.yaml", "key_points: [Only one]\n")
	cfgPath := writeFile(t, dir, "config.yaml", "insights:\n  static_path: insights.yaml\n")

	comp, err := (&Loader{ConfigPath: cfgPath}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	set, err := comp.Insights.Insights(nil)
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(set.KeyPoints) != 1 || set.KeyPoints[0] != "Only one" {
		t.Errorf("KeyPoints = %q, want override from insights.yaml", set.KeyPoints)
	}
}

func TestLoaderDerivedTaxonomy(t *testing.T) {
	dir := t.TempDir()
	stopPath := writeFile(t, dir, "stoplist.yaml", "terms: [the, was, is]\n")
	cfgPath := writeFile(t, dir, "config.yaml", `insights:
  mode: derived
  word_cloud_size: 2
  features:
    pricing: [price, expensive, cheap]
  competitors:
    Globex: [globex]
`)

	comp, err := (&Loader{ConfigPath: cfgPath, StoplistPath: stopPath}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	set, err := comp.Insights.Insights([]string{"The price was cheap.", "Globex is expensive, price matters."})
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if set.Categories["pricing"] != 2 || len(set.Categories) != 1 {
		t.Errorf("Categories = %v, want only pricing=2", set.Categories)
	}
	if len(set.CompetitorMentions) != 1 || set.CompetitorMentions[0] != "Globex" {
		t.Errorf("CompetitorMentions = %q", set.CompetitorMentions)
	}
	if len(set.WordCloud) != 2 || set.WordCloud[0].Text != "price" {
		t.Errorf("WordCloud = %+v", set.WordCloud)
	}
}

func TestLoaderPhraseOptions(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "phrases:\n  max: 2\n  fallback: [one, two, three]\n")

	comp, err := (&Loader{ConfigPath: cfgPath}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := comp.Extractor.Extract("")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0] != "one" || !got.Fallback() {
		t.Errorf("Extract('') = %+v", got)
	}
}
