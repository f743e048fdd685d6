package config

import (
	"fmt"
	"path/filepath"

	"github.com/cognicore/reviewsense/pkg/reviewsense/ingest"
	"github.com/cognicore/reviewsense/pkg/reviewsense/insights"
	"github.com/cognicore/reviewsense/pkg/reviewsense/lexicon"
	"github.com/cognicore/reviewsense/pkg/reviewsense/phrases"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
	"github.com/cognicore/reviewsense/pkg/reviewsense/stoplist"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	ConfigPath   string
	LexiconPath  string
	StoplistPath string

	// Overrides applied after the config file; empty means "use the file".
	Scorer       string
	InsightsMode string
}

// Components holds all loaded configuration components
type Components struct {
	Sentiment sentiment.Config
	Tokenizer *ingest.Tokenizer
	Scorer    sentiment.Scorer
	Extractor *phrases.Extractor
	Insights  insights.Provider
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	file := &File{}
	if l.ConfigPath != "" {
		f, err := LoadFile(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		file = f
	}
	if l.Scorer != "" {
		file.Scorer = l.Scorer
	}
	if l.InsightsMode != "" {
		file.Insights.Mode = l.InsightsMode
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	comp := &Components{
		Sentiment: file.SentimentConfig(),
		Tokenizer: ingest.NewTokenizer(nil),
	}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Tokenizer.SetLexicon(lex)
	}

	switch file.Scorer {
	case ScorerVader:
		comp.Scorer = sentiment.NewVaderScorer()
	default:
		comp.Scorer = sentiment.NewLexiconScorer(comp.Sentiment, comp.Tokenizer)
	}

	var extractOpts []phrases.Option
	if file.Phrases.Max > 0 {
		extractOpts = append(extractOpts, phrases.WithMax(file.Phrases.Max))
	}
	if len(file.Phrases.Fallback) > 0 {
		extractOpts = append(extractOpts, phrases.WithFallback(file.Phrases.Fallback))
	}
	comp.Extractor = phrases.NewExtractor(phrases.NewProseTagger(), extractOpts...)

	base := insights.Provider(insights.NewStatic())
	if file.Insights.StaticPath != "" {
		path := file.Insights.StaticPath
		if !filepath.IsAbs(path) && l.ConfigPath != "" {
			path = filepath.Join(filepath.Dir(l.ConfigPath), path)
		}
		static, err := insights.LoadStatic(path)
		if err != nil {
			return nil, fmt.Errorf("load insights: %w", err)
		}
		base = static
	}
	comp.Insights = base

	if file.Insights.Mode == InsightsDerived {
		stops := stoplist.Default()
		if l.StoplistPath != "" {
			s, err := stoplist.LoadFromYAML(l.StoplistPath)
			if err != nil {
				return nil, fmt.Errorf("load stoplist: %w", err)
			}
			stops = s
		}

		derived := insights.NewDerived()
		derived.Base = base
		derived.Stoplist = stops
		derived.Scorer = comp.Scorer
		derived.WordCloudSize = file.Insights.WordCloudSize
		if len(file.Insights.Features) > 0 || len(file.Insights.Competitors) > 0 {
			derived.Taxonomy = buildTaxonomy(file.Insights)
		}
		comp.Insights = derived
	}

	return comp, nil
}

// buildTaxonomy uses configured features, or the default features when only
// competitors are configured.
func buildTaxonomy(cfg Insights) *ingest.Taxonomy {
	tax := ingest.DefaultTaxonomy()
	if len(cfg.Features) > 0 {
		tax = ingest.NewTaxonomy()
		for name, keywords := range cfg.Features {
			tax.AddFeature(name, keywords)
		}
	}
	for name, aliases := range cfg.Competitors {
		tax.AddCompetitor(name, aliases)
	}
	return tax
}
