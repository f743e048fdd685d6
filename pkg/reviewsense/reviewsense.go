package reviewsense

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/reviewsense/pkg/reviewsense/ingest"
	"github.com/cognicore/reviewsense/pkg/reviewsense/insights"
	"github.com/cognicore/reviewsense/pkg/reviewsense/phrases"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
)

// Analyzer turns a block of customer reviews into a Result.
// It holds only read-only configuration and is safe for concurrent use.
type Analyzer struct {
	cfg       sentiment.Config
	scorer    sentiment.Scorer
	extractor *phrases.Extractor
	insights  insights.Provider
	logger    *slog.Logger
	workers   int
}

// Options configures an Analyzer. Zero fields take defaults.
type Options struct {
	// Sentiment holds the lexicon and thresholds. Nil means
	// sentiment.DefaultConfig.
	Sentiment *sentiment.Config
	// Scorer overrides the lexicon scorer built from Sentiment.
	Scorer    sentiment.Scorer
	Extractor *phrases.Extractor
	Insights  insights.Provider
	Logger    *slog.Logger
	// Workers bounds AnalyzeBatch concurrency. Defaults to GOMAXPROCS.
	Workers int
}

// New creates an Analyzer with the given dependencies
func New(opts Options) *Analyzer {
	cfg := sentiment.DefaultConfig()
	if opts.Sentiment != nil {
		cfg = *opts.Sentiment
	}

	a := &Analyzer{
		cfg:       cfg,
		scorer:    opts.Scorer,
		extractor: opts.Extractor,
		insights:  opts.Insights,
		logger:    opts.Logger,
		workers:   opts.Workers,
	}
	if a.scorer == nil {
		a.scorer = sentiment.NewLexiconScorer(cfg, nil)
	}
	if a.extractor == nil {
		a.extractor = phrases.NewExtractor(nil)
	}
	if a.insights == nil {
		a.insights = insights.NewStatic()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.workers <= 0 {
		a.workers = runtime.GOMAXPROCS(0)
	}
	return a
}

var defaultAnalyzer = New(Options{})

// Analyze runs the default analyzer over text.
func Analyze(text string) (Result, error) {
	return defaultAnalyzer.Analyze(text)
}

// Analyze splits text into reviews, scores the sentiment of the whole text,
// extracts key phrases and attaches insights.
//
// Any text is valid input. The only error is *AnalysisError, returned when an
// internal step fails or panics.
func (a *Analyzer) Analyze(text string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, a.fail(fmt.Errorf("panic: %v", r), len(text))
		}
	}()

	units := ingest.SplitReviews(text)
	polarity := sentiment.Evaluate(a.scorer, a.cfg, text)

	extracted, err := a.extractor.Extract(text)
	if err != nil {
		return Result{}, a.fail(fmt.Errorf("extract phrases: %w", err), len(text))
	}

	set, err := a.insights.Insights(units)
	if err != nil {
		return Result{}, a.fail(fmt.Errorf("build insights: %w", err), len(text))
	}

	return assemble(units, polarity, extracted, set), nil
}

// AnalyzeBatch analyzes each text independently, at most Workers at a time.
// Results are in input order. The first failure cancels the rest.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		i, text := i, text // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := a.Analyze(text)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *Analyzer) fail(cause error, inputLen int) error {
	a.logger.Error("review analysis failed", "error", cause, "input_bytes", inputLen)
	return &AnalysisError{cause: cause}
}

func assemble(units []string, polarity sentiment.Result, extracted phrases.Phrases, set insights.Set) Result {
	return Result{
		Sentiment:          polarity.Label,
		Score:              polarity.Rating,
		Polarity:           polarity.Score,
		KeyPoints:          set.KeyPoints,
		CommonPhrases:      extracted.Items,
		PhraseSource:       extracted.Source,
		ReviewCount:        max(1, len(units)),
		Categories:         set.Categories,
		WordCloud:          set.WordCloud,
		CompetitorMentions: set.CompetitorMentions,
		Recommendations:    set.Recommendations,
		Trends:             set.Trends,
		ProductFeatures:    set.ProductFeatures,
		CustomerSegments:   set.CustomerSegments,
		ActionableInsights: set.ActionableInsights,
	}
}
