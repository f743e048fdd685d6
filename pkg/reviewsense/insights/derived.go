package insights

import (
	"math"
	"strings"

	"github.com/cognicore/reviewsense/pkg/reviewsense/analytics"
	"github.com/cognicore/reviewsense/pkg/reviewsense/ingest"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
	"github.com/cognicore/reviewsense/pkg/reviewsense/stoplist"
)

// DefaultWordCloudSize is the number of word cloud entries Derived emits.
const DefaultWordCloudSize = 5

// Derived computes insights from the review units themselves.
//
// WordCloud, Categories, ProductFeatures and CompetitorMentions are derived;
// every other field is copied from Base.
type Derived struct {
	Base          Provider
	Taxonomy      *ingest.Taxonomy
	Stoplist      *stoplist.Manager
	Scorer        sentiment.Scorer
	WordCloudSize int
}

// NewDerived returns a Derived provider with the default taxonomy, the
// English stoplist, the default lexicon scorer and a static base.
func NewDerived() *Derived {
	return &Derived{
		Base:          NewStatic(),
		Taxonomy:      ingest.DefaultTaxonomy(),
		Stoplist:      stoplist.Default(),
		Scorer:        sentiment.NewLexiconScorer(sentiment.DefaultConfig(), nil),
		WordCloudSize: DefaultWordCloudSize,
	}
}

// Insights counts tokens and feature mentions per review unit.
func (d *Derived) Insights(units []string) (Set, error) {
	base := d.Base
	if base == nil {
		base = NewStatic()
	}
	set, err := base.Insights(units)
	if err != nil {
		return Set{}, err
	}

	taxonomy := d.Taxonomy
	if taxonomy == nil {
		taxonomy = ingest.DefaultTaxonomy()
	}
	stops := d.Stoplist
	if stops == nil {
		stops = stoplist.Default()
	}
	size := d.WordCloudSize
	if size <= 0 {
		size = DefaultWordCloudSize
	}

	tokenizer := ingest.NewTokenizer(nil)
	tokenizer.SetMinLength(2)
	counter := analytics.NewAnalyzer()

	featureScore := make(map[string]float64)
	for _, unit := range units {
		tokens := withoutStops(tokenizer.Tokenize(unit), stops)
		features := taxonomy.AssignFeatures(tokens)
		counter.Process(tokens, features)
		if d.Scorer != nil {
			score := d.Scorer.Score(unit)
			for _, f := range features {
				featureScore[f] += score
			}
		}
	}
	stats := counter.Snapshot()

	set.WordCloud = make([]WordCloudEntry, 0, size)
	for _, term := range stats.TopTerms(size) {
		set.WordCloud = append(set.WordCloud, WordCloudEntry{Text: term.Token, Value: int(term.TF)})
	}

	set.Categories = make(map[string]int)
	set.ProductFeatures = make([]ProductFeature, 0, len(stats.FeatureDocs))
	for _, feature := range taxonomy.Features() {
		mentions := stats.FeatureDocs[feature]
		set.Categories[feature] = int(mentions)
		if mentions == 0 {
			continue
		}
		set.ProductFeatures = append(set.ProductFeatures, ProductFeature{
			Feature:   titleCase(feature),
			Sentiment: round2(featureScore[feature] / float64(mentions)),
			Mentions:  int(mentions),
		})
	}

	set.CompetitorMentions = taxonomy.MentionedCompetitors(strings.Join(units, "\n"))
	if set.CompetitorMentions == nil {
		set.CompetitorMentions = []string{}
	}

	return set, nil
}

func withoutStops(tokens []string, stops *stoplist.Manager) []string {
	kept := tokens[:0]
	for _, tok := range tokens {
		if !stops.IsStop(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
