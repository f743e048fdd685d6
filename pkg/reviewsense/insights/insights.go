// Package insights supplies the auxiliary analytics attached to every
// analysis result: key points, categories, word cloud, trends and the rest.
//
// Static reproduces a fixed set of placeholder content. Derived computes the
// word cloud, categories, product features and competitor mentions from the
// review text and takes the remaining fields from a static base.
package insights

// Priority ranks an actionable insight.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// WordCloudEntry is a word and its weight.
type WordCloudEntry struct {
	Text  string `json:"text" yaml:"text"`
	Value int    `json:"value" yaml:"value"`
}

// Trend is a tracked metric and its recent change.
type Trend struct {
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Change float64 `json:"change" yaml:"change"`
}

// ProductFeature is the sentiment and mention count of one feature.
type ProductFeature struct {
	Feature   string  `json:"feature" yaml:"feature"`
	Sentiment float64 `json:"sentiment" yaml:"sentiment"`
	Mentions  int     `json:"mentions" yaml:"mentions"`
}

// CustomerSegment describes a share of reviewers and what they talk about.
type CustomerSegment struct {
	Segment    string   `json:"segment" yaml:"segment"`
	Percentage float64  `json:"percentage" yaml:"percentage"`
	KeyTerms   []string `json:"keyTerms" yaml:"key_terms"`
}

// ActionableInsight is a prioritized recommendation.
type ActionableInsight struct {
	Category string   `json:"category" yaml:"category"`
	Insight  string   `json:"insight" yaml:"insight"`
	Priority Priority `json:"priority" yaml:"priority"`
	Impact   string   `json:"impact" yaml:"impact"`
}

// Set is every auxiliary field of an analysis result.
type Set struct {
	KeyPoints          []string            `yaml:"key_points"`
	Categories         map[string]int      `yaml:"categories"`
	WordCloud          []WordCloudEntry    `yaml:"word_cloud"`
	CompetitorMentions []string            `yaml:"competitor_mentions"`
	Recommendations    []string            `yaml:"recommendations"`
	Trends             []Trend             `yaml:"trends"`
	ProductFeatures    []ProductFeature    `yaml:"product_features"`
	CustomerSegments   []CustomerSegment   `yaml:"customer_segments"`
	ActionableInsights []ActionableInsight `yaml:"actionable_insights"`
}

// Provider produces the insight set for the review units of one analysis.
// Implementations must return a Set that shares no memory with earlier calls.
type Provider interface {
	Insights(units []string) (Set, error)
}

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	out := Set{
		KeyPoints:          cloneStrings(s.KeyPoints),
		CompetitorMentions: cloneStrings(s.CompetitorMentions),
		Recommendations:    cloneStrings(s.Recommendations),
		WordCloud:          append([]WordCloudEntry(nil), s.WordCloud...),
		Trends:             append([]Trend(nil), s.Trends...),
		ProductFeatures:    append([]ProductFeature(nil), s.ProductFeatures...),
		ActionableInsights: append([]ActionableInsight(nil), s.ActionableInsights...),
	}
	if s.Categories != nil {
		out.Categories = make(map[string]int, len(s.Categories))
		for k, v := range s.Categories {
			out.Categories[k] = v
		}
	}
	if s.CustomerSegments != nil {
		out.CustomerSegments = make([]CustomerSegment, len(s.CustomerSegments))
		for i, seg := range s.CustomerSegments {
			seg.KeyTerms = cloneStrings(seg.KeyTerms)
			out.CustomerSegments[i] = seg
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
