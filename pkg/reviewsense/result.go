package reviewsense

import (
	"github.com/cognicore/reviewsense/pkg/reviewsense/insights"
	"github.com/cognicore/reviewsense/pkg/reviewsense/phrases"
	"github.com/cognicore/reviewsense/pkg/reviewsense/sentiment"
)

// Result is the structured summary of a block of reviews.
type Result struct {
	Sentiment sentiment.Label `json:"sentiment"`
	// Score is a 1–5 rating derived from Polarity.
	Score    float64 `json:"score"`
	Polarity float64 `json:"polarity"`

	KeyPoints     []string       `json:"keyPoints"`
	CommonPhrases []string       `json:"commonPhrases"`
	PhraseSource  phrases.Source `json:"phraseSource"`
	ReviewCount   int            `json:"reviewCount"`

	Categories         map[string]int               `json:"categories"`
	WordCloud          []insights.WordCloudEntry    `json:"wordCloud"`
	CompetitorMentions []string                     `json:"competitorMentions"`
	Recommendations    []string                     `json:"recommendations"`
	Trends             []insights.Trend             `json:"trends"`
	ProductFeatures    []insights.ProductFeature    `json:"productFeatures"`
	CustomerSegments   []insights.CustomerSegment   `json:"customerSegments"`
	ActionableInsights []insights.ActionableInsight `json:"actionableInsights"`
}
