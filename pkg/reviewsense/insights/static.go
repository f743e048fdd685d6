package insights

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
)

// Static returns the same insight set for every input.
type Static struct {
	set Set
}

// NewStatic returns a provider serving DefaultSet.
func NewStatic() *Static {
	return &Static{set: DefaultSet()}
}

// NewStaticFromSet returns a provider serving a copy of set.
func NewStaticFromSet(set Set) *Static {
	return &Static{set: set.Clone()}
}

// Insights ignores units and returns a fresh copy of the configured set.
func (s *Static) Insights([]string) (Set, error) {
	return s.set.Clone(), nil
}

// LoadStatic reads a YAML insight set. Fields missing from the file keep
// their DefaultSet values.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override Set
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse insights %s: %w", path, err)
	}
	set := overlay(DefaultSet(), override)
	for _, ai := range set.ActionableInsights {
		switch ai.Priority {
		case PriorityLow, PriorityMedium, PriorityHigh:
		default:
			return nil, fmt.Errorf("%w: insight %q has priority %q", internalerr.ErrInvalidConfig, ai.Insight, ai.Priority)
		}
	}
	return NewStaticFromSet(set), nil
}

// overlay replaces every field of base that is set in top.
func overlay(base, top Set) Set {
	if top.KeyPoints != nil {
		base.KeyPoints = top.KeyPoints
	}
	if top.Categories != nil {
		base.Categories = top.Categories
	}
	if top.WordCloud != nil {
		base.WordCloud = top.WordCloud
	}
	if top.CompetitorMentions != nil {
		base.CompetitorMentions = top.CompetitorMentions
	}
	if top.Recommendations != nil {
		base.Recommendations = top.Recommendations
	}
	if top.Trends != nil {
		base.Trends = top.Trends
	}
	if top.ProductFeatures != nil {
		base.ProductFeatures = top.ProductFeatures
	}
	if top.CustomerSegments != nil {
		base.CustomerSegments = top.CustomerSegments
	}
	if top.ActionableInsights != nil {
		base.ActionableInsights = top.ActionableInsights
	}
	return base
}

// DefaultSet is the placeholder content served when nothing is derived
// from the input.
func DefaultSet() Set {
	return Set{
		KeyPoints: []string{
			"Performance consistently praised across reviews",
			"Strong positive feedback on customer support",
			"Feature requests focused on integration capabilities",
			"Price point considerations for different segments",
		},
		Categories: map[string]int{
			"performance": 24,
			"usability":   18,
			"reliability": 15,
			"support":     12,
		},
		WordCloud: []WordCloudEntry{
			{Text: "excellent", Value: 30},
			{Text: "service", Value: 28},
			{Text: "quality", Value: 25},
			{Text: "support", Value: 23},
			{Text: "features", Value: 20},
		},
		CompetitorMentions: []string{"competitor A", "competitor B"},
		Recommendations: []string{
			"Enhance API documentation for technical users",
			"Develop targeted features for enterprise segment",
			"Optimize onboarding for non-technical users",
			"Review pricing strategy for small business segment",
		},
		Trends: []Trend{
			{Label: "Customer Satisfaction", Value: 92, Change: 5.2},
			{Label: "Response Rate", Value: 88, Change: 3.8},
			{Label: "Feature Adoption", Value: 78, Change: 12.4},
		},
		ProductFeatures: []ProductFeature{
			{Feature: "Performance", Sentiment: 0.8, Mentions: 24},
			{Feature: "Usability", Sentiment: 0.6, Mentions: 18},
			{Feature: "Reliability", Sentiment: 0.9, Mentions: 15},
			{Feature: "Support", Sentiment: 0.7, Mentions: 12},
		},
		CustomerSegments: []CustomerSegment{
			{Segment: "Enterprise", Percentage: 45, KeyTerms: []string{"scalability", "security", "integration"}},
			{Segment: "Small Business", Percentage: 30, KeyTerms: []string{"pricing", "ease of use", "support"}},
			{Segment: "Technical Users", Percentage: 15, KeyTerms: []string{"api", "documentation", "customization"}},
			{Segment: "Non-Technical Users", Percentage: 10, KeyTerms: []string{"interface", "simplicity", "onboarding"}},
		},
		ActionableInsights: []ActionableInsight{
			{
				Category: "Performance",
				Insight:  "System response time shows consistent positive feedback",
				Priority: PriorityLow,
				Impact:   "User satisfaction and retention",
			},
			{
				Category: "Support",
				Insight:  "Technical documentation needs improvement based on user feedback",
				Priority: PriorityHigh,
				Impact:   "User onboarding and satisfaction",
			},
			{
				Category: "Features",
				Insight:  "Integration capabilities highly requested by enterprise users",
				Priority: PriorityMedium,
				Impact:   "Enterprise market growth",
			},
			{
				Category: "Pricing",
				Insight:  "Price point concerns from small business segment",
				Priority: PriorityHigh,
				Impact:   "Market penetration in SMB sector",
			},
		},
	}
}
