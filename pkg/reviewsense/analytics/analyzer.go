package analytics

import (
	"sort"
)

// Analyzer aggregates per-review token and feature counts.
// It is not safe for concurrent use; create one per analysis.
type Analyzer struct {
	totalDocs   int64
	tokenTF     map[string]int64
	tokenDF     map[string]int64
	featureDocs map[string]int64
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		tokenTF:     make(map[string]int64),
		tokenDF:     make(map[string]int64),
		featureDocs: make(map[string]int64),
	}
}

// Process consumes one review's tokens and the features it mentions.
func (a *Analyzer) Process(tokens []string, features []string) {
	a.totalDocs++

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		a.tokenTF[tok]++
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		a.tokenDF[tok]++
	}

	seenFeatures := make(map[string]struct{}, len(features))
	for _, f := range features {
		if f == "" {
			continue
		}
		if _, ok := seenFeatures[f]; ok {
			continue
		}
		seenFeatures[f] = struct{}{}
		a.featureDocs[f]++
	}
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalDocs   int64
	TokenTF     map[string]int64 // total occurrences
	TokenDF     map[string]int64 // reviews containing the token
	FeatureDocs map[string]int64 // reviews mentioning the feature
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Analyzer) Snapshot() Stats {
	return Stats{
		TotalDocs:   a.totalDocs,
		TokenTF:     copyCounts(a.tokenTF),
		TokenDF:     copyCounts(a.tokenDF),
		FeatureDocs: copyCounts(a.featureDocs),
	}
}

// TermCount is a token with its frequency.
type TermCount struct {
	Token string
	TF    int64
	DF    int64
}

// TopTerms returns up to limit tokens ordered by total frequency, then
// document frequency, then alphabetically.
func (s Stats) TopTerms(limit int) []TermCount {
	out := make([]TermCount, 0, len(s.TokenTF))
	for tok, tf := range s.TokenTF {
		out = append(out, TermCount{Token: tok, TF: tf, DF: s.TokenDF[tok]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TF != out[j].TF {
			return out[i].TF > out[j].TF
		}
		if out[i].DF != out[j].DF {
			return out[i].DF > out[j].DF
		}
		return out[i].Token < out[j].Token
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func copyCounts(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
