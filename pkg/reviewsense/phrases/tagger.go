package phrases

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
)

// Tagger finds key-phrase candidates in text: every maximal run of one
// adjective followed by one or more nouns, in text order.
type Tagger interface {
	AdjectiveNounPhrases(text string) ([]string, error)
}

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// ProseTagger tags text with prose's averaged perceptron model. The model is
// loaded once and shared read-only, so a ProseTagger is safe for concurrent use.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger loads prose's default tagging model.
func NewProseTagger() *ProseTagger {
	doc, err := prose.NewDocument("",
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		// Tag falls back to prose's per-document model
		return &ProseTagger{}
	}
	return &ProseTagger{model: doc.Model}
}

// AdjectiveNounPhrases tags text and matches the adjective+noun pattern.
func (p *ProseTagger) AdjectiveNounPhrases(text string) ([]string, error) {
	tokens, err := p.Tag(text)
	if err != nil {
		return nil, err
	}
	return MatchAdjectiveNouns(tokens), nil
}

// Tag returns the tagged tokens of text. Sentence-initial capitals are
// lowered first so "Great product" tags as JJ NN rather than NNP NN; token
// text is returned as tagged.
func (p *ProseTagger) Tag(text string) ([]Token, error) {
	opts := []prose.DocOpt{
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	}
	if p.model != nil {
		opts = append(opts, prose.UsingModel(p.model))
	}
	doc, err := prose.NewDocument(lowerSentenceStarts(text), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrTagger, err)
	}

	ptoks := doc.Tokens()
	tokens := make([]Token, len(ptoks))
	for i, tok := range ptoks {
		tokens[i] = Token{Text: tok.Text, Tag: tok.Tag}
	}
	return tokens, nil
}

// lowerSentenceStarts lowercases the leading capital of each capitalized word
// that opens a sentence or line. All-caps words like "I" or "USB" are kept.
func lowerSentenceStarts(text string) string {
	b := []byte(text)
	start := true
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == '.' || c == '!' || c == '?' || c == '\n':
			start = true
		case c == ' ' || c == '\t' || c == '\r' || c == '"' || c == '\'' || c == '(':
		case start && c >= 'A' && c <= 'Z' && i+1 < len(b) && b[i+1] >= 'a' && b[i+1] <= 'z':
			b[i] = c + ('a' - 'A')
			start = false
		default:
			start = false
		}
	}
	return string(b)
}

// MatchAdjectiveNouns returns the text of every adjective immediately followed
// by a run of nouns, taking the whole run. "big red car" yields "red car".
func MatchAdjectiveNouns(tokens []Token) []string {
	var matches []string
	for i := 0; i < len(tokens); i++ {
		if !isAdjective(tokens[i].Tag) {
			continue
		}
		j := i + 1
		for j < len(tokens) && isNoun(tokens[j].Tag) {
			j++
		}
		if j == i+1 {
			continue
		}
		words := make([]string, 0, j-i)
		for _, tok := range tokens[i:j] {
			words = append(words, tok.Text)
		}
		matches = append(matches, strings.Join(words, " "))
		i = j - 1
	}
	return matches
}

// isAdjective covers JJ, JJR and JJS.
func isAdjective(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

// isNoun covers NN, NNS, NNP and NNPS.
func isNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}
