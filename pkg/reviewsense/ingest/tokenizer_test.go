package ingest

import (
	"strings"
	"testing"

	"github.com/cognicore/reviewsense/pkg/reviewsense/lexicon"
)

func TestTokenizerBasic(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	tokens := tokenizer.Tokenize("This product is GREAT and excellent!")

	want := []string{"this", "product", "is", "great", "and", "excellent"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerNonWordRuns(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	text := "...great!!! -- bad?? snake_case, user-friendly 4/5"
	tokens := tokenizer.Tokenize(text)

	want := []string{"great", "bad", "snake_case", "user", "friendly", "4", "5"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize(%q) = %v, want %v", text, tokens, want)
	}
}

func TestTokenizerNonASCIIIsSeparator(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	tokens := tokenizer.Tokenize("café 👍great👍")

	want := []string{"caf", "great"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	for _, in := range []string{"", "   \t\n\r   ", "!!!???", "🙂🙂🙂"} {
		if tokens := tokenizer.Tokenize(in); len(tokens) != 0 {
			t.Errorf("Tokenize(%q) = %v, want no tokens", in, tokens)
		}
	}
}

func TestTokenizerVeryLongWord(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	longWord := strings.Repeat("verylongword", 20)
	tokens := tokenizer.Tokenize("normal " + longWord + " text")

	if len(tokens) != 3 {
		t.Errorf("Expected 3 tokens, got %d", len(tokens))
	}
}

func TestTokenizerStopwords(t *testing.T) {
	tokenizer := NewTokenizer([]string{"THE", "a"})

	tokens := tokenizer.Tokenize("The cat and a dog")
	want := []string{"cat", "and", "dog"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerMinLength(t *testing.T) {
	tokenizer := NewTokenizer(nil)
	tokenizer.SetMinLength(2)

	tokens := tokenizer.Tokenize("a b ok fine")
	want := []string{"ok", "fine"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerLexiconNormalization(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	lex := lexicon.New()
	lex.AddSynonymGroup("love", []string{"loved", "loving"})
	tokenizer.SetLexicon(lex)

	tokens := tokenizer.Tokenize("Loved it, loving it")
	want := []string{"love", "it", "love", "it"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerLexiconBeforeStopwords(t *testing.T) {
	tokenizer := NewTokenizer([]string{"product"})

	lex := lexicon.New()
	lex.AddSynonymGroup("product", []string{"products"})
	tokenizer.SetLexicon(lex)

	tokens := tokenizer.Tokenize("products rock")
	if !equalTokens(tokens, []string{"rock"}) {
		t.Errorf("normalized stopword should be filtered, got %v", tokens)
	}
}

// Helper function for comparing token lists
func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
