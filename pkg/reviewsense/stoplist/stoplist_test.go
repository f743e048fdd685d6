package stoplist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerBasic(t *testing.T) {
	mgr := NewManager([]string{"the", "a", "and"})

	if !mgr.IsStop("the") {
		t.Error("'the' should be a stopword")
	}
	if !mgr.IsStop("THE") {
		t.Error("lookups should ignore case")
	}
	if mgr.IsStop("hello") {
		t.Error("'hello' should not be a stopword")
	}
}

func TestManagerSkipsBlankTerms(t *testing.T) {
	mgr := NewManager([]string{" The ", "", "  "})

	if !mgr.IsStop("the") {
		t.Error("terms should be trimmed and lowercased")
	}
	if mgr.IsStop("") {
		t.Error("blank terms should be skipped")
	}
	if len(mgr.stops) != 1 {
		t.Errorf("got %d stopwords, want 1", len(mgr.stops))
	}
}

func TestDefault(t *testing.T) {
	mgr := Default()
	if len(mgr.stops) != len(defaultEnglish) {
		t.Errorf("got %d stopwords, want %d", len(mgr.stops), len(defaultEnglish))
	}
	if !mgr.IsStop("the") || mgr.IsStop("service") {
		t.Error("default list should contain function words only")
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stoplist.yaml")
	if err := os.WriteFile(path, []byte("terms:\n  - product\n  - App\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	mgr, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if !mgr.IsStop("app") || !mgr.IsStop("product") {
		t.Error("loaded stoplist missing terms")
	}

	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
