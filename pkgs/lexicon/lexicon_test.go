package lexicon

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/aledsdavies/ggra/pkgs/ast"
)

func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "nouns.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidDocument(t *testing.T) {
	path := writeLexicon(t, `{
		"order": ["gender", "number"],
		"content": {
			"male": {"singular": "cat", "plural": ["cats", "toms"]},
			"female": {"singular": "hen", "plural": ["hens"]}
		}
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Order) != 2 || doc.Order[0] != "gender" {
		t.Errorf("unexpected order: %v", doc.Order)
	}
}

func TestLoad_RejectsMissingOrderField(t *testing.T) {
	path := writeLexicon(t, `{"content": {}}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected a schema validation error, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestResolve_ExactParamWalk(t *testing.T) {
	doc := &ast.LexiconDoc{
		Order: []string{"gender", "number"},
		Content: map[string]any{
			"male": map[string]any{"singular": "cat", "plural": []any{"cats", "toms"}},
		},
	}
	got, err := Resolve(doc, map[string]string{"gender": "male", "number": "singular"}, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 || got[0] != "cat" {
		t.Errorf("Resolve() = %v, want [cat]", got)
	}
}

func TestResolve_ArrayEntryPassesThrough(t *testing.T) {
	doc := &ast.LexiconDoc{
		Order: []string{"gender", "number"},
		Content: map[string]any{
			"male": map[string]any{"plural": []any{"cats", "toms"}},
		},
	}
	got, err := Resolve(doc, map[string]string{"gender": "male", "number": "plural"}, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 2 || got[0] != "cats" || got[1] != "toms" {
		t.Errorf("Resolve() = %v, want [cats toms]", got)
	}
}

func TestResolve_EllipsisPicksRandomKey(t *testing.T) {
	doc := &ast.LexiconDoc{
		Order: []string{"..."},
		Content: map[string]any{
			"only": "solo",
		},
	}
	got, err := Resolve(doc, map[string]string{}, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 || got[0] != "solo" {
		t.Errorf("Resolve() = %v, want [solo]", got)
	}
}

func TestResolve_EllipsisIsDeterministicForAGivenSeed(t *testing.T) {
	// A multi-key map: the "..." pick must depend only on the RNG seed,
	// never on Go's randomized map iteration order.
	doc := &ast.LexiconDoc{
		Order: []string{"..."},
		Content: map[string]any{
			"alpha":   "a",
			"bravo":   "b",
			"charlie": "c",
			"delta":   "d",
			"echo":    "e",
		},
	}
	first, err := Resolve(doc, map[string]string{}, rand.New(rand.NewPCG(7, 9)))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := Resolve(doc, map[string]string{}, rand.New(rand.NewPCG(7, 9)))
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got[0] != first[0] {
			t.Fatalf("Resolve() with the same seed picked %q then %q", first[0], got[0])
		}
	}
}

func TestResolve_MissingEntryIsResolutionError(t *testing.T) {
	doc := &ast.LexiconDoc{
		Order:   []string{"gender"},
		Content: map[string]any{"male": "cat"},
	}
	_, err := Resolve(doc, map[string]string{"gender": "neuter"}, rand.New(rand.NewPCG(1, 2)))
	if err == nil {
		t.Fatal("expected a ResolutionError for a missing entry")
	}
}
