package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/google/go-cmp/cmp"
)

func sampleDefs() []ast.NonterminalDef {
	return []ast.NonterminalDef{
		ast.Inline{
			Name:       "Sentence",
			ParamNames: ast.ParamSet(),
			Body: ast.Modified{
				Inner: ast.BNForm{Elements: []ast.Element{
					ast.NonterminalRef{Name: "Noun", Eager: true},
					ast.TerminalString{Text: " barks"},
				}},
				WithChanges: []ast.Change{
					{Source: ast.SrcString{Text: "male"}, TargetNtName: "Noun", TargetNtParam: "gender"},
				},
			},
			Line: 1,
		},
		ast.Inline{
			Name:       "Noun",
			ParamNames: ast.ParamSet("gender"),
			Body: ast.Guarded{
				Inner:     ast.BNForm{Elements: []ast.Element{ast.TerminalString{Text: "dog"}}},
				Condition: ast.CondEq{Left: ast.ExprIdent{Name: "gender"}, Right: ast.ExprChoice{Options: []ast.Expression{ast.ExprString{Text: "male"}, ast.ExprString{Text: "female"}}}},
			},
			Line: 4,
		},
	}
}

func TestSaveLoad_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.cache")
	defs := sampleDefs()
	fp, err := Fingerprint([]byte("some grammar source"), nil)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}

	if err := Save(path, fp, defs); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := Load(path, fp)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() reported a miss for a freshly-saved entry")
	}
	if diff := cmp.Diff(defs, got); diff != "" {
		t.Errorf("round-tripped defs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FingerprintMismatchIsMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.cache")
	fpOld, _ := Fingerprint([]byte("version one"), nil)
	fpNew, _ := Fingerprint([]byte("version two"), nil)

	if err := Save(path, fpOld, sampleDefs()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_, ok, err := Load(path, fpNew)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("expected a cache miss on fingerprint mismatch")
	}
}

func TestLoad_MissingFileIsMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.cache")
	var fp [32]byte
	_, ok, err := Load(path, fp)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("expected a miss for a nonexistent cache file")
	}
}

func TestLoad_UnreadableFileIsMissNotError(t *testing.T) {
	// A non-ENOENT read failure (here: path points at a directory) must
	// still present as a miss, not a hard error — the cache is never a
	// correctness dependency.
	dir := filepath.Join(t.TempDir(), "not-a-file.cache")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	var fp [32]byte
	_, ok, err := Load(dir, fp)
	if err != nil {
		t.Fatalf("Load() error = %v, want a miss with nil error", err)
	}
	if ok {
		t.Error("expected a miss for an unreadable cache path")
	}
}

func TestFingerprint_ChangesWithLexiconFileContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nouns.json")
	writeFile(t, path, `{"order":["a"],"content":{}}`)

	fp1, err := Fingerprint([]byte("grammar"), []string{path})
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}

	writeFile(t, path, `{"order":["b"],"content":{}}`)
	fp2, err := Fingerprint([]byte("grammar"), []string{path})
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}

	if fp1 == fp2 {
		t.Error("expected fingerprint to change when a referenced lexicon file changes")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
