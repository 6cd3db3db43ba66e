package parser

import (
	"testing"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse_SimpleInline(t *testing.T) {
	src := "Greeting:\n" + `  "hello" <Name>` + "\n"
	defs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []ast.NonterminalDef{
		ast.Inline{
			Name:       "Greeting",
			ParamNames: ast.ParamSet(),
			Body: ast.BNForm{Elements: []ast.Element{
				ast.TerminalString{Text: "hello"},
				ast.NonterminalRef{Name: "Name"},
			}},
			Line: 1,
		},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MultipleTopLevelDefsAllSurviveDedent(t *testing.T) {
	// Regression: the block assembler must finalize each top-level Inline
	// definition into the real accumulator, not just the file's last one.
	src := "A:\n" +
		`  "a"` + "\n" +
		"B:\n" +
		`  "b"` + "\n" +
		"C:\n" +
		`  "c"` + "\n"

	defs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 top-level definitions, got %d", len(defs))
	}
	names := []string{defs[0].DefName(), defs[1].DefName(), defs[2].DefName()}
	want := []string{"A", "B", "C"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("definition names mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FromBlockAlwaysWrapsInAlternation(t *testing.T) {
	src := "Noun:\n" +
		"  from:\n" +
		`    "cat"` + "\n"

	defs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	inline := defs[0].(ast.Inline)
	if _, ok := inline.Body.(ast.Alternation); !ok {
		t.Errorf("expected a from: block to always produce an Alternation, got %T", inline.Body)
	}
}

func TestParse_WithChangesAttachViaModified(t *testing.T) {
	src := "Sentence:\n" +
		"  <Noun>\n" +
		"  with:\n" +
		`    "male" => Noun.gender` + "\n"

	defs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	inline := defs[0].(ast.Inline)
	mod, ok := inline.Body.(ast.Modified)
	if !ok {
		t.Fatalf("expected Modified, got %T", inline.Body)
	}
	if len(mod.WithChanges) != 1 || mod.WithChanges[0].TargetNtName != "Noun" {
		t.Errorf("unexpected changes: %+v", mod.WithChanges)
	}
}

func TestParse_CommentsAndBlankLinesDontAffectAST(t *testing.T) {
	withExtras := "// a greeting\n" +
		"Greeting:\n" +
		"\n" +
		`  "hi" // trailing comment` + "\n"
	stripped := "Greeting:\n" + `  "hi"` + "\n"

	defs1, err := Parse(withExtras)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	defs2, err := Parse(stripped)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// Line records the header's real source line (2 vs 1 here), which is
	// diagnostic metadata rather than AST shape, so it is left out.
	if diff := cmp.Diff(defs2, defs1, cmpopts.IgnoreFields(ast.Inline{}, "Line")); diff != "" {
		t.Errorf("comments/blank lines changed the parsed AST (-want +got):\n%s", diff)
	}
}

func TestParse_InsufficientReindentIsParserError(t *testing.T) {
	src := "A:\n" +
		" A:\n" +
		"  B:\n"
	if _, err := Parse(src); err == nil {
		t.Fatal("expected a ParserError for insufficient re-indentation")
	}
}

func TestParse_FileNtWithParams(t *testing.T) {
	src := `Noun(gender) -> "nouns.json"` + "\n"
	defs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ext, ok := defs[0].(ast.External)
	if !ok {
		t.Fatalf("expected External, got %T", defs[0])
	}
	if ext.Filename != "nouns.json" || !ast.SameParamSet(ext.ParamNames, ast.ParamSet("gender")) {
		t.Errorf("unexpected External def: %+v", ext)
	}
}

func TestParse_ConditionLine(t *testing.T) {
	src := "Sentence:\n" +
		"  <Noun>\n" +
		"  if gender = \"male\"\n"
	defs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	inline := defs[0].(ast.Inline)
	guarded, ok := inline.Body.(ast.Guarded)
	if !ok {
		t.Fatalf("expected Guarded, got %T", inline.Body)
	}
	cond, ok := guarded.Condition.(ast.CondEq)
	if !ok {
		t.Fatalf("expected CondEq, got %T", guarded.Condition)
	}
	if cond.Left.(ast.ExprIdent).Name != "gender" {
		t.Errorf("unexpected condition left side: %+v", cond.Left)
	}
}
