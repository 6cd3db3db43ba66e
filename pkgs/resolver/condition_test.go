package resolver

import (
	"testing"

	"github.com/aledsdavies/ggra/pkgs/ast"
)

func TestEvalCondition_CondEqOverChoice(t *testing.T) {
	r := New(nil, newRng())
	cond := ast.CondEq{
		Left:  ast.ExprIdent{Name: "gender"},
		Right: ast.ExprChoice{Options: []ast.Expression{ast.ExprString{Text: "male"}, ast.ExprString{Text: "female"}}},
	}
	ok, err := r.evalCondition(cond, map[string]string{"gender": "female"})
	if err != nil {
		t.Fatalf("evalCondition() error = %v", err)
	}
	if !ok {
		t.Error("expected CondEq to match a value appearing in the choice")
	}

	ok, err = r.evalCondition(cond, map[string]string{"gender": "neuter"})
	if err != nil {
		t.Fatalf("evalCondition() error = %v", err)
	}
	if ok {
		t.Error("expected CondEq to fail for a value absent from the choice")
	}
}

func TestEvalCondition_CondNeq(t *testing.T) {
	r := New(nil, newRng())
	cond := ast.CondNeq{Left: ast.ExprIdent{Name: "a"}, Right: ast.ExprIdent{Name: "b"}}

	ok, err := r.evalCondition(cond, map[string]string{"a": "x", "b": "y"})
	if err != nil || !ok {
		t.Errorf("evalCondition() = %v, %v; want true, nil", ok, err)
	}

	ok, err = r.evalCondition(cond, map[string]string{"a": "x", "b": "x"})
	if err != nil || ok {
		t.Errorf("evalCondition() = %v, %v; want false, nil", ok, err)
	}
}

func TestEvalCondition_UnknownIdentifierIsHardError(t *testing.T) {
	r := New(nil, newRng())
	cond := ast.CondEq{Left: ast.ExprIdent{Name: "missing"}, Right: ast.ExprString{Text: "x"}}
	if _, err := r.evalCondition(cond, map[string]string{}); err == nil {
		t.Fatal("expected a ResolutionError for an unknown identifier")
	}
}
