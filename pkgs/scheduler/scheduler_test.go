package scheduler

import (
	"testing"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/google/go-cmp/cmp"
)

// ntSource treats any SrcNonterminal as Nt-sourced and everything else as
// constant, the shape every call site in the resolver uses once a
// SrcChoice has already been collapsed to a concrete Source.
func ntSource(ch ast.Change) (string, bool) {
	nt, ok := ch.Source.(ast.SrcNonterminal)
	if !ok {
		return "", false
	}
	return nt.NtName, true
}

func TestOrderChanges_ConstantsBeforeNtSourced(t *testing.T) {
	changes := []ast.Change{
		{Source: ast.SrcNonterminal{NtName: "B", NtParam: "gender"}, TargetNtName: "A", TargetNtParam: "gender"},
		{Source: ast.SrcString{Text: "x"}, TargetNtName: "C", TargetNtParam: "case"},
	}
	got := OrderChanges(changes, ntSource)
	want := []ast.Change{
		{Source: ast.SrcString{Text: "x"}, TargetNtName: "C", TargetNtParam: "case"},
		{Source: ast.SrcNonterminal{NtName: "B", NtParam: "gender"}, TargetNtName: "A", TargetNtParam: "gender"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OrderChanges() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderChanges_NtSourcedOrderedTopologically(t *testing.T) {
	// B's own gender must be assigned (from A.gender) before B.number
	// feeds C: A -> B -> C.
	changes := []ast.Change{
		{Source: ast.SrcNonterminal{NtName: "B", NtParam: "number"}, TargetNtName: "C", TargetNtParam: "number"},
		{Source: ast.SrcNonterminal{NtName: "A", NtParam: "gender"}, TargetNtName: "B", TargetNtParam: "gender"},
	}
	got := OrderChanges(changes, ntSource)
	if len(got) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(got))
	}
	first := got[0].Source.(ast.SrcNonterminal)
	second := got[1].Source.(ast.SrcNonterminal)
	if first.NtName != "A" || second.NtName != "B" {
		t.Errorf("expected A before B in topological order, got %v then %v", first.NtName, second.NtName)
	}
}

func TestGraph_TopologicalOrder_DeterministicAcrossRepeatedRuns(t *testing.T) {
	// Several disjoint components with no edges between them: their
	// relative order in the result must come from insertion order, not
	// from Go's randomized map iteration, so repeated construction with
	// the same edges must always produce the same result.
	build := func() []string {
		g := newGraph()
		g.addEdge("D", "E")
		g.addVertex("A")
		g.addEdge("B", "C")
		g.addVertex("F")
		return g.topologicalOrder()
	}

	want := build()
	for i := 0; i < 50; i++ {
		got := build()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("topologicalOrder() not deterministic across runs (-want +got):\n%s", diff)
		}
	}
}

func TestGraph_TopologicalOrder_RespectsEdges(t *testing.T) {
	g := newGraph()
	g.addEdge("A", "B")
	g.addEdge("B", "C")

	order := g.topologicalOrder()
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v] = i
	}
	if index["A"] >= index["B"] {
		t.Errorf("expected A before B, got order %v", order)
	}
	if index["B"] >= index["C"] {
		t.Errorf("expected B before C, got order %v", order)
	}
}
