package scheduler

import "github.com/aledsdavies/ggra/pkgs/ast"

// OrderChanges implements spec §4.4: split a production's aggregated
// changes into constant changes (source is a literal, an enclosing
// parameter, or a SrcChoice already resolved to one of those) and Nt→Nt
// changes (source reads a sibling nonterminal's
// own parameter), then return constants first followed by Nt→Nt changes
// ordered by the topological index of their source nonterminal. This
// guarantees a child's own inbound parameters are assigned before any
// change reads them.
//
// sourceNtName must report, for each change, the nonterminal name its
// source resolves to when it is a SrcNonterminal (after SrcChoice has
// already been collapsed by the caller) — callers pass a closure over
// their own SrcChoice resolution so this package stays free of
// randomness.
func OrderChanges(changes []ast.Change, sourceNtName func(ast.Change) (string, bool)) []ast.Change {
	var constants, ntSourced []ast.Change
	g := newGraph()

	for _, ch := range changes {
		if ntName, ok := sourceNtName(ch); ok {
			ntSourced = append(ntSourced, ch)
			g.addEdge(ntName, ch.TargetNtName)
			continue
		}
		constants = append(constants, ch)
	}

	order := g.topologicalOrder()
	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}

	ordered := make([]ast.Change, 0, len(constants)+len(ntSourced))
	ordered = append(ordered, constants...)

	sorted := make([]ast.Change, len(ntSourced))
	copy(sorted, ntSourced)
	insertionSortBySourceIndex(sorted, index, sourceNtName)
	ordered = append(ordered, sorted...)
	return ordered
}

// insertionSortBySourceIndex is a small stable sort: len(changes) per
// production is always tiny, so an O(n^2) sort keeps this free of an
// extra allocation-heavy sort.Slice closure per call.
func insertionSortBySourceIndex(changes []ast.Change, index map[string]int, sourceNtName func(ast.Change) (string, bool)) {
	key := func(ch ast.Change) int {
		name, _ := sourceNtName(ch)
		return index[name]
	}
	for i := 1; i < len(changes); i++ {
		for j := i; j > 0 && key(changes[j-1]) > key(changes[j]); j-- {
			changes[j-1], changes[j] = changes[j], changes[j-1]
		}
	}
}
