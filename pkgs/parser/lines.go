package parser

import "github.com/aledsdavies/ggra/pkgs/ast"

// lineKind tags a classified, partially- or fully-parsed grammar line.
// It mirrors spec.md §4.2's line-variant table; the last two kinds are
// synthetic, produced by the block assembler (§4.3) when a nested "from:"
// or "with:" context finalizes, so they can be folded back into their
// parent context exactly like a line the classifier itself produced.
type lineKind int

const (
	kindOpenFrom lineKind = iota
	kindFullFrom
	kindOpenWith
	kindFullWith
	kindCondition
	kindFileNt
	kindFullNt
	kindOpenNt
	kindChange
	kindBNPattern
	kindResolvedPattern // synthetic: a finalized "from:" block
	kindResolvedChanges // synthetic: a finalized "with:" block
)

// pline ("parsed line") is the line-classifier's output: one struct with a
// kind tag and whichever payload fields that kind uses, rather than one
// Go type per variant — the fields below are exactly the per-kind payload
// spec.md's Line dataclasses carry.
type pline struct {
	kind   lineKind
	indent int
	lineNo int

	pattern    ast.Pattern   // FullFrom, FullNt, BNPattern, ResolvedPattern
	change     ast.Change    // FullWith, Change
	changes    []ast.Change  // ResolvedChanges
	condition  ast.Condition // Condition
	name       string        // FileNt, FullNt, OpenNt
	paramNames map[string]struct{}
	filename   string // FileNt
}

func isOpener(k lineKind) bool {
	return k == kindOpenFrom || k == kindOpenWith || k == kindOpenNt
}

// isGroupStart reports whether a line begins a new pattern group when
// splitting a context's lines for finalization (spec §4.3).
func isGroupStart(k lineKind) bool {
	return k == kindBNPattern || k == kindFullFrom || k == kindResolvedPattern
}

// isModifier reports whether a line attaches to the immediately preceding
// group as a "with" or "if" modifier.
func isModifier(k lineKind) bool {
	return k == kindFullWith || k == kindCondition || k == kindResolvedChanges
}
