package parser

import "github.com/aledsdavies/ggra/pkgs/ast"

// blockContext is one level of the indentation stack described in
// spec §4.3. indentSet is false until this context's first child line
// fixes its indent level; opener is nil for the implicit file-level root
// context.
type blockContext struct {
	indentSet bool
	indent    int
	opener    *pline
	lines     []*pline
}

// assemble runs the block-assembler algorithm over the already-classified,
// already-indented line sequence, producing the grammar's nonterminal
// definitions. Nonterminal headers never nest inside another nonterminal's
// body, so every OpenNt context's parent is the implicit file-level root —
// finalizeInto always appends Inline defs into the same defs slice,
// whether the context is popped mid-stream by a dedent (the common case:
// one Nt header dedenting back to file level before the next one starts)
// or flushed at EOF. One-line FileNt and FullNt headers open no context
// and are converted to External/Inline defs in place.
func assemble(lines []*pline) ([]ast.NonterminalDef, error) {
	stack := []*blockContext{{}}
	var defs []ast.NonterminalDef

	for _, ln := range lines {
		if err := settleIndent(&stack, ln, &defs); err != nil {
			return nil, err
		}
		top := stack[len(stack)-1]

		switch ln.kind {
		case kindFileNt:
			defs = append(defs, ast.External{Name: ln.name, ParamNames: ln.paramNames, Filename: ln.filename, Line: ln.lineNo})
			continue
		case kindFullNt:
			defs = append(defs, ast.Inline{Name: ln.name, ParamNames: ln.paramNames, Body: ln.pattern, Line: ln.lineNo})
			continue
		}

		if isOpener(ln.kind) {
			stack = append(stack, &blockContext{opener: ln})
			continue
		}
		top.lines = append(top.lines, ln)
	}

	for len(stack) > 1 {
		popped := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := finalizeInto(popped, stack[len(stack)-1], &defs); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

// settleIndent applies spec §4.3 steps 1-3: fix the top context's indent
// on its first child, reject an unexpected deeper indent, or pop contexts
// on a dedent until one matches.
func settleIndent(stackPtr *[]*blockContext, ln *pline, defs *[]ast.NonterminalDef) error {
	stack := *stackPtr
	top := stack[len(stack)-1]

	if !top.indentSet {
		enclosing := -1
		if len(stack) >= 2 {
			enclosing = stack[len(stack)-2].indent
		}
		if ln.indent <= enclosing {
			return parserError("Block assembly", ln.lineNo, 0,
				"expected a deeper indent to open this block")
		}
		top.indent = ln.indent
		top.indentSet = true
		return nil
	}

	if ln.indent > top.indent {
		return parserError("Block assembly", ln.lineNo, 0,
			"unexpected deeper indent")
	}

	if ln.indent < top.indent {
		for len(stack) > 1 && stack[len(stack)-1].indent > ln.indent {
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := finalizeInto(popped, stack[len(stack)-1], defs); err != nil {
				return err
			}
		}
		*stackPtr = stack
		if stack[len(stack)-1].indent != ln.indent {
			return parserError("Block assembly", ln.lineNo, 0,
				"misaligned dedent: indent matches no enclosing block")
		}
	}
	return nil
}

// finalizeInto converts a popped context into whatever its opener kind
// produces (spec §4.3 "Finalization") and folds it into parent: an Inline
// NonterminalDef is appended to *defs, a finalized "from:" block becomes a
// synthetic group-start line in parent.lines, and a finalized "with:"
// block becomes a synthetic modifier line in parent.lines.
func finalizeInto(popped, parent *blockContext, defs *[]ast.NonterminalDef) error {
	switch popped.opener.kind {
	case kindOpenNt:
		body, err := buildNtBody(popped.lines, popped.opener.lineNo)
		if err != nil {
			return err
		}
		*defs = append(*defs, ast.Inline{
			Name:       popped.opener.name,
			ParamNames: popped.opener.paramNames,
			Body:       body,
			Line:       popped.opener.lineNo,
		})
		return nil

	case kindOpenFrom:
		alt, err := buildAlternation(popped.lines, popped.opener.lineNo)
		if err != nil {
			return err
		}
		parent.lines = append(parent.lines, &pline{
			kind: kindResolvedPattern, pattern: alt,
			indent: popped.opener.indent, lineNo: popped.opener.lineNo,
		})
		return nil

	case kindOpenWith:
		changes, err := buildChangesBlock(popped.lines, popped.opener.lineNo)
		if err != nil {
			return err
		}
		parent.lines = append(parent.lines, &pline{
			kind: kindResolvedChanges, changes: changes,
			indent: popped.opener.indent, lineNo: popped.opener.lineNo,
		})
		return nil
	}
	return parserError("Block assembly", popped.opener.lineNo, 0, "unknown block opener")
}

// splitGroups partitions a context's lines at every group-start line; each
// resulting group is one pattern followed by its with/if modifiers.
func splitGroups(lines []*pline, lineNo int) ([][]*pline, error) {
	var groups [][]*pline
	for _, ln := range lines {
		switch {
		case isGroupStart(ln.kind):
			groups = append(groups, []*pline{ln})
		case isModifier(ln.kind):
			if len(groups) == 0 {
				return nil, parserError("Block assembly", ln.lineNo, 0,
					"a \"with\"/\"if\" modifier must follow a pattern")
			}
			groups[len(groups)-1] = append(groups[len(groups)-1], ln)
		default:
			return nil, parserError("Block assembly", ln.lineNo, 0,
				"unexpected line inside a pattern block")
		}
	}
	if len(groups) == 0 {
		return nil, parserError("Block assembly", lineNo, 0, "a block must contain at least one pattern")
	}
	return groups, nil
}

// buildGroupPattern wraps a group's leading pattern left-to-right with its
// trailing with/if modifiers, per spec §4.3.
func buildGroupPattern(group []*pline) ast.Pattern {
	inner := group[0].pattern
	for _, mod := range group[1:] {
		switch mod.kind {
		case kindFullWith:
			inner = ast.Modified{Inner: inner, WithChanges: []ast.Change{mod.change}}
		case kindResolvedChanges:
			inner = ast.Modified{Inner: inner, WithChanges: mod.changes}
		case kindCondition:
			inner = ast.Guarded{Inner: inner, Condition: mod.condition}
		}
	}
	return inner
}

func buildNtBody(lines []*pline, lineNo int) (ast.Pattern, error) {
	groups, err := splitGroups(lines, lineNo)
	if err != nil {
		return nil, err
	}
	if len(groups) == 1 {
		return buildGroupPattern(groups[0]), nil
	}
	alts := make([]ast.Pattern, len(groups))
	for i, g := range groups {
		alts[i] = buildGroupPattern(g)
	}
	return ast.Alternation{Alternatives: alts}, nil
}

// buildAlternation always wraps in an Alternation, even for a single
// group — unlike buildNtBody, which unwraps the single-group case.
func buildAlternation(lines []*pline, lineNo int) (ast.Pattern, error) {
	groups, err := splitGroups(lines, lineNo)
	if err != nil {
		return nil, err
	}
	alts := make([]ast.Pattern, len(groups))
	for i, g := range groups {
		alts[i] = buildGroupPattern(g)
	}
	return ast.Alternation{Alternatives: alts}, nil
}

func buildChangesBlock(lines []*pline, lineNo int) ([]ast.Change, error) {
	if len(lines) == 0 {
		return nil, parserError("Block assembly", lineNo, 0, "a \"with:\" block must contain at least one change")
	}
	changes := make([]ast.Change, 0, len(lines))
	for _, ln := range lines {
		if ln.kind != kindChange {
			return nil, parserError("Block assembly", ln.lineNo, 0,
				"a \"with:\" block may only contain change lines")
		}
		changes = append(changes, ln.change)
	}
	return changes, nil
}
