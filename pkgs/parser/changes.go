package parser

import (
	"strings"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// parseChange implements spec §4.2's five Change shapes:
//
//	A ==p=> B          (ARROW_LABELED)
//	p => T.q           (bare identifier source)
//	"s" => T.q         (bare string source)
//	A.p => T.q         (sibling parameter source)
//	a|b|"c" => T.q     (SrcChoice source)
func parseChange(toks []lexer.Token, lineNo int) (ast.Change, error) {
	arrowIdx := -1
	for i, t := range toks {
		if t.Kind == lexer.ARROW_DOUBLE || t.Kind == lexer.ARROW_LABELED {
			arrowIdx = i
			break
		}
	}
	if arrowIdx < 0 {
		return ast.Change{}, parserError("Pre-Parsing lines", lineNo, 0,
			"a change line must contain \"=>\" or \"==name=>\"")
	}

	if toks[arrowIdx].Kind == lexer.ARROW_LABELED {
		left, right := toks[:arrowIdx], toks[arrowIdx+1:]
		if len(left) != 1 || left[0].Kind != lexer.IDENTIFIER || len(right) != 1 || right[0].Kind != lexer.IDENTIFIER {
			return ast.Change{}, parserError("Pre-Parsing lines", lineNo, 0,
				"\"A ==p=> B\" requires a single identifier on each side")
		}
		label := labelOf(toks[arrowIdx].Text)
		return ast.Change{
			Source:        ast.SrcNonterminal{NtName: left[0].Text, NtParam: label},
			TargetNtName:  right[0].Text,
			TargetNtParam: label,
		}, nil
	}

	left, right := toks[:arrowIdx], toks[arrowIdx+1:]
	if len(right) != 3 || right[0].Kind != lexer.IDENTIFIER || right[1].Kind != lexer.DOT || right[2].Kind != lexer.IDENTIFIER {
		return ast.Change{}, parserError("Pre-Parsing lines", lineNo, 0,
			"a change's right-hand side must be \"Target.param\"")
	}
	src, err := parseSource(left, lineNo)
	if err != nil {
		return ast.Change{}, err
	}
	return ast.Change{
		Source:        src,
		TargetNtName:  right[0].Text,
		TargetNtParam: right[2].Text,
	}, nil
}

// labelOf extracts "person" out of an ARROW_LABELED token's raw text
// "==person=>" (allowing for the interior spaces the lexer tolerates).
func labelOf(raw string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "=="), "=>")
	return strings.TrimSpace(inner)
}
