package parser

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// classifyLine dispatches one non-trivial line's already-filtered tokens
// (SPACES and COMMENT already stripped) to a pline per spec §4.2's table.
func classifyLine(toks []lexer.Token, indent, lineNo int) (*pline, error) {
	head := toks[0]

	if head.Kind == lexer.IDENTIFIER {
		switch head.Text {
		case "from":
			return classifyFrom(toks, indent, lineNo)
		case "with":
			return classifyWith(toks, indent, lineNo)
		case "if":
			cond, err := parseCondition(toks[1:], lineNo)
			if err != nil {
				return nil, err
			}
			return &pline{kind: kindCondition, condition: cond, indent: indent, lineNo: lineNo}, nil
		}

		if isIdentHeaderShape(toks) {
			return classifyIdentHeader(toks, indent, lineNo)
		}
	}

	if containsChangeArrow(toks) {
		ch, err := parseChange(toks, lineNo)
		if err != nil {
			return nil, err
		}
		return &pline{kind: kindChange, change: ch, indent: indent, lineNo: lineNo}, nil
	}

	switch head.Kind {
	case lexer.NONTERMINAL, lexer.STRING, lexer.EPSILON:
		pat, err := parseBNPattern(toks, lineNo)
		if err != nil {
			return nil, err
		}
		return &pline{kind: kindBNPattern, pattern: pat, indent: indent, lineNo: lineNo}, nil
	}

	return nil, parserError("Pre-Parsing lines", lineNo, head.Column,
		"line fits no known form")
}

func containsChangeArrow(toks []lexer.Token) bool {
	for _, t := range toks {
		if t.Kind == lexer.ARROW_DOUBLE || t.Kind == lexer.ARROW_LABELED {
			return true
		}
	}
	return false
}

// isIdentHeaderShape reports whether toks opens with one of the
// FileNt/FullNt/OpenNt headers: IDENT immediately followed by "(", ":",
// or "->". A bare identifier alone is not a header.
func isIdentHeaderShape(toks []lexer.Token) bool {
	if len(toks) == 1 {
		return false // a bare identifier alone fits no header shape
	}
	switch toks[1].Kind {
	case lexer.OPEN_PAREN, lexer.COLON, lexer.ARROW_NORMAL:
		return true
	}
	return false
}

func classifyFrom(toks []lexer.Token, indent, lineNo int) (*pline, error) {
	if len(toks) < 2 || toks[1].Kind != lexer.COLON {
		return nil, parserError("Pre-Parsing lines", lineNo, toks[0].Column, "expected \"from:\"")
	}
	rest := toks[2:]
	if len(rest) == 0 {
		return &pline{kind: kindOpenFrom, indent: indent, lineNo: lineNo}, nil
	}
	pat, err := parseBNPattern(rest, lineNo)
	if err != nil {
		return nil, err
	}
	return &pline{kind: kindFullFrom, pattern: pat, indent: indent, lineNo: lineNo}, nil
}

func classifyWith(toks []lexer.Token, indent, lineNo int) (*pline, error) {
	if len(toks) < 2 || toks[1].Kind != lexer.COLON {
		return nil, parserError("Pre-Parsing lines", lineNo, toks[0].Column, "expected \"with:\"")
	}
	rest := toks[2:]
	if len(rest) == 0 {
		return &pline{kind: kindOpenWith, indent: indent, lineNo: lineNo}, nil
	}
	ch, err := parseChange(rest, lineNo)
	if err != nil {
		return nil, err
	}
	return &pline{kind: kindFullWith, change: ch, indent: indent, lineNo: lineNo}, nil
}

func classifyIdentHeader(toks []lexer.Token, indent, lineNo int) (*pline, error) {
	name := toks[0].Text
	idx := 1
	params := ast.ParamSet()
	if toks[idx].Kind == lexer.OPEN_PAREN {
		idx++
		names, closeIdx, err := parseParamList(toks, idx, lineNo)
		if err != nil {
			return nil, err
		}
		idx = closeIdx + 1
		params = ast.ParamSet(names...)
	}
	if idx >= len(toks) {
		return nil, parserError("Pre-Parsing lines", lineNo, toks[0].Column,
			"expected \"->\" or \":\" after nonterminal header")
	}
	switch toks[idx].Kind {
	case lexer.ARROW_NORMAL:
		idx++
		if idx >= len(toks) || toks[idx].Kind != lexer.STRING || idx+1 != len(toks) {
			return nil, parserError("Pre-Parsing lines", lineNo, toks[0].Column,
				"expected a single quoted filename after \"->\"")
		}
		return &pline{
			kind: kindFileNt, name: name, paramNames: params,
			filename: unquote(toks[idx].Text), indent: indent, lineNo: lineNo,
		}, nil
	case lexer.COLON:
		idx++
		rest := toks[idx:]
		if len(rest) == 0 {
			return &pline{kind: kindOpenNt, name: name, paramNames: params, indent: indent, lineNo: lineNo}, nil
		}
		pat, err := parseBNPattern(rest, lineNo)
		if err != nil {
			return nil, err
		}
		return &pline{kind: kindFullNt, name: name, paramNames: params, pattern: pat, indent: indent, lineNo: lineNo}, nil
	}
	return nil, parserError("Pre-Parsing lines", lineNo, toks[0].Column,
		"expected \"->\" or \":\" after nonterminal header")
}
