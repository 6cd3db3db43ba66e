package parser

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// parseCondition implements spec §4.2's condition grammar: scan for "="
// then "!=" (first found, left-to-right, wins) and split there, parsing
// each side as an Expression.
func parseCondition(toks []lexer.Token, lineNo int) (ast.Condition, error) {
	for i, t := range toks {
		switch t.Kind {
		case lexer.EQUALS:
			left, err := parseExpression(toks[:i], lineNo)
			if err != nil {
				return nil, err
			}
			right, err := parseExpression(toks[i+1:], lineNo)
			if err != nil {
				return nil, err
			}
			return ast.CondEq{Left: left, Right: right}, nil
		case lexer.NEQUALS:
			left, err := parseExpression(toks[:i], lineNo)
			if err != nil {
				return nil, err
			}
			right, err := parseExpression(toks[i+1:], lineNo)
			if err != nil {
				return nil, err
			}
			return ast.CondNeq{Left: left, Right: right}, nil
		}
	}
	return nil, parserError("Pre-Parsing lines", lineNo, 0,
		"an \"if\" line must contain \"=\" or \"!=\"")
}
