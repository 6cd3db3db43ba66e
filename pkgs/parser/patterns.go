package parser

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// parseBNPattern implements spec §4.2's BN pattern parsing: every token
// must be a string, nonterminal, or epsilon. Epsilons are dropped; the
// Open Question on "?" is resolved here by rejecting it outright, since
// no semantics for it are specified.
func parseBNPattern(toks []lexer.Token, lineNo int) (ast.Pattern, error) {
	// Non-nil even when every token is an epsilon: ast.BNForm.Elements
	// must never be nil, since the resolver reserves a nil element slice
	// for its (null, null) "branch not usable" control-flow signal.
	elems := []ast.Element{}
	for _, t := range toks {
		switch t.Kind {
		case lexer.STRING:
			elems = append(elems, ast.TerminalString{Text: unquote(t.Text)})
		case lexer.NONTERMINAL:
			name, eager := lexer.NormalizeNonterminal(t.Text)
			elems = append(elems, ast.NonterminalRef{Name: name, Eager: eager})
		case lexer.EPSILON:
			// dropped: epsilon expands to nothing
		default:
			return nil, parserError("Pre-Parsing lines", lineNo, t.Column,
				"a pattern line may only contain strings, nonterminals, and epsilons")
		}
	}
	return ast.BNForm{Elements: elems}, nil
}

// parseParamList consumes "identifier (, identifier)*" starting right
// after the opening "(" at toks[start], returning the parsed names and
// the index of the matching CLOSE_PAREN.
func parseParamList(toks []lexer.Token, start, lineNo int) (names []string, closeIdx int, err error) {
	i := start
	if i < len(toks) && toks[i].Kind == lexer.CLOSE_PAREN {
		return nil, i, nil
	}
	wantIdent := true
	for {
		if i >= len(toks) {
			return nil, 0, parserError("Pre-Parsing lines", lineNo, 0, "unterminated parameter list")
		}
		if wantIdent {
			if toks[i].Kind != lexer.IDENTIFIER {
				return nil, 0, parserError("Pre-Parsing lines", lineNo, toks[i].Column,
					"expected a parameter name")
			}
			names = append(names, toks[i].Text)
			i++
			wantIdent = false
			continue
		}
		if toks[i].Kind == lexer.CLOSE_PAREN {
			return names, i, nil
		}
		if toks[i].Kind != lexer.COMMA {
			return nil, 0, parserError("Pre-Parsing lines", lineNo, toks[i].Column,
				"expected \",\" or \")\" in parameter list")
		}
		i++
		wantIdent = true
	}
}
