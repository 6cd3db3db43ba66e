package parser

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// parseExpression parses the bare-identifier / bare-string / or-block
// shapes spec §4.2 describes for Condition operands.
func parseExpression(toks []lexer.Token, lineNo int) (ast.Expression, error) {
	if len(toks) == 1 {
		switch toks[0].Kind {
		case lexer.IDENTIFIER:
			return ast.ExprIdent{Name: toks[0].Text}, nil
		case lexer.STRING:
			return ast.ExprString{Text: unquote(toks[0].Text)}, nil
		}
	}
	if isOrBlockShape(toks) {
		opts := make([]ast.Expression, 0, (len(toks)+1)/2)
		for i := 0; i < len(toks); i += 2 {
			if toks[i].Kind == lexer.IDENTIFIER {
				opts = append(opts, ast.ExprIdent{Name: toks[i].Text})
			} else {
				opts = append(opts, ast.ExprString{Text: unquote(toks[i].Text)})
			}
		}
		return ast.ExprChoice{Options: opts}, nil
	}
	return nil, parserError("Pre-Parsing lines", lineNo, 0,
		"expected an identifier, string, or pipe-separated alternatives")
}

// parseSource parses a Change's left-hand side: a bare identifier/string,
// "A.p" (sibling parameter read), or an or-block of the first two shapes.
func parseSource(toks []lexer.Token, lineNo int) (ast.Source, error) {
	if len(toks) == 1 {
		switch toks[0].Kind {
		case lexer.IDENTIFIER:
			return ast.SrcIdent{Name: toks[0].Text}, nil
		case lexer.STRING:
			return ast.SrcString{Text: unquote(toks[0].Text)}, nil
		}
	}
	if len(toks) == 3 && toks[0].Kind == lexer.IDENTIFIER && toks[1].Kind == lexer.DOT && toks[2].Kind == lexer.IDENTIFIER {
		return ast.SrcNonterminal{NtName: toks[0].Text, NtParam: toks[2].Text}, nil
	}
	if isOrBlockShape(toks) {
		opts := make([]ast.Source, 0, (len(toks)+1)/2)
		for i := 0; i < len(toks); i += 2 {
			if toks[i].Kind == lexer.IDENTIFIER {
				opts = append(opts, ast.SrcIdent{Name: toks[i].Text})
			} else {
				opts = append(opts, ast.SrcString{Text: unquote(toks[i].Text)})
			}
		}
		return ast.SrcChoice{Options: opts}, nil
	}
	return nil, parserError("Pre-Parsing lines", lineNo, 0,
		"expected a change source: identifier, string, \"A.p\", or pipe-separated alternatives")
}
