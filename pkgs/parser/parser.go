package parser

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// Parse turns grammar source text into its list of nonterminal definitions:
// lex, split into lines, classify each non-trivial line (measuring its
// indent and stripping spaces/comments first), then run the block
// assembler over the classified sequence.
func Parse(input string) ([]ast.NonterminalDef, error) {
	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		return nil, err
	}

	var plines []*pline
	for _, raw := range lexer.TokenLines(tokens) {
		indent, toks := stripTrivial(raw)
		if len(toks) == 0 {
			continue // comment-only or whitespace-only line
		}
		ln, err := classifyLine(toks, indent, toks[0].Line)
		if err != nil {
			return nil, err
		}
		plines = append(plines, ln)
	}

	return assemble(plines)
}

// stripTrivial measures a line's indent (the length of a leading SPACES
// token's text, 0 if none) and returns its tokens with SPACES and COMMENT
// removed.
func stripTrivial(line []lexer.Token) (indent int, toks []lexer.Token) {
	if len(line) > 0 && line[0].Kind == lexer.SPACES {
		indent = len(line[0].Text)
	}
	for _, t := range line {
		if t.Kind == lexer.SPACES || t.Kind == lexer.COMMENT || t.Kind == lexer.LINEBREAK {
			continue
		}
		toks = append(toks, t)
	}
	return indent, toks
}
