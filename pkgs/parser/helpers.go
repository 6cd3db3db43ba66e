package parser

import (
	"strings"

	"github.com/aledsdavies/ggra/pkgs/lexer"
)

// unquote strips the surrounding double quotes from a STRING token's text
// and resolves backslash escapes.
func unquote(raw string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

// isOrBlockShape reports whether toks is an odd-length sequence alternating
// identifier/string tokens at even positions and OR tokens at odd
// positions — the shared shape behind SrcChoice and ExprChoice.
func isOrBlockShape(toks []lexer.Token) bool {
	if len(toks) == 0 || len(toks)%2 == 0 {
		return false
	}
	for i, t := range toks {
		if i%2 == 0 {
			if t.Kind != lexer.IDENTIFIER && t.Kind != lexer.STRING {
				return false
			}
		} else if t.Kind != lexer.OR {
			return false
		}
	}
	return true
}
