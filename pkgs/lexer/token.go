package lexer

import "fmt"

// TokenKind identifies the lexical category of a Token.
type TokenKind int

const (
	COMMENT TokenKind = iota
	LINEBREAK
	SPACES
	IDENTIFIER
	STRING
	EPSILON
	NONTERMINAL
	OPEN_PAREN
	CLOSE_PAREN
	ARROW_NORMAL  // ->
	ARROW_DOUBLE  // =>
	ARROW_LABELED // ==name=>
	NEQUALS       // !=
	EQUALS        // =
	COLON         // :
	OR            // |
	QUESTION      // ?
	DOT           // .
	COMMA         // ,
)

var tokenNames = [...]string{
	COMMENT:       "COMMENT",
	LINEBREAK:     "LINEBREAK",
	SPACES:        "SPACES",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	EPSILON:       "EPSILON",
	NONTERMINAL:   "NONTERMINAL",
	OPEN_PAREN:    "OPEN_PAREN",
	CLOSE_PAREN:   "CLOSE_PAREN",
	ARROW_NORMAL:  "ARROW_NORMAL",
	ARROW_DOUBLE:  "ARROW_DOUBLE",
	ARROW_LABELED: "ARROW_LABELED",
	NEQUALS:       "NEQUALS",
	EQUALS:        "EQUALS",
	COLON:         "COLON",
	OR:            "OR",
	QUESTION:      "QUESTION",
	DOT:           "DOT",
	COMMA:         "COMMA",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexed unit with its source position, for error context.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int // 1-based
	Column int // 1-based, start of token
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%s]", t.Kind, t.Text)
}

// IsTrivial reports whether a token never survives into a classified line.
func (t Token) IsTrivial() bool {
	return t.Kind == SPACES || t.Kind == COMMENT
}
