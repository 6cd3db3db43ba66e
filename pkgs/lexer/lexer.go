package lexer

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/ggra/pkgs/ggerr"
)

// newError builds the ggerr.Error raised when no token pattern matches the
// current input prefix. It carries a short snippet of the offending input.
func newError(line, column int, snippet string) *ggerr.Error {
	return ggerr.New(ggerr.Lexer, "Tokenizing",
		fmt.Sprintf("no token matches input near %q", snippet),
	).WithPos(line, column)
}

// matcher tries to consume a token of its kind from the prefix of s. It
// returns the matched text and true on success, or ("", false) otherwise.
// The matcher list below is tried in declaration order; the first match
// wins, so ordering is load-bearing (see the Lexer doc comment).
type matcher struct {
	kind TokenKind
	try  func(s string) (text string, ok bool)
}

var matchers = []matcher{
	{COMMENT, matchComment},
	{LINEBREAK, matchLiteral("\n")},
	{SPACES, matchSpaces},
	{EPSILON, matchLiteral("<>")},
	{NONTERMINAL, matchNonterminal},
	{IDENTIFIER, matchIdentifier},
	{STRING, matchString},
	{ARROW_NORMAL, matchLiteral("->")},
	{ARROW_LABELED, matchArrowLabeled},
	{ARROW_DOUBLE, matchLiteral("=>")},
	{NEQUALS, matchLiteral("!=")},
	{EQUALS, matchLiteral("=")},
	{OPEN_PAREN, matchLiteral("(")},
	{CLOSE_PAREN, matchLiteral(")")},
	{COLON, matchLiteral(":")},
	{OR, matchLiteral("|")},
	{QUESTION, matchLiteral("?")},
	{DOT, matchLiteral(".")},
	{COMMA, matchLiteral(",")},
}

// Lexer tokenizes grammar source text. Construct with New and drain with
// Next until it returns ok=false at EOF.
//
// Patterns are tried in declaration order at every position: the first
// that matches the prefix wins. There is no longest-match arbitration
// across kinds — this is intentional, because NONTERMINAL must be tried
// before IDENTIFIER could otherwise eat into its angle brackets, and
// ARROW_LABELED before EQUALS.
type Lexer struct {
	input  string
	pos    int // byte offset
	line   int
	column int
}

// New creates a Lexer over the given grammar source.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Next returns the next token, or ok=false at end of input. err is non-nil
// (and ok is false) when no pattern matches the current prefix.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	rest := l.input[l.pos:]
	for _, m := range matchers {
		text, matched := m.try(rest)
		if !matched || text == "" {
			continue
		}
		tok = Token{Kind: m.kind, Text: text, Line: l.line, Column: l.column}
		l.advance(text)
		return tok, true, nil
	}

	snippet := rest
	if len(snippet) > 16 {
		snippet = snippet[:16]
	}
	return Token{}, false, newError(l.line, l.column, snippet)
}

// Tokenize drains the lexer into a slice.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) advance(text string) {
	l.pos += len(text)
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		l.line += strings.Count(text, "\n")
		l.column = len(text) - idx
	} else {
		l.column += len(text)
	}
}

// TokenLines splits a token stream at LINEBREAK tokens into one slice per
// source line. Comment-only or whitespace-only lines are NOT filtered here
// (spec: that filtering happens downstream, in the line classifier).
func TokenLines(tokens []Token) [][]Token {
	var lines [][]Token
	var current []Token
	for _, tok := range tokens {
		if tok.Kind == LINEBREAK {
			lines = append(lines, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	lines = append(lines, current)
	return lines
}

func matchLiteral(lit string) func(string) (string, bool) {
	return func(s string) (string, bool) {
		if strings.HasPrefix(s, lit) {
			return lit, true
		}
		return "", false
	}
}

func matchComment(s string) (string, bool) {
	if !strings.HasPrefix(s, "//") {
		return "", false
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx], true
	}
	return s, true
}

func matchSpaces(s string) (string, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i == 0 {
		return "", false
	}
	return s[:i], true
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func matchIdentifier(s string) (string, bool) {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", false
	}
	return s[:i], true
}

func matchString(s string) (string, bool) {
	if len(s) == 0 || s[0] != '"' {
		return "", false
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) || s[i+1] == '\n' {
				return "", false
			}
			i += 2
		case '"':
			return s[:i+1], true
		case '\n':
			return "", false
		default:
			i++
		}
	}
	return "", false
}

// matchNonterminal matches "<" optional spaces, optional "~", optional
// spaces, identifier, optional spaces, ">".
func matchNonterminal(s string) (string, bool) {
	if len(s) == 0 || s[0] != '<' {
		return "", false
	}
	i := 1
	i += skipSpaces(s, i)
	if i < len(s) && s[i] == '~' {
		i++
	}
	i += skipSpaces(s, i)
	start := i
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	if i == start {
		return "", false
	}
	i += skipSpaces(s, i)
	if i >= len(s) || s[i] != '>' {
		return "", false
	}
	return s[:i+1], true
}

// matchArrowLabeled matches "==" optional spaces, identifier characters
// (letters/underscore only, per the grammar's label syntax), "=>".
func matchArrowLabeled(s string) (string, bool) {
	if !strings.HasPrefix(s, "==") {
		return "", false
	}
	i := 2
	i += skipSpaces(s, i)
	start := i
	for i < len(s) && ((s[i] >= 'a' && s[i] <= 'z') || (s[i] >= 'A' && s[i] <= 'Z') || s[i] == '_') {
		i++
	}
	if i == start {
		return "", false
	}
	if !strings.HasPrefix(s[i:], "=>") {
		return "", false
	}
	return s[:i+2], true
}

func skipSpaces(s string, from int) int {
	i := from
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i - from
}

// NormalizeNonterminal strips the surrounding "<" ">", interior spaces,
// and reports whether the "~" eager marker was present alongside the bare
// name. Both "<~ Name >" and "<~Name>" normalize to the same (name, true).
func NormalizeNonterminal(text string) (name string, eager bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "<"), ">")
	inner = strings.ReplaceAll(inner, " ", "")
	if strings.HasPrefix(inner, "~") {
		return strings.TrimPrefix(inner, "~"), true
	}
	return inner, false
}
