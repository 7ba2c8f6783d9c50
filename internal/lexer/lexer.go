// Package lexer scans a regex pattern into a token.Token sequence.
//
// The scan loop is structured the way the teacher's tokenizer.go walks a
// pattern byte by byte with an explicit cursor, generalized to the six
// metacharacters this engine supports and to the printable-ASCII-only
// domain of spec.md §6.
package lexer

import (
	"github.com/mkpro118/regex-engine-go/internal/token"
)

// Lexer scans a pattern string one byte at a time. It owns the source
// string and a cursor; it is never shared across goroutines.
type Lexer struct {
	pattern string
	pos     int
}

// New creates a Lexer over pattern. The pattern is interpreted as raw
// bytes, not runes.
func New(pattern string) *Lexer {
	return &Lexer{pattern: pattern}
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

func metaKind(b byte) (token.Kind, bool) {
	switch b {
	case '(':
		return token.LPAREN, true
	case ')':
		return token.RPAREN, true
	case '|':
		return token.OR, true
	case '*':
		return token.STAR, true
	case '+':
		return token.PLUS, true
	case '?':
		return token.QUESTION, true
	default:
		return token.CHAR, false
	}
}

// NextToken returns the next token and advances the cursor. At end of
// input it returns EOF and keeps returning EOF on further calls. A
// non-printable byte (outside 0x20..0x7E) yields ERROR; the lexer does
// not advance past an ERROR byte, matching the "fatal compile error"
// treatment of spec.md §4.1.
func (l *Lexer) NextToken() token.Token {
	if l.pos >= len(l.pattern) {
		return token.Token{Kind: token.EOF}
	}

	b := l.pattern[l.pos]

	if !isPrintable(b) {
		return token.Token{Kind: token.ERROR, Value: b}
	}

	l.pos++

	if kind, isMeta := metaKind(b); isMeta {
		return token.Token{Kind: kind}
	}

	return token.Token{Kind: token.CHAR, Value: b}
}

// TokenizeAll eagerly scans every token up to (but excluding) the
// trailing EOF. It stops and returns the tokens gathered so far plus the
// ERROR token on the first lexical failure.
func (l *Lexer) TokenizeAll() []token.Token {
	var tokens []token.Token

	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			return tokens
		}

		tokens = append(tokens, tok)

		if tok.Kind == token.ERROR {
			return tokens
		}
	}
}
