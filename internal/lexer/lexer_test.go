package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkpro118/regex-engine-go/internal/token"
)

func Test_TokenizeAll_kindSequence(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		expect  []token.Kind
	}{
		{name: "empty pattern", pattern: "", expect: nil},
		{name: "single char", pattern: "a", expect: []token.Kind{token.CHAR}},
		{name: "concat", pattern: "ab", expect: []token.Kind{token.CHAR, token.CHAR}},
		{name: "star", pattern: "a*", expect: []token.Kind{token.CHAR, token.STAR}},
		{name: "plus", pattern: "a+", expect: []token.Kind{token.CHAR, token.PLUS}},
		{name: "question", pattern: "a?", expect: []token.Kind{token.CHAR, token.QUESTION}},
		{name: "alternation", pattern: "a|b", expect: []token.Kind{token.CHAR, token.OR, token.CHAR}},
		{name: "group", pattern: "(ab)", expect: []token.Kind{
			token.LPAREN, token.CHAR, token.CHAR, token.RPAREN,
		}},
		{name: "chained quantifiers", pattern: "a**+?", expect: []token.Kind{
			token.CHAR, token.STAR, token.STAR, token.PLUS, token.QUESTION,
		}},
		{name: "backslash is a literal char", pattern: `\`, expect: []token.Kind{token.CHAR}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tokens := New(tc.pattern).TokenizeAll()

			kinds := make([]token.Kind, len(tokens))
			for i, tok := range tokens {
				kinds[i] = tok.Kind
			}

			assert.Equal(tc.expect, kinds)
		})
	}
}

func Test_TokenizeAll_lexicalError(t *testing.T) {
	assert := assert.New(t)

	tokens := New("a\x01b").TokenizeAll()

	assert.NotEmpty(tokens)
	last := tokens[len(tokens)-1]
	assert.Equal(token.ERROR, last.Kind)
	assert.Equal(byte(0x01), last.Value)
}

func Test_NextToken_stickyEOF(t *testing.T) {
	assert := assert.New(t)

	l := New("a")
	assert.Equal(token.CHAR, l.NextToken().Kind)
	assert.Equal(token.EOF, l.NextToken().Kind)
	assert.Equal(token.EOF, l.NextToken().Kind)
}

// Test_Lex_roundTrip checks spec Testable Property 1: concatenating
// Display() across a lexable pattern's non-EOF tokens reproduces the
// original pattern byte-for-byte.
func Test_Lex_roundTrip(t *testing.T) {
	patterns := []string{
		"", "a", "ab", "a*", "a+", "a?", "a|b", "(a|b)*c",
		"(ab?)|c*|d+", "a**+?", "abcdefghijklmnop",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			tokens := New(pattern).TokenizeAll()

			var sb strings.Builder
			for _, tok := range tokens {
				sb.WriteString(tok.Display())
			}

			assert.Equal(t, pattern, sb.String())
		})
	}
}
