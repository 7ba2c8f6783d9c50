package regex

import (
	"fmt"

	"github.com/mkpro118/regex-engine-go/internal/parser"
)

// The error taxonomy of spec.md §7. Each is a distinct type so callers
// can use errors.As to recover the offending detail, grounded on
// dekarrin-tunaq/internal/tunascript/error.go's SyntaxError: a small
// struct carrying just enough context to format itself, with no global
// error state and nothing surfacing except from the call that failed.

// LexicalError reports a non-printable byte encountered while scanning
// a pattern (spec.md §4.1, §6).
type LexicalError struct {
	Pos  int
	Byte byte
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: non-printable byte 0x%02x at position %d", e.Byte, e.Pos)
}

// ParseError reports a grammar violation: unmatched paren, empty group,
// an operator in base position, or trailing garbage (spec.md §4.2, §7).
type ParseError struct {
	inner *parser.Error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.inner.Error())
}

// Unwrap exposes the underlying *parser.Error for errors.As/errors.Is.
func (e *ParseError) Unwrap() error {
	return e.inner
}

// BuildError reports a failure during Thompson construction (spec.md
// §4.4, §7). Go's builder has no recoverable resource-exhaustion path —
// allocation failure panics rather than returning an error, unlike the
// C original this spec was distilled from. Compile wraps any error from
// nfa.Build in a BuildError; nfa.Build fails only on a nil root or an
// unsupported node type, neither of which the parser produces.
type BuildError struct {
	msg string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error: %s", e.msg)
}

// NotCompiled describes use of a Regex before a successful Compile. No
// function in this package returns it: Match on an uncompiled Regex
// returns false rather than an error.
type NotCompiled struct{}

func (e *NotCompiled) Error() string {
	return "regex: not compiled"
}

// NullInput reports a nil/empty pattern passed to Compile, or use of a
// nil *Regex receiver.
type NullInput struct {
	what string
}

func (e *NullInput) Error() string {
	return fmt.Sprintf("regex: null %s", e.what)
}
