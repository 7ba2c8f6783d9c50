// Package regex is the public façade of this engine: it bundles the
// lex -> parse -> build pipeline behind a single Regex type, per
// spec.md §4.6 and the external interface of §6.
package regex

import (
	"github.com/mkpro118/regex-engine-go/internal/ast"
	"github.com/mkpro118/regex-engine-go/internal/lexer"
	"github.com/mkpro118/regex-engine-go/internal/nfa"
	"github.com/mkpro118/regex-engine-go/internal/parser"
	"github.com/mkpro118/regex-engine-go/internal/token"
)

// Status reports the outcome of a successful Compile call: either fresh
// work was done, or the Regex was already compiled with the identical
// pattern and Compile was a no-op (spec.md §6, §9).
type Status int

const (
	// Compiled means Compile ran the full pipeline and replaced (or set,
	// on first call) the Regex's NFA.
	Compiled Status = iota
	// AlreadyCompiled means the Regex already held a compiled NFA for
	// this exact pattern; Compile did no work.
	AlreadyCompiled
)

// Regex bundles a pattern, its compiled NFA, and a compiled flag. The
// zero value is a valid, uncompiled Regex.
type Regex struct {
	pattern  string
	compiled bool
	automaton *nfa.NFA
}

// New allocates a Regex, optionally compiling it immediately if pattern
// is non-empty. A compile failure during New is silently absorbed into
// an uncompiled Regex, matching the C original's "pattern may be NULL"
// create-or-defer contract (include/regex.h's regex_create); callers
// that need the error should call Compile directly instead.
func New(pattern string) *Regex {
	r := &Regex{}
	if pattern != "" {
		_, _ = r.Compile(pattern)
	}
	return r
}

// Compile lexes, parses, and builds pattern into an NFA. If the Regex
// is already compiled with the identical pattern, Compile does no work
// and returns (AlreadyCompiled, nil). If it is compiled with a
// different pattern, the existing NFA and pattern copy are dropped
// (released to the garbage collector — Go has no manual free step here)
// before the new pattern is compiled. On any failure the Regex's
// previously-compiled state (if any) is left untouched.
func (r *Regex) Compile(pattern string) (Status, error) {
	if r == nil {
		return 0, &NullInput{what: "regex"}
	}
	if pattern == "" {
		return 0, &NullInput{what: "pattern"}
	}

	if r.compiled && r.pattern == pattern {
		return AlreadyCompiled, nil
	}

	root, err := compilePattern(pattern)
	if err != nil {
		return 0, err
	}

	automaton, err := nfa.Build(root)
	if err != nil {
		return 0, &BuildError{msg: err.Error()}
	}

	r.pattern = pattern
	r.automaton = automaton
	r.compiled = true

	return Compiled, nil
}

// compilePattern runs the lex and parse stages and maps their errors
// onto the regex package's error taxonomy.
func compilePattern(pattern string) (ast.Node, error) {
	tokens := lexer.New(pattern).TokenizeAll()

	if n := len(tokens); n > 0 && tokens[n-1].Kind == token.ERROR {
		return nil, &LexicalError{Pos: n - 1, Byte: tokens[n-1].Value}
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		if pe, ok := err.(*parser.Error); ok {
			return nil, &ParseError{inner: pe}
		}
		return nil, err
	}

	return root, nil
}

// Match requires a compiled Regex and reports whether input is accepted
// in its entirety (whole-string matching, not search — spec.md §1).
// Match never errors: an uncompiled or nil Regex simply returns false.
func (r *Regex) Match(input []byte) bool {
	if r == nil || !r.compiled {
		return false
	}
	return r.automaton.Match(input)
}

// MatchString is a convenience wrapper over Match for string input.
func (r *Regex) MatchString(input string) bool {
	return r.Match([]byte(input))
}

// Compiled reports whether the Regex currently holds a compiled NFA.
func (r *Regex) Compiled() bool {
	return r != nil && r.compiled
}

// Pattern returns the pattern the Regex is currently compiled with, or
// the empty string if it is not compiled.
func (r *Regex) Pattern() string {
	if r == nil {
		return ""
	}
	return r.pattern
}

// AST returns the parsed syntax tree for pattern without compiling it
// into a Regex, for tooling that wants to inspect or render the tree
// (see cmd/rxctl's tree view).
func AST(pattern string) (ast.Node, error) {
	return compilePattern(pattern)
}

// Destroy releases the Regex's compiled NFA and pattern copy. In Go
// this is a no-op beyond dropping references — the garbage collector
// reclaims the NFA's states once nothing reachable holds a *Regex
// pointing at them (spec.md §4.6 and §9's lifecycle; see DESIGN.md for
// why this is the one lifecycle operation the original's manual
// allocator needed that Go's memory model makes free).
func (r *Regex) Destroy() {
	if r == nil {
		return
	}
	r.automaton = nil
	r.pattern = ""
	r.compiled = false
}
