// Package ast defines the typed syntax tree produced by internal/parser and
// consumed by internal/nfa's Thompson-construction builder.
//
// The node shapes follow the teacher's app/ast package (a tagged Node
// interface with one struct per variant), trimmed to the six variants
// spec.md §3 names: Char, Star, Plus, Question, Or, Concat. Capture
// groups, character classes, anchors and the dot-wildcard that the
// teacher's ast package also defines are out of scope here (spec.md
// Non-goals) and are not carried over.
package ast

// Node is a value in the syntax tree. Every non-leaf Node has non-nil
// children; the tree is finite, acyclic, and each node has exactly one
// parent in practice (the tree is never shared between two positions).
type Node interface {
	node()
}

// Char is a leaf matching a single literal byte.
type Char struct {
	Value byte
}

// Star is `child*`: zero or more repetitions.
type Star struct {
	Child Node
}

// Plus is `child+`: one or more repetitions.
type Plus struct {
	Child Node
}

// Question is `child?`: zero or one repetition.
type Question struct {
	Child Node
}

// Or is `left|right`: alternation.
type Or struct {
	Left, Right Node
}

// Concat is `left right`: concatenation (sequencing).
type Concat struct {
	Left, Right Node
}

func (Char) node()     {}
func (Star) node()     {}
func (Plus) node()     {}
func (Question) node() {}
func (Or) node()       {}
func (Concat) node()   {}

// Equal reports whether a and b are structurally equal: same variant tag,
// and for Char the same byte, and for multi-child variants, pairwise
// equal children. A nil/nil comparison is equal; nil vs. non-nil is not.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Char:
		bv, ok := b.(Char)
		return ok && av.Value == bv.Value

	case Star:
		bv, ok := b.(Star)
		return ok && Equal(av.Child, bv.Child)

	case Plus:
		bv, ok := b.(Plus)
		return ok && Equal(av.Child, bv.Child)

	case Question:
		bv, ok := b.(Question)
		return ok && Equal(av.Child, bv.Child)

	case Or:
		bv, ok := b.(Or)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)

	case Concat:
		bv, ok := b.(Concat)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)

	default:
		return false
	}
}
