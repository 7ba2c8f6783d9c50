package nfa

import (
	"fmt"

	"github.com/mkpro118/regex-engine-go/internal/ast"
)

// fragment is a sub-NFA under construction: exactly one start and one
// accept state, per Thompson's invariant (spec.md §4.4).
type fragment struct {
	start, accept *State
}

// builder owns every state it allocates for a single Build call. It is
// never shared: each Build gets its own builder, so concurrent compiles
// never contend over state IDs (spec.md §5: "Lexer, Parser, and Builder
// state is never shared").
type builder struct {
	nextID int
}

func (b *builder) newState() *State {
	s := &State{ID: b.nextID}
	b.nextID++
	return s
}

// Build runs Thompson construction over an AST root, per the six cases
// of spec.md §4.4, and returns an NFA with exactly one start state and
// one combined accept state. Every AST leaf and every constructed state
// ends up reachable from the returned NFA's Start.
func Build(root ast.Node) (*NFA, error) {
	if root == nil {
		return nil, fmt.Errorf("nfa: cannot build from a nil syntax tree")
	}

	b := &builder{}

	frag, err := b.buildNode(root)
	if err != nil {
		return nil, err
	}

	frag.accept.IsAccept = true

	return &NFA{
		Start:     frag.start,
		States:    gatherReachable(frag.start),
		Accepting: map[*State]bool{frag.accept: true},
	}, nil
}

func (b *builder) buildNode(node ast.Node) (fragment, error) {
	switch n := node.(type) {
	case ast.Char:
		return b.buildChar(n.Value), nil

	case ast.Concat:
		left, err := b.buildNode(n.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := b.buildNode(n.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.concatenate(left, right), nil

	case ast.Or:
		left, err := b.buildNode(n.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := b.buildNode(n.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.alternate(left, right), nil

	case ast.Star:
		child, err := b.buildNode(n.Child)
		if err != nil {
			return fragment{}, err
		}
		return b.star(child), nil

	case ast.Plus:
		child, err := b.buildNode(n.Child)
		if err != nil {
			return fragment{}, err
		}
		return b.plus(child), nil

	case ast.Question:
		child, err := b.buildNode(n.Child)
		if err != nil {
			return fragment{}, err
		}
		return b.question(child), nil

	default:
		return fragment{}, fmt.Errorf("nfa: unsupported ast node %T", node)
	}
}

// buildChar: q0 --c--> q1
func (b *builder) buildChar(c byte) fragment {
	start := b.newState()
	accept := b.newState()
	start.addSymbol(accept, c)
	return fragment{start: start, accept: accept}
}

// concatenate: fL.accept --ε--> fR.start; fL's accept loses accepting
// status as soon as it is absorbed into a larger fragment.
func (b *builder) concatenate(left, right fragment) fragment {
	left.accept.addEpsilon(right.start)
	return fragment{start: left.start, accept: right.accept}
}

// alternate: new q0 branches via ε to both starts; both old accepts
// join via ε into a new combined accept q1.
func (b *builder) alternate(left, right fragment) fragment {
	start := b.newState()
	accept := b.newState()

	start.addEpsilon(left.start)
	start.addEpsilon(right.start)
	left.accept.addEpsilon(accept)
	right.accept.addEpsilon(accept)

	return fragment{start: start, accept: accept}
}

// star: q0 --ε--> q1 (enter), q0 --ε--> q3 (skip), q2 --ε--> q1 (repeat),
// q2 --ε--> q3 (exit).
func (b *builder) star(x fragment) fragment {
	start := b.newState()
	accept := b.newState()

	start.addEpsilon(x.start)
	start.addEpsilon(accept)
	x.accept.addEpsilon(x.start)
	x.accept.addEpsilon(accept)

	return fragment{start: start, accept: accept}
}

// plus: like star but without the q0 --ε--> q3 skip edge, so at least
// one repetition is required.
func (b *builder) plus(x fragment) fragment {
	start := b.newState()
	accept := b.newState()

	start.addEpsilon(x.start)
	x.accept.addEpsilon(x.start)
	x.accept.addEpsilon(accept)

	return fragment{start: start, accept: accept}
}

// question: q0 --ε--> q3 (skip), q0 --ε--> q1 (enter), q2 --ε--> q3
// (taken).
func (b *builder) question(x fragment) fragment {
	start := b.newState()
	accept := b.newState()

	start.addEpsilon(accept)
	start.addEpsilon(x.start)
	x.accept.addEpsilon(accept)

	return fragment{start: start, accept: accept}
}
