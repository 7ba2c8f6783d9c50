package nfa

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// Match runs the subset simulation of spec.md §4.5 against input and
// reports whether the whole string is accepted. A nil NFA or nil input
// rejects without panicking.
//
// The frontier and the ε-closure's visited marker are both
// *hashset.Set values, allocated fresh within each call — never stored
// on a State — so that two goroutines calling Match concurrently against the
// same compiled NFA never share, and therefore never corrupt, each
// other's bookkeeping (spec.md §5). This mirrors how
// npillmayer-gorgo's LR closure computation (lr/tables.go) keeps its
// item-set closures as gods sets rather than ad hoc maps.
func (n *NFA) Match(input []byte) bool {
	if n == nil || input == nil {
		return false
	}

	current := hashset.New()
	current.Add(n.Start)
	current = epsilonClosure(current)

	for i := 0; i < len(input); i++ {
		current = epsilonClosure(move(current, input[i]))
		if current.Size() == 0 {
			return false
		}
	}

	for _, v := range current.Values() {
		if n.Accepting[v.(*State)] {
			return true
		}
	}

	return false
}

// epsilonClosure computes the smallest superset of states closed under
// ε-transitions, using an explicit stack so that a Star/Plus back-edge
// cycle terminates instead of recursing forever.
func epsilonClosure(states *hashset.Set) *hashset.Set {
	closure := hashset.New()

	stack := make([]*State, 0, states.Size())
	for _, v := range states.Values() {
		stack = append(stack, v.(*State))
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if closure.Contains(s) {
			continue
		}
		closure.Add(s)

		for _, t := range s.Transitions {
			if t.Epsilon && !closure.Contains(t.Target) {
				stack = append(stack, t.Target)
			}
		}
	}

	return closure
}

// move returns the union, over every state in states, of the states
// reachable by consuming byte c on a non-ε transition.
func move(states *hashset.Set, c byte) *hashset.Set {
	next := hashset.New()

	for _, v := range states.Values() {
		s := v.(*State)
		for _, t := range s.Transitions {
			if !t.Epsilon && t.Symbol == c {
				next.Add(t.Target)
			}
		}
	}

	return next
}
