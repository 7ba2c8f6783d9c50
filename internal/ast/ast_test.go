package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs char", nil, Char{Value: 'a'}, false},
		{"same char", Char{Value: 'a'}, Char{Value: 'a'}, true},
		{"different char", Char{Value: 'a'}, Char{Value: 'b'}, false},
		{"same star", Star{Child: Char{Value: 'a'}}, Star{Child: Char{Value: 'a'}}, true},
		{"star vs plus", Star{Child: Char{Value: 'a'}}, Plus{Child: Char{Value: 'a'}}, false},
		{
			"same concat",
			Concat{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}},
			Concat{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}},
			true,
		},
		{
			"concat operand order matters",
			Concat{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}},
			Concat{Left: Char{Value: 'b'}, Right: Char{Value: 'a'}},
			false,
		},
		{
			"nested or under star",
			Star{Child: Or{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}}},
			Star{Child: Or{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}}},
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestEqual_matchesGoCmp cross-checks Equal against go-cmp's own
// structural diff for a handful of trees, so a future edit to Equal
// that silently drops a field comparison gets caught by an independent
// comparator (spec Testable Property 2: parse determinism needs a
// reliable structural-equality check).
func TestEqual_matchesGoCmp(t *testing.T) {
	trees := []Node{
		Char{Value: 'x'},
		Concat{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}},
		Or{Left: Char{Value: 'a'}, Right: Char{Value: 'b'}},
		Star{Child: Question{Child: Plus{Child: Char{Value: 'z'}}}},
	}

	for _, a := range trees {
		for _, b := range trees {
			want := cmp.Equal(a, b)
			if got := Equal(a, b); got != want {
				t.Errorf("Equal(%v, %v) = %v, want %v (go-cmp diff: %s)", a, b, got, want, cmp.Diff(a, b))
			}
		}
	}
}
