package token

import "testing"

func TestToken_Display(t *testing.T) {
	cases := []struct {
		name string
		tok  Token
		want string
	}{
		{"char", Token{Kind: CHAR, Value: 'a'}, "a"},
		{"lparen", Token{Kind: LPAREN}, "("},
		{"rparen", Token{Kind: RPAREN}, ")"},
		{"star", Token{Kind: STAR}, "*"},
		{"plus", Token{Kind: PLUS}, "+"},
		{"question", Token{Kind: QUESTION}, "?"},
		{"or", Token{Kind: OR}, "|"},
		{"eof", Token{Kind: EOF}, ""},
		{"error", Token{Kind: ERROR, Value: 0x01}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tok.Display(); got != tc.want {
				t.Errorf("Display() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if CHAR.String() != "CHAR" {
		t.Errorf("CHAR.String() = %q, want CHAR", CHAR.String())
	}
	if Kind(999).String() != "UNKNOWN" {
		t.Errorf("unknown kind did not stringify to UNKNOWN")
	}
}
