package lexer

import "testing"

func TestTokenType(t *testing.T) {
	cases := []struct {
		tok  Token
		want TokenType
	}{
		{"123", TokNumber},
		{"0", TokNumber},
		{"abc123", TokIdent},
		{"x", TokIdent},
		{"if", TokKeyword},
		{"main", TokKeyword},
		{"od", TokKeyword},
		{",", TokControl},
		{";", TokControl},
		{"[", TokControl},
		{"]", TokControl},
		{"{", TokControl},
		{"}", TokControl},
		{"(", TokControl},
		{")", TokControl},
		{"==", TokRelOp},
		{"!=", TokRelOp},
		{"<", TokRelOp},
		{"<=", TokRelOp},
		{">", TokRelOp},
		{">=", TokRelOp},
		{"*", TokTermOp},
		{"/", TokTermOp},
		{"+", TokExprOp},
		{"-", TokExprOp},
		{"<-", TokOtherOp},
		{".", TokOtherOp},
		{"=", TokInvalid},
		{"!", TokInvalid},
		{"@", TokInvalid},
		{"", TokInvalid},
	}

	for _, c := range cases {
		if got := c.tok.Type(); got != c.want {
			t.Errorf("Expected type %d for ‘%s’ but got %d",
				c.want, c.tok, got)
		}
	}
}

func TestIsIdent(t *testing.T) {
	// Keywords match the identifier pattern lexically; Type alone
	// resolves the overlap.
	if !Token("while").IsIdent() {
		t.Errorf("Expected ‘while’ to match the identifier pattern")
	}
	if Token("while").Type() != TokKeyword {
		t.Errorf("Expected ‘while’ to classify as a keyword")
	}

	for _, tok := range []Token{"1abc", "", "a_b", "a-b"} {
		if tok.IsIdent() {
			t.Errorf("Expected ‘%s’ not to match the identifier pattern", tok)
		}
	}
}
