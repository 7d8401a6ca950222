package lexer

import (
	"strings"
	"testing"
)

func TestNext(t *testing.T) {
	s := "let x <- 1"
	l := &lexer{input: s}

	for _, x := range []rune(s) {
		if y := l.next(); x != y {
			t.Fatalf("Expected ‘%c’ but got ‘%c’", x, y)
		}
	}

	if r := l.next(); r != eof {
		t.Fatalf("Expected eof but got ‘%c’", r)
	}
}

func assertTokens(t *testing.T, src string, want []Token) {
	t.Helper()

	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}
	if len(toks) != len(want) {
		t.Fatalf("Expected %d tokens but got %d: %v", len(want), len(toks), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("Expected token %d to be ‘%s’ but got ‘%s’",
				i, want[i], toks[i])
		}
	}
}

func TestTokenize(t *testing.T) {
	assertTokens(t, "let x <- 1 + 2 ;",
		[]Token{"let", "x", "<-", "1", "+", "2", ";"})
}

func TestTokenizeUnspaced(t *testing.T) {
	assertTokens(t, "let abc12<-x3[i]*(2+y)/4;",
		[]Token{"let", "abc12", "<-", "x3", "[", "i", "]", "*",
			"(", "2", "+", "y", ")", "/", "4", ";"})
}

func TestTokenizeOperators(t *testing.T) {
	assertTokens(t, "a<=b>=c==d!=e<f>g",
		[]Token{"a", "<=", "b", ">=", "c", "==", "d", "!=", "e",
			"<", "f", ">", "g"})
	assertTokens(t, "a<-b<-c", []Token{"a", "<-", "b", "<-", "c"})
}

func TestTokenizeWhitespace(t *testing.T) {
	assertTokens(t, "\tmain\n{\n\tcall\tf\n}\n.",
		[]Token{"main", "{", "call", "f", "}", "."})
	assertTokens(t, "", nil)
	assertTokens(t, " \n\t ", nil)
}

func TestTokenizeMalformedNumber(t *testing.T) {
	for _, src := range []string{"1abc", "let x <- 12ab ;", "a[10q]"} {
		if _, err := Tokenize(src); err == nil {
			t.Errorf("Expected an error tokenizing ‘%s’ but got none", src)
		} else if !strings.Contains(err.Error(), "malformed number") {
			t.Errorf("Expected a malformed number error but got ‘%s’", err)
		}
	}
}

func TestTokenizeDeterminism(t *testing.T) {
	src := "main var a; { let a <- 1 } ."

	a, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}
	b, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}

	if len(a) != len(b) {
		t.Fatalf("Expected %d tokens but got %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Expected token %d to be ‘%s’ but got ‘%s’",
				i, a[i], b[i])
		}
	}
}
