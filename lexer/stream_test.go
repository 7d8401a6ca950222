package lexer

import (
	"errors"
	"testing"
)

func TestStreamNext(t *testing.T) {
	xs := []Token{"main", "{", "}", "."}
	s := NewStream(xs)

	for _, x := range xs {
		y, err := s.Next()
		if err != nil {
			t.Fatalf("Next failed: %s", err)
		}
		if x != y {
			t.Errorf("Expected ‘%s’ but got ‘%s’", x, y)
		}
	}

	if _, err := s.Next(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("Expected ErrEndOfStream but got %v", err)
	}
}

func TestStreamPeek(t *testing.T) {
	s := NewStream([]Token{"a", "b"})

	f := func(tok Token, want Token) {
		t.Helper()
		if tok != want {
			t.Errorf("Expected ‘%s’ but got ‘%s’", want, tok)
		}
	}

	x, _ := s.Peek()
	f(x, "a")
	x, _ = s.Peek()
	f(x, "a")
	x, _ = s.Next()
	f(x, "a")
	x, _ = s.Peek()
	f(x, "b")
	x, _ = s.Next()
	f(x, "b")

	if _, err := s.Peek(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("Expected ErrEndOfStream but got %v", err)
	}
}

func TestStreamSeekTo(t *testing.T) {
	s := NewStream([]Token{"var", "a", ";", "main", "{", "}"})

	if err := s.SeekTo("main"); err != nil {
		t.Fatalf("SeekTo failed: %s", err)
	}
	if tok, _ := s.Peek(); tok != "main" {
		t.Fatalf("Expected ‘main’ but got ‘%s’", tok)
	}
}

func TestStreamSeekToForwardOnly(t *testing.T) {
	// The target also occurs before the cursor; SeekTo must find the
	// occurrence ahead, never rewind to the one behind.
	s := NewStream([]Token{"a", "b", "a", "c"})
	s.Next()
	s.Next()

	if err := s.SeekTo("a"); err != nil {
		t.Fatalf("SeekTo failed: %s", err)
	}
	s.Next()
	if tok, _ := s.Peek(); tok != "c" {
		t.Fatalf("Expected ‘c’ after the second ‘a’ but got ‘%s’", tok)
	}

	// Behind the cursor only: not found.
	if err := s.SeekTo("b"); err == nil {
		t.Fatalf("Expected an error seeking backwards but got none")
	}
}

func TestStreamSeekToMissing(t *testing.T) {
	s := NewStream([]Token{"a", "b"})
	if err := s.SeekTo("main"); err == nil {
		t.Fatalf("Expected an error but got none")
	}
}
