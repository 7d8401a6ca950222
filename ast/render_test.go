package ast

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	root := New(Keyword, "main")
	body := New(Abstract, "body")
	root.Append(body)
	body.Append(New(Ident, "x"), New(Number, "42"))

	s := Render(root)
	for _, label := range []string{"main", "body", "x", "42"} {
		if !strings.Contains(s, label) {
			t.Errorf("Expected render to contain ‘%s’ but it did not", label)
		}
	}
	if n := strings.Count(s, "\n"); n != 4 {
		t.Errorf("Expected 4 lines but got %d", n)
	}
}
