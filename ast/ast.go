package ast

import "fmt"

// See grammar/grammar.ebnf for details

// NodeType classifies a parse-tree node.
type NodeType int

const (
	// Abstract nodes stand for grammar elements that have no token of
	// their own, like condition, expression, or designator.
	Abstract NodeType = iota

	Keyword  // A language keyword, e.g. ‘if’ or ‘while’
	Ident    // An identifier; the label holds its name
	Number   // An integer literal; the label holds its digits
	Control  // A control character, e.g. a bracket or semicolon
	Operator // A relational, term, expression, or other operator
)

func (t NodeType) String() string {
	switch t {
	case Abstract:
		return "abstract"
	case Keyword:
		return "keyword"
	case Ident:
		return "ident"
	case Number:
		return "number"
	case Control:
		return "control"
	case Operator:
		return "operator"
	}
	panic("unreachable")
}

// Node is a vertex of the parse tree.  The parent pointer is a non-owning
// back-reference used only for navigation; ownership runs strictly
// downwards through Children.  A node is created once and never moves to a
// different parent.
type Node struct {
	Type     NodeType
	Label    string
	Parent   *Node
	Children []*Node
}

// New creates a detached node.  Attaching it to a parent is a separate,
// explicit step via Append.
func New(t NodeType, label string) *Node {
	return &Node{Type: t, Label: label}
}

// Append attaches children to the end of n's child list, in order, and
// sets their parent back-references.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		c.Parent = n
	}
	n.Children = append(n.Children, children...)
}

func (n *Node) String() string {
	return fmt.Sprintf("%s ‘%s’", n.Type, n.Label)
}

// Walk calls fn for n and every node below it in depth-first,
// left-to-right order.
func Walk(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Equal reports whether two trees have the same shape, types, and labels.
// Parent pointers are not compared; they are implied by the shape.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Label != b.Label ||
		len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
