package ast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var styles = map[NodeType]lipgloss.Style{
	Abstract: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
	Keyword:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true),
	Ident:    lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
	Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	Control:  lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
	Operator: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
}

// Render returns an indented listing of the tree rooted at n, one node per
// line, styled by node type.
func Render(n *Node) string {
	sb := strings.Builder{}
	render(&sb, n, 0)
	return sb.String()
}

func render(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(styles[n.Type].Render(n.Label))
	sb.WriteByte('\n')
	for _, c := range n.Children {
		render(sb, c, depth+1)
	}
}
