// Package render turns a styled-text tree into terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Drolfothesgnir/tagmark/component"
)

// style is the set of inheritable attributes accumulated while walking
// the tree. Children start from their parent's style and override only
// what they set themselves.
type style struct {
	color         string
	bold          bool
	italic        bool
	underlined    bool
	strikethrough bool
}

func (s style) merge(node *component.Text) style {
	if node.Color != "" {
		s.color = node.Color
	}
	s.bold = s.bold || node.Bold
	s.italic = s.italic || node.Italic
	s.underlined = s.underlined || node.Underlined
	s.strikethrough = s.strikethrough || node.Strikethrough
	return s
}

func (s style) render(text string) string {
	if text == "" {
		return ""
	}

	st := lipgloss.NewStyle().
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underlined).
		Strikethrough(s.strikethrough)

	if s.color != "" {
		hex := s.color
		if named, ok := component.NamedColors[s.color]; ok {
			hex = named
		}
		st = st.Foreground(lipgloss.Color(hex))
	}

	return st.Render(text)
}

// ANSI renders the tree as a single line of ANSI-styled terminal text.
// Interaction attributes (click, hover, insertion) have no terminal
// equivalent and are ignored.
func ANSI(node *component.Text) string {
	var b strings.Builder
	walk(node, style{}, &b)
	return b.String()
}

func walk(node *component.Text, inherited style, b *strings.Builder) {
	if node == nil {
		return
	}

	s := inherited.merge(node)
	b.WriteString(s.render(node.Content))

	for _, child := range node.Children {
		walk(child, s, b)
	}
}
