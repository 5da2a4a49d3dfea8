package component

import (
	"reflect"
	"strings"
)

// ClickEvent describes what happens when the rendered text is clicked.
type ClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// HoverEvent describes what is shown when the rendered text is hovered.
// Value is a full styled-text subtree, not a plain string.
type HoverEvent struct {
	Action string `json:"action"`
	Value  *Text  `json:"value"`
}

// Text represents a single node of the styled-text tree.
//
// A node carries its own literal content, an ordered list of child nodes
// and a set of style attributes. Style attributes are inherited by children
// at render time, so a node only stores the attributes set directly on it.
type Text struct {
	Content  string  `json:"text"`
	Children []*Text `json:"children,omitempty"`

	Color         string `json:"color,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underlined    bool   `json:"underlined,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Obfuscated    bool   `json:"obfuscated,omitempty"`
	Font          string `json:"font,omitempty"`
	Insertion     string `json:"insertion,omitempty"`

	Click *ClickEvent `json:"click_event,omitempty"`
	Hover *HoverEvent `json:"hover_event,omitempty"`
}

// NewText creates a leaf node with plain text content and no styling.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// Append attaches a child node to the end of the child list.
// Nil children are ignored.
func (t *Text) Append(child *Text) {
	if child == nil {
		return
	}
	t.Children = append(t.Children, child)
}

// DisplayText returns the visible text of the node: its own content
// followed by the display text of every child, in order.
func (t *Text) DisplayText() string {
	var b strings.Builder
	b.WriteString(t.Content)
	for _, c := range t.Children {
		b.WriteString(c.DisplayText())
	}
	return b.String()
}

// Equal reports whether two nodes are equal by value, including their
// style attributes and whole subtrees.
func (t *Text) Equal(other *Text) bool {
	return reflect.DeepEqual(t, other)
}

// Clone returns a deep copy of the node. The copy shares no memory with
// the original, so mutating one never affects the other.
func (t *Text) Clone() *Text {
	if t == nil {
		return nil
	}

	clone := *t

	if t.Children != nil {
		clone.Children = make([]*Text, len(t.Children))
		for i, c := range t.Children {
			clone.Children[i] = c.Clone()
		}
	}

	if t.Click != nil {
		click := *t.Click
		clone.Click = &click
	}

	if t.Hover != nil {
		clone.Hover = &HoverEvent{
			Action: t.Hover.Action,
			Value:  t.Hover.Value.Clone(),
		}
	}

	return &clone
}
