package component

// Builder accumulates top-level nodes produced during one parse call.
//
// It is exclusively owned by a single parse invocation and must not be
// retained by code it is passed to.
type Builder struct {
	children []*Text
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds a node to the end of the accumulated child list.
// Nil nodes are ignored.
func (b *Builder) Append(node *Text) {
	if node == nil {
		return
	}
	b.children = append(b.children, node)
}

// Children returns the accumulated nodes in append order.
func (b *Builder) Children() []*Text {
	return b.children
}

// Len returns the number of accumulated nodes.
func (b *Builder) Len() int {
	return len(b.children)
}

// Last returns the most recently appended node, or nil if the builder is empty.
func (b *Builder) Last() *Text {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[len(b.children)-1]
}

// Build wraps the accumulated nodes into a root node with empty content.
func (b *Builder) Build() *Text {
	return &Text{Children: b.children}
}
