package transform

import "github.com/Drolfothesgnir/tagmark/component"

// Template splices a prebuilt styled-text subtree into the stream. It is
// consumed by exactly the next content node: the subtree is appended to the
// builder right before that node, then the transformation is discarded.
type Template struct {
	Key   string
	Value *component.Text
}

func (t *Template) Name() string {
	return t.Key
}

func (t *Template) Apply(current *component.Text, parent *component.Builder) *component.Text {
	return current
}

func (t *Template) ApplyOneTime(current *component.Text, parent *component.Builder, active *Scope) *component.Text {
	parent.Append(t.Value)
	return current
}
