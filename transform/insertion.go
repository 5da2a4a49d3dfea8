package transform

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/component"
)

// Insertion attaches a shift-click insertion string to the content it
// applies to. When its tag is still open at the end of the stream, the
// interpreter applies it once more to the last produced node.
type Insertion struct {
	TagName string
	Value   string
}

func (i *Insertion) Name() string {
	return i.TagName
}

func (i *Insertion) Apply(current *component.Text, parent *component.Builder) *component.Text {
	current.Insertion = i.Value
	return current
}

// Inserting marks Insertion for the end-of-stream flush.
func (*Insertion) Inserting() {}

func insertionFactory(name string, args []string) (Transformation, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("tag %q needs a value argument", name)
	}
	return &Insertion{TagName: name, Value: args[0]}, nil
}
