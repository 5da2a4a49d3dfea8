package transform

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/component"
)

// Font sets the font attribute of the content it applies to.
type Font struct {
	Value string
}

func (*Font) Name() string {
	return "font"
}

func (f *Font) Apply(current *component.Text, parent *component.Builder) *component.Text {
	current.Font = f.Value
	return current
}

func fontFactory(name string, args []string) (Transformation, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("tag %q needs a font argument", name)
	}
	return &Font{Value: args[0]}, nil
}
