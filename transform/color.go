package transform

import (
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/tagmark/component"
)

// Color sets the color attribute of the content it applies to.
//
// TagName is the name the tag was opened with ("red", "#ff0000",
// "color", ...) and is what its close tag must match. Value is the
// normalized color: a lowercase name or a #rrggbb literal.
type Color struct {
	TagName string
	Value   string
}

func (c *Color) Name() string {
	return c.TagName
}

func (c *Color) Apply(current *component.Text, parent *component.Builder) *component.Text {
	current.Color = c.Value
	return current
}

// colorFactory resolves both direct color tags (<red>, <#ff0000>) and the
// parameterized form (<color:red>).
func colorFactory(name string, args []string) (Transformation, error) {
	value := name
	if name == "color" || name == "colour" || name == "c" {
		if len(args) == 0 {
			return nil, fmt.Errorf("tag %q needs a color argument", name)
		}
		value = strings.ToLower(args[0])
	}

	if !component.IsColor(value) {
		return nil, fmt.Errorf("unknown color %q", value)
	}

	return &Color{TagName: name, Value: value}, nil
}
