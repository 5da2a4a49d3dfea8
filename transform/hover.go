package transform

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/component"
)

// hoverActions is the closed set of actions a hover tag accepts.
var hoverActions = map[string]struct{}{
	"show_text": {},
}

// Hover attaches a hover event to the content it applies to. The hover
// value is carried as a literal-text subtree; nested markup inside the
// argument is not interpreted.
type Hover struct {
	Action string
	Value  *component.Text
}

func (*Hover) Name() string {
	return "hover"
}

func (h *Hover) Apply(current *component.Text, parent *component.Builder) *component.Text {
	current.Hover = &component.HoverEvent{Action: h.Action, Value: h.Value.Clone()}
	return current
}

func hoverFactory(name string, args []string) (Transformation, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("tag %q needs an action and a value", name)
	}
	if _, ok := hoverActions[args[0]]; !ok {
		return nil, fmt.Errorf("unknown hover action %q", args[0])
	}
	return &Hover{Action: args[0], Value: component.NewText(args[1])}, nil
}
