package transform

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/component"
)

// clickActions is the closed set of actions a click tag accepts.
var clickActions = map[string]struct{}{
	"open_url":          {},
	"open_file":         {},
	"run_command":       {},
	"suggest_command":   {},
	"change_page":       {},
	"copy_to_clipboard": {},
}

// Click attaches a click event to the content it applies to.
type Click struct {
	Action string
	Value  string
}

func (*Click) Name() string {
	return "click"
}

func (c *Click) Apply(current *component.Text, parent *component.Builder) *component.Text {
	current.Click = &component.ClickEvent{Action: c.Action, Value: c.Value}
	return current
}

func clickFactory(name string, args []string) (Transformation, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("tag %q needs an action and a value", name)
	}
	if _, ok := clickActions[args[0]]; !ok {
		return nil, fmt.Errorf("unknown click action %q", args[0])
	}
	return &Click{Action: args[0], Value: args[1]}, nil
}
