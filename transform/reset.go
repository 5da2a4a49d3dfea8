package transform

import "github.com/Drolfothesgnir/tagmark/component"

// Reset closes every open scope the moment its tag is parsed. It runs
// instantly and never enters the active scope itself, so it has no close
// tag to match.
type Reset struct {
	TagName string
}

func (r *Reset) Name() string {
	return r.TagName
}

func (r *Reset) Apply(current *component.Text, parent *component.Builder) *component.Text {
	return current
}

func (r *Reset) ApplyInstant(parent *component.Builder, active *Scope) {
	active.Clear()
}

func resetFactory(name string, args []string) (Transformation, error) {
	return &Reset{TagName: name}, nil
}
