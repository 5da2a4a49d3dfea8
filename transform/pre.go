package transform

import "github.com/Drolfothesgnir/tagmark/component"

// PreName is the name of the raw-mode tag.
const PreName = "pre"

// Pre suspends tag interpretation while open. It styles nothing; its whole
// effect is the raw-mode flag the interpreter keeps while the scope is open.
type Pre struct{}

func (*Pre) Name() string {
	return PreName
}

func (*Pre) Apply(current *component.Text, parent *component.Builder) *component.Text {
	return current
}

// RawMode marks Pre as the raw-mode transformation.
func (*Pre) RawMode() {}

func preFactory(name string, args []string) (Transformation, error) {
	return &Pre{}, nil
}
