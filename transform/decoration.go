package transform

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/component"
)

// Decoration kinds.
const (
	DecorationBold          = "bold"
	DecorationItalic        = "italic"
	DecorationUnderlined    = "underlined"
	DecorationStrikethrough = "strikethrough"
	DecorationObfuscated    = "obfuscated"
)

// decorationAliases maps every accepted tag name to its decoration kind.
var decorationAliases = map[string]string{
	"bold":          DecorationBold,
	"b":             DecorationBold,
	"italic":        DecorationItalic,
	"i":             DecorationItalic,
	"em":            DecorationItalic,
	"underlined":    DecorationUnderlined,
	"u":             DecorationUnderlined,
	"strikethrough": DecorationStrikethrough,
	"st":            DecorationStrikethrough,
	"obfuscated":    DecorationObfuscated,
	"obf":           DecorationObfuscated,
}

// Decoration switches one boolean style attribute on.
type Decoration struct {
	TagName string
	Kind    string
}

func (d *Decoration) Name() string {
	return d.TagName
}

func (d *Decoration) Apply(current *component.Text, parent *component.Builder) *component.Text {
	switch d.Kind {
	case DecorationBold:
		current.Bold = true
	case DecorationItalic:
		current.Italic = true
	case DecorationUnderlined:
		current.Underlined = true
	case DecorationStrikethrough:
		current.Strikethrough = true
	case DecorationObfuscated:
		current.Obfuscated = true
	}
	return current
}

func decorationFactory(name string, args []string) (Transformation, error) {
	kind, ok := decorationAliases[name]
	if !ok {
		return nil, fmt.Errorf("unknown decoration %q", name)
	}
	return &Decoration{TagName: name, Kind: kind}, nil
}
