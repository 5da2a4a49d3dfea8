package transform

import (
	"strings"

	"github.com/Drolfothesgnir/tagmark/component"
	"github.com/Drolfothesgnir/tagmark/scanner"
)

// PlaceholderResolver resolves a tag name to a prebuilt styled-text subtree
// when the name is not a registered tag and not a caller-supplied template.
// Returning nil means the name stays unresolved.
type PlaceholderResolver func(name string) *component.Text

// Factory builds a transformation for a tag. It receives the lowercased tag
// name it was registered under and the unquoted parameter values. Returning
// an error means the tag cannot be resolved with these parameters.
type Factory func(name string, args []string) (Transformation, error)

// Registry maps tag names to transformation factories.
//
// A registry is never mutated by parsing, so one instance is safe to share
// across concurrent parse calls once populated.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a factory to one or more tag names. Names are matched
// case-insensitively.
func (r *Registry) Register(f Factory, names ...string) {
	for _, name := range names {
		r.factories[strings.ToLower(name)] = f
	}
}

// Exists reports whether the name is a registered tag or a hex color
// literal. Caller-supplied templates are not consulted: a close tag for a
// template name is not a real close tag.
func (r *Registry) Exists(name string) bool {
	if _, ok := r.factories[strings.ToLower(name)]; ok {
		return true
	}
	return component.IsHexColor(name)
}

// Get resolves a tag to a transformation, or nil when the tag is unknown or
// its parameters are invalid. Resolution order: registered factories, hex
// color literals, caller-supplied templates, then the placeholder resolver.
func (r *Registry) Get(
	name string,
	args []scanner.Token,
	templates map[string]*component.Text,
	resolver PlaceholderResolver,
) Transformation {

	lower := strings.ToLower(name)

	if f, ok := r.factories[lower]; ok {
		t, err := f(lower, Values(args))
		if err != nil {
			return nil
		}
		return t
	}

	if component.IsHexColor(lower) {
		return &Color{TagName: name, Value: lower}
	}

	if tpl, ok := templates[name]; ok {
		return &Template{Key: name, Value: tpl.Clone()}
	}

	if resolver != nil {
		if sub := resolver(name); sub != nil {
			return &Template{Key: name, Value: sub.Clone()}
		}
	}

	return nil
}

// DefaultRegistry returns a registry populated with the built-in tag
// catalog: colors, decorations, pre, insertion, click, hover, font and
// reset.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	colorNames := make([]string, 0, len(component.NamedColors)+3)
	for name := range component.NamedColors {
		colorNames = append(colorNames, name)
	}
	colorNames = append(colorNames, "color", "colour", "c")
	r.Register(colorFactory, colorNames...)

	decorationNames := make([]string, 0, len(decorationAliases))
	for name := range decorationAliases {
		decorationNames = append(decorationNames, name)
	}
	r.Register(decorationFactory, decorationNames...)

	r.Register(preFactory, PreName)
	r.Register(insertionFactory, "insertion", "insert")
	r.Register(clickFactory, "click")
	r.Register(hoverFactory, "hover")
	r.Register(fontFactory, "font")
	r.Register(resetFactory, "reset", "r")

	return r
}
