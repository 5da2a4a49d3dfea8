// Package markup interprets bracketed markup tags interleaved with plain
// text into a tree of styled text nodes.
//
// Raw text goes through placeholder substitution, is scanned into tokens
// and then walked by the tag interpreter, which opens and closes tag
// scopes by name, applies or defers the effect each tag carries and
// recovers from malformed or unrecognized tags by re-absorbing them as
// literal text. The Escape and Strip utilities operate on the same tag
// grammar as an independent path over raw text.
package markup

import (
	"github.com/Drolfothesgnir/tagmark/component"
	"github.com/Drolfothesgnir/tagmark/scanner"
	"github.com/Drolfothesgnir/tagmark/transform"
)

// Markup is the interpreter facade. A single instance is immutable after
// construction and safe to share across concurrent parse calls.
type Markup struct {
	registry *transform.Registry
	resolver transform.PlaceholderResolver
	strict   bool
}

// Option configures a Markup instance.
type Option func(*Markup)

// WithRegistry replaces the default tag registry.
func WithRegistry(r *transform.Registry) Option {
	return func(m *Markup) {
		m.registry = r
	}
}

// WithPlaceholderResolver installs a resolver consulted for tag names that
// are neither registered tags nor caller-supplied templates.
func WithPlaceholderResolver(r transform.PlaceholderResolver) Option {
	return func(m *Markup) {
		m.resolver = r
	}
}

// Strict makes any grammar violation fail the parse with a *ParseError
// instead of being reported as a Diagnostic and recovered from.
func Strict() Option {
	return func(m *Markup) {
		m.strict = true
	}
}

// New creates a Markup with the built-in tag catalog, no placeholder
// resolver and lenient error handling.
func New(opts ...Option) *Markup {
	m := &Markup{registry: transform.DefaultRegistry()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result defines the output of one parse call.
type Result struct {
	// RawInput is the original input string, before placeholder
	// substitution.
	RawInput string `json:"raw_input"`

	// Node is the root of the parsed styled-text tree.
	Node *component.Text `json:"node"`

	// Diagnostics lists the non-critical issues detected during lenient
	// interpretation. Parsing still succeeded, but parts of the input were
	// re-absorbed as literal text.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Parse interprets the input after substituting the flat key/value
// placeholder list: every literal <key> occurrence is replaced with its
// value. An odd-length list fails fast with ErrUnevenPlaceholders.
func (m *Markup) Parse(input string, placeholders ...string) (Result, error) {
	replaced, err := applyPlaceholders(input, placeholders...)
	if err != nil {
		return Result{RawInput: input}, err
	}
	return m.run(input, replaced, nil)
}

// ParseMap interprets the input after substituting the placeholder map.
func (m *Markup) ParseMap(input string, placeholders map[string]string) (Result, error) {
	return m.run(input, applyPlaceholderMap(input, placeholders), nil)
}

// ParseTemplates interprets the input with typed templates: string-valued
// templates are substituted into the text before scanning, component-valued
// templates are consulted during tag resolution and splice prebuilt
// subtrees into the tree.
func (m *Markup) ParseTemplates(input string, tpls ...Template) (Result, error) {
	replaced, components := applyTemplates(input, tpls)
	return m.run(input, replaced, components)
}

func (m *Markup) run(raw, replaced string, templates map[string]*component.Text) (Result, error) {
	tokens := scanner.Scan(replaced)

	node, diags, err := parse(tokens, m.registry, templates, m.resolver, m.strict)
	if err != nil {
		return Result{RawInput: raw, Diagnostics: diags}, err
	}

	return Result{RawInput: raw, Node: node, Diagnostics: diags}, nil
}
