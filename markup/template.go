package markup

import (
	"strings"

	"github.com/Drolfothesgnir/tagmark/component"
)

// Template is a caller-supplied named value substitutable into the markup.
// String-valued templates are substituted into the text before scanning;
// component-valued templates are carried forward as a name to subtree
// mapping consulted during tag resolution.
type Template interface {
	Key() string
}

// StringTemplate substitutes a literal string for every <key> occurrence.
type StringTemplate struct {
	K string
	V string
}

// NewStringTemplate creates a string-valued template.
func NewStringTemplate(key, value string) StringTemplate {
	return StringTemplate{K: key, V: value}
}

func (t StringTemplate) Key() string {
	return t.K
}

// ComponentTemplate splices a prebuilt styled-text subtree in place of the
// <key> tag.
type ComponentTemplate struct {
	K string
	V *component.Text
}

// NewComponentTemplate creates a component-valued template.
func NewComponentTemplate(key string, value *component.Text) ComponentTemplate {
	return ComponentTemplate{K: key, V: value}
}

func (t ComponentTemplate) Key() string {
	return t.K
}

// applyTemplates runs the string-valued templates against the text and
// collects the component-valued ones into the mapping threaded through to
// tag resolution.
func applyTemplates(input string, tpls []Template) (string, map[string]*component.Text) {
	var components map[string]*component.Text

	for _, tpl := range tpls {
		switch t := tpl.(type) {
		case StringTemplate:
			input = strings.ReplaceAll(input, "<"+t.K+">", t.V)
		case ComponentTemplate:
			if components == nil {
				components = make(map[string]*component.Text)
			}
			components[t.K] = t.V
		}
	}

	return input, components
}
