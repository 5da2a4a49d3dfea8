// Package transform defines the effects bound to markup tags and the
// registry that resolves a tag name to one.
package transform

import "github.com/Drolfothesgnir/tagmark/component"

// Transformation is the effect a resolved tag applies to content.
//
// Name is the tag name used for close-tag matching. Apply receives the
// content node currently being produced and the root builder; it returns
// the node to keep working with, which may be the same node mutated, a
// replacement, or nil to drop the content. Implementations must not retain
// the builder beyond the call.
type Transformation interface {
	Name() string
	Apply(current *component.Text, parent *component.Builder) *component.Text
}

// InstantApply transformations run against the builder the moment their
// opening tag is parsed. They never enter the active scope and have no
// close tag to match.
type InstantApply interface {
	Transformation
	ApplyInstant(parent *component.Builder, active *Scope)
}

// OneTime transformations are deferred until the next content node and are
// consumed exactly once. They may push further transformations onto the
// active scope while being consumed.
type OneTime interface {
	Transformation
	ApplyOneTime(current *component.Text, parent *component.Builder, active *Scope) *component.Text
}

// Inserter marks transformations that, when still open at the end of the
// stream, are applied once more against the last produced node.
type Inserter interface {
	Transformation
	Inserting()
}

// Raw marks the transformation that suspends tag interpretation while its
// scope is open.
type Raw interface {
	Transformation
	RawMode()
}
