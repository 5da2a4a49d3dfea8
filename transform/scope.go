package transform

import "reflect"

// Scope is the ordered collection of currently open tag effects.
//
// Insertion order is significant: effects apply to content oldest first.
// Removal is by predicate searched from the most recently opened entry
// backward, not strict LIFO, so tags may close out of nesting order.
type Scope struct {
	items []Transformation
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Push appends a transformation as the most recently opened entry.
func (s *Scope) Push(t Transformation) {
	s.items = append(s.items, t)
}

// Items returns the open transformations, oldest first. The returned slice
// is the scope's own storage and must not be mutated by the caller.
func (s *Scope) Items() []Transformation {
	return s.items
}

// Len returns the number of open transformations.
func (s *Scope) Len() int {
	return len(s.items)
}

// Clear drops every open transformation.
func (s *Scope) Clear() {
	s.items = s.items[:0]
}

// RemoveLastMatch removes and returns the most recently opened
// transformation matching the predicate. It reports ok == false when
// nothing matches.
func (s *Scope) RemoveLastMatch(pred func(Transformation) bool) (Transformation, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if pred(s.items[i]) {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return removed, true
		}
	}
	return nil, false
}

// RemoveFirstEqual removes the oldest open transformation equal by value to
// the given one. Equality is deep, so parameterized tags can disambiguate
// among several same-named open scopes.
func (s *Scope) RemoveFirstEqual(t Transformation) bool {
	for i, item := range s.items {
		if reflect.DeepEqual(item, t) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
