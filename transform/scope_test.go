package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScope_RemoveLastMatch_PicksMostRecent(t *testing.T) {
	s := NewScope()

	inner := &Insertion{TagName: "insertion", Value: "inner"}
	outer := &Insertion{TagName: "insertion", Value: "outer"}

	s.Push(outer)
	s.Push(&Decoration{TagName: "bold", Kind: DecorationBold})
	s.Push(inner)

	removed, ok := s.RemoveLastMatch(func(tr Transformation) bool {
		return tr.Name() == "insertion"
	})
	require.True(t, ok)
	require.Same(t, Transformation(inner), removed)

	// the outer scope and the unrelated one survive, in order
	require.Equal(t, 2, s.Len())
	require.Equal(t, "insertion", s.Items()[0].Name())
	require.Equal(t, "bold", s.Items()[1].Name())
}

func TestScope_RemoveLastMatch_NoMatch(t *testing.T) {
	s := NewScope()
	s.Push(&Pre{})

	_, ok := s.RemoveLastMatch(func(tr Transformation) bool {
		return tr.Name() == "bold"
	})
	require.False(t, ok)
	require.Equal(t, 1, s.Len())
}

func TestScope_RemoveFirstEqual_MatchesByValue(t *testing.T) {
	s := NewScope()

	a := &Click{Action: "run_command", Value: "/a"}
	b := &Click{Action: "run_command", Value: "/b"}
	s.Push(a)
	s.Push(b)

	// a fresh value equal to b removes b, not a
	require.True(t, s.RemoveFirstEqual(&Click{Action: "run_command", Value: "/b"}))
	require.Equal(t, 1, s.Len())
	require.Same(t, Transformation(a), s.Items()[0])

	require.False(t, s.RemoveFirstEqual(&Click{Action: "run_command", Value: "/missing"}))
}

func TestScope_Clear(t *testing.T) {
	s := NewScope()
	s.Push(&Pre{})
	s.Push(&Font{Value: "uniform"})

	s.Clear()
	require.Equal(t, 0, s.Len())
}
