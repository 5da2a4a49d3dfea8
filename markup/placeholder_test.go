package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyPlaceholders(t *testing.T) {
	out, err := applyPlaceholders("Hello <name>, welcome to <place>!", "name", "Steve", "place", "town")
	require.NoError(t, err)
	require.Equal(t, "Hello Steve, welcome to town!", out)
}

func TestApplyPlaceholders_NoPairs(t *testing.T) {
	out, err := applyPlaceholders("Hello <name>!")
	require.NoError(t, err)
	require.Equal(t, "Hello <name>!", out)
}

func TestApplyPlaceholders_OddList(t *testing.T) {
	_, err := applyPlaceholders("Hello <name>!", "name")
	require.ErrorIs(t, err, ErrUnevenPlaceholders)
}

func TestApplyPlaceholderMap(t *testing.T) {
	out := applyPlaceholderMap("Hello <name>!", map[string]string{"name": "Alex"})
	require.Equal(t, "Hello Alex!", out)
}
