package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// unescape removes one layer of escape markers.
func unescape(text string) string {
	return strings.ReplaceAll(text, `\<`, "<")
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no tags",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "simple tags",
			input: "<red>hi</red>",
			want:  `\<red>hi\</red>`,
		},
		{
			name:  "tag with parameters",
			input: "<click:run_command:'/say hi'>go",
			want:  `\<click:run_command:'/say hi'>go`,
		},
		{
			name:  "quoted argument is escaped recursively",
			input: "<hover:show_text:'<red>hi</red>'>x</hover>",
			want:  `\<hover:show_text:'\<red>hi\</red>'>x\</hover>`,
		},
		{
			name:  "lone bracket stays",
			input: "2 < 3",
			want:  "2 < 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

func TestEscape_UnescapeReversesIt(t *testing.T) {
	inputs := []string{
		"plain text",
		"<red>hi</red>",
		"<click:run_command:'/say hi'>go</click>",
		"<hover:show_text:'<red>hi</red>'>x</hover>",
		"2 < 3 and 4 > 1",
		"a<>b",
	}

	for _, input := range inputs {
		require.Equal(t, input, unescape(Escape(input)), "input %q", input)
	}
}

func TestEscape_KeepsExistingMarkers(t *testing.T) {
	inputs := []string{
		"<red>hi</red>",
		"<hover:show_text:'<red>hi</red>'>x</hover>",
	}

	for _, input := range inputs {
		once := Escape(input)
		twice := Escape(once)

		// re-escaping adds a new layer without touching the markers that are
		// already there: their count is unchanged and peeling one layer off
		// gives back the once-escaped text exactly
		require.Equal(t, strings.Count(once, `\<`), strings.Count(twice, `\<`), "input %q", input)
		require.Equal(t, once, unescape(twice), "input %q", input)
	}
}

func TestEscape_RoundTripsThroughParse(t *testing.T) {
	input := "<red>hi</red>"

	res, err := New().Parse(Escape(input))
	require.NoError(t, err)
	require.Equal(t, input, res.Node.DisplayText())
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no tags",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "styled text",
			input: "You <bold>win</bold>!",
			want:  "You win!",
		},
		{
			name:  "tag with parameters",
			input: "<click:run_command:'/say hi'>go</click>",
			want:  "go",
		},
		{
			name:  "empty brackets are not tag shaped",
			input: "a<>b",
			want:  "a<>b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Strip(tt.input))
		})
	}
}
