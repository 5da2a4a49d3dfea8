package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTypes []Type
		wantVals  []string
	}{
		{
			name:      "plain text",
			input:     "hello world",
			wantTypes: []Type{TypeString},
			wantVals:  []string{"hello world"},
		},
		{
			name:      "angle brackets without tag shape stay text",
			input:     "2 < 3 and 4 > 1",
			wantTypes: []Type{TypeString},
			wantVals:  []string{"2 < 3 and 4 > 1"},
		},
		{
			name:      "simple open tag",
			input:     "<red>hi",
			wantTypes: []Type{TypeOpenTagStart, TypeName, TypeTagEnd, TypeString},
			wantVals:  []string{"<", "red", ">", "hi"},
		},
		{
			name:      "close tag",
			input:     "hi</red>",
			wantTypes: []Type{TypeString, TypeCloseTagStart, TypeName, TypeTagEnd},
			wantVals:  []string{"hi", "</", "red", ">"},
		},
		{
			name:      "hex color tag",
			input:     "<#ff0000>x",
			wantTypes: []Type{TypeOpenTagStart, TypeName, TypeTagEnd, TypeString},
			wantVals:  []string{"<", "#ff0000", ">", "x"},
		},
		{
			name:  "parameters with quoted segment",
			input: "<click:run_command:'/say hi'>x",
			wantTypes: []Type{
				TypeOpenTagStart, TypeName,
				TypeParamSeparator, TypeName,
				TypeParamSeparator, TypeName,
				TypeTagEnd, TypeString,
			},
			wantVals: []string{"<", "click", ":", "run_command", ":", "'/say hi'", ">", "x"},
		},
		{
			name:      "escaped open tag",
			input:     `\<red>hi`,
			wantTypes: []Type{TypeEscapedOpenTagStart, TypeName, TypeTagEnd, TypeString},
			wantVals:  []string{"<", "red", ">", "hi"},
		},
		{
			name:      "escaped close tag",
			input:     `hi\</red>`,
			wantTypes: []Type{TypeString, TypeEscapedCloseTagStart, TypeName, TypeTagEnd},
			wantVals:  []string{"hi", "</", "red", ">"},
		},
		{
			name:      "unterminated tag is text",
			input:     "<red oops",
			wantTypes: []Type{TypeString},
			wantVals:  []string{"<red oops"},
		},
		{
			name:      "empty tag is text",
			input:     "a<>b",
			wantTypes: []Type{TypeString},
			wantVals:  []string{"a<>b"},
		},
		{
			name:  "raw mode body is one literal token",
			input: "<pre><red>literal</red></pre>",
			wantTypes: []Type{
				TypeOpenTagStart, TypeName, TypeTagEnd,
				TypeString,
				TypeCloseTagStart, TypeName, TypeTagEnd,
			},
			wantVals: []string{"<", "pre", ">", "<red>literal</red>", "</", "pre", ">"},
		},
		{
			name:      "raw mode without close runs to the end",
			input:     "<pre><red>x",
			wantTypes: []Type{TypeOpenTagStart, TypeName, TypeTagEnd, TypeString},
			wantVals:  []string{"<", "pre", ">", "<red>x"},
		},
		{
			name:  "raw mode close tag matched case insensitively",
			input: "<pre>x</PRE>",
			wantTypes: []Type{
				TypeOpenTagStart, TypeName, TypeTagEnd,
				TypeString,
				TypeCloseTagStart, TypeName, TypeTagEnd,
			},
			wantVals: []string{"<", "pre", ">", "x", "</", "PRE", ">"},
		},
		{
			name:  "raw mode body with multibyte runes survives verbatim",
			input: "<pre>ȺȺȺ</pre>",
			wantTypes: []Type{
				TypeOpenTagStart, TypeName, TypeTagEnd,
				TypeString,
				TypeCloseTagStart, TypeName, TypeTagEnd,
			},
			wantVals: []string{"<", "pre", ">", "ȺȺȺ", "</", "pre", ">"},
		},
		{
			name:  "raw mode body with case folding runes survives verbatim",
			input: "<pre>İİİ</pre>",
			wantTypes: []Type{
				TypeOpenTagStart, TypeName, TypeTagEnd,
				TypeString,
				TypeCloseTagStart, TypeName, TypeTagEnd,
			},
			wantVals: []string{"<", "pre", ">", "İİİ", "</", "pre", ">"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Scan(tt.input)

			require.Len(t, tokens, len(tt.wantTypes))
			for i, tok := range tokens {
				require.Equal(t, tt.wantTypes[i], tok.Type, "token %d type", i)
				require.Equal(t, tt.wantVals[i], tok.Val, "token %d val", i)
			}
		})
	}
}

func TestScan_Positions(t *testing.T) {
	tokens := Scan("ab<red>c")

	require.Len(t, tokens, 5)

	require.Equal(t, 0, tokens[0].Pos)
	require.Equal(t, 2, tokens[0].Len)

	require.Equal(t, 2, tokens[1].Pos) // "<"
	require.Equal(t, 3, tokens[2].Pos) // "red"
	require.Equal(t, 3, tokens[2].Len)
	require.Equal(t, 6, tokens[3].Pos) // ">"
	require.Equal(t, 7, tokens[4].Pos) // "c"
}

func TestScan_RawBodyMultibytePositions(t *testing.T) {
	tokens := Scan("<pre>ȺȺȺ</pre>")

	require.Len(t, tokens, 7)

	body := tokens[3]
	require.Equal(t, TypeString, body.Type)
	require.Equal(t, 5, body.Pos)
	require.Equal(t, 6, body.Len)

	require.Equal(t, TypeCloseTagStart, tokens[4].Type)
	require.Equal(t, 11, tokens[4].Pos)
}

func TestScan_EscapedMarkerKeepsSourceLength(t *testing.T) {
	tokens := Scan(`\<red>`)

	require.Len(t, tokens, 3)
	require.Equal(t, TypeEscapedOpenTagStart, tokens[0].Type)
	// Val drops the backslash, Len still covers it
	require.Equal(t, "<", tokens[0].Val)
	require.Equal(t, 0, tokens[0].Pos)
	require.Equal(t, 2, tokens[0].Len)
}

func TestScan_BackslashWithoutTagStaysText(t *testing.T) {
	tokens := Scan(`a\b and \< c`)

	require.Len(t, tokens, 1)
	require.Equal(t, TypeString, tokens[0].Type)
	require.Equal(t, `a\b and \< c`, tokens[0].Val)
}

func TestScan_MergesAdjacentStrings(t *testing.T) {
	// the escaped quote inside makes the span invalid, everything stays text
	tokens := Scan(`x<a:'unclosed y`)

	require.Len(t, tokens, 1)
	require.Equal(t, TypeString, tokens[0].Type)
	require.Equal(t, `x<a:'unclosed y`, tokens[0].Val)
}
