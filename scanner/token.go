package scanner

// Type defines the kind of token the scanner produces.
type Type int

const (
	// TypeString is a run of literal text outside any tag.
	TypeString Type = iota

	// TypeOpenTagStart is the "<" marker opening a tag.
	TypeOpenTagStart

	// TypeEscapedOpenTagStart is an open marker preceded by the escape
	// symbol. Its Val holds the marker without the backslash, so collapsing
	// the span back into literal text unescapes it.
	TypeEscapedOpenTagStart

	// TypeCloseTagStart is the "</" marker opening a closing tag.
	TypeCloseTagStart

	// TypeEscapedCloseTagStart is an escaped close marker, see
	// TypeEscapedOpenTagStart for the Val convention.
	TypeEscapedCloseTagStart

	// TypeName is a tag name or a single parameter segment. Parameter
	// segments keep their quotes, so a collapsed span reproduces the
	// original text byte for byte.
	TypeName

	// TypeParamSeparator is the ":" between a tag name and its parameters
	// or between two parameter segments.
	TypeParamSeparator

	// TypeTagEnd is the ">" terminating a tag.
	TypeTagEnd
)

var typeNames = map[Type]string{
	TypeString:               "STRING",
	TypeOpenTagStart:         "OPEN_TAG_START",
	TypeEscapedOpenTagStart:  "ESCAPED_OPEN_TAG_START",
	TypeCloseTagStart:        "CLOSE_TAG_START",
	TypeEscapedCloseTagStart: "ESCAPED_CLOSE_TAG_START",
	TypeName:                 "NAME",
	TypeParamSeparator:       "PARAM_SEPARATOR",
	TypeTagEnd:               "TAG_END",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token represents a single scanned token.
type Token struct {
	Type Type // Token type: string, tag marker, name, etc.
	Pos  int  // Starting byte position of the token in the original input.

	// Len is the length of the token's source byte sequence. For escaped
	// markers it includes the escape symbol even though Val does not.
	Len int

	// Val is the token text used when the token is reconstituted into
	// literal content:
	// - for markers: "<" or "</" (escape symbol already dropped),
	// - for names and parameters: the raw segment, quotes included,
	// - for strings: the raw text content.
	Val string
}

// Special symbols of the tag grammar.
const (
	SymbolTagStart  = '<'
	SymbolTagEnd    = '>'
	SymbolSeparator = ':'
	SymbolEscape    = '\\'
	SymbolClose     = '/'
)
