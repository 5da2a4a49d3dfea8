package markup

import (
	"regexp"
	"strings"
)

// tagPattern recognizes the shortest non-overlapping tag-shaped spans: an
// opening bracket, a body of ":"-separated segments where a segment may be
// quoted with single or double quotes (backslash-escaped quotes allowed
// inside), and a closing bracket. It only delimits tag-shaped text, it
// never decides whether a span names a real tag.
var tagPattern = regexp.MustCompile(`(?P<start><)(?P<token>[^<>]+(:(?P<inner>['"]?([^'"](\\['"])?)+['"]?))*)(?P<end>>)`)

var (
	tagPatternToken = tagPattern.SubexpIndex("token")
	tagPatternInner = tagPattern.SubexpIndex("inner")
)

// Escape rewrites the text so that every tag-shaped span is prefixed with
// the escape marker. Tag-shaped text inside a quoted argument is escaped
// recursively, so unescaping the result reproduces the original exactly.
// Non-tag text is preserved verbatim and in order.
func Escape(text string) string {
	var b strings.Builder
	lastEnd := 0

	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > lastEnd {
			b.WriteString(text[lastEnd:m[0]])
		}
		lastEnd = m[1]

		token := text[m[2*tagPatternToken]:m[2*tagPatternToken+1]]

		// also escape the quoted inner segment
		if m[2*tagPatternInner] >= 0 {
			inner := text[m[2*tagPatternInner]:m[2*tagPatternInner+1]]
			token = strings.ReplaceAll(token, inner, Escape(inner))
		}

		b.WriteByte('\\')
		b.WriteByte('<')
		b.WriteString(token)
		b.WriteByte('>')
	}

	if lastEnd < len(text) {
		b.WriteString(text[lastEnd:])
	}

	return b.String()
}

// Strip deletes every tag-shaped span from the text, preserving all
// non-tag text verbatim and in order.
func Strip(text string) string {
	var b strings.Builder
	lastEnd := 0

	for _, m := range tagPattern.FindAllStringIndex(text, -1) {
		if m[0] > lastEnd {
			b.WriteString(text[lastEnd:m[0]])
		}
		lastEnd = m[1]
	}

	if lastEnd < len(text) {
		b.WriteString(text[lastEnd:])
	}

	return b.String()
}
