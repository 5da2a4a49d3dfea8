package markup

import "fmt"

// ParseError is returned in strict mode when the token stream violates the
// tag grammar. Position tracking is best-effort: Pos is a byte offset into
// the input, or -1 when unknown.
type ParseError struct {
	Msg string
	Pos int
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("markup: parse error at byte %d: %s", e.Pos, e.Msg)
	}
	return "markup: parse error: " + e.Msg
}
