package transform

import (
	"strings"

	"github.com/Drolfothesgnir/tagmark/scanner"
)

// Values extracts the parameter values from the raw tokens collected
// between a tag name and its end marker: separators are dropped and quoted
// segments are unquoted.
func Values(args []scanner.Token) []string {
	values := make([]string, 0, len(args))
	for _, t := range args {
		if t.Type == scanner.TypeParamSeparator {
			continue
		}
		values = append(values, Unquote(t.Val))
	}
	return values
}

// Unquote strips a matching pair of outer single or double quotes and
// resolves backslash-escaped quote characters inside. Text that is not
// quoted is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	quote := s[0]
	if quote != '\'' && quote != '"' || s[len(s)-1] != quote {
		return s
	}

	inner := s[1 : len(s)-1]
	inner = strings.ReplaceAll(inner, `\'`, `'`)
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	return inner
}
