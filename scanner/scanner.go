package scanner

import "strings"

// rawModeTag is the tag whose body is scanned as literal text. Everything
// between its open tag and its matching close tag is emitted as one STRING
// token so that tag-shaped text inside it survives verbatim.
const rawModeTag = "pre"

// Scan transforms the input text into a slice of tokens.
//
// The scanner only delimits tag-shaped spans; it never decides whether a
// span names a real tag. A "<" that does not start a well-shaped span stays
// plain text. The interpreter handles recognition and recovery on top of
// the token stream.
func Scan(input string) []Token {
	n := len(input)
	tokens := make([]Token, 0, n/8)

	// starting index of the current plain text run
	textStart := 0

	// flushes the pending text run ending right before the given index
	flush := func(end int) {
		if textStart < end {
			tokens = append(tokens, Token{
				Type: TypeString,
				Pos:  textStart,
				Len:  end - textStart,
				Val:  input[textStart:end],
			})
		}
	}

	i := 0
	for i < n {
		b := input[i]

		// 1) escaped tag marker: "\<" followed by a tag-shaped span
		if b == SymbolEscape && i+1 < n && input[i+1] == SymbolTagStart {
			if toks, end, ok := scanTag(input, i+1, true); ok {
				flush(i)
				tokens = append(tokens, toks...)
				i = end
				textStart = i
				continue
			}

			// the backslash escapes nothing tag-shaped, keep it as text
			i++
			continue
		}

		// 2) unescaped tag marker
		if b == SymbolTagStart {
			toks, end, ok := scanTag(input, i, false)
			if !ok {
				i++
				continue
			}

			flush(i)
			tokens = append(tokens, toks...)
			i = end
			textStart = i

			// a raw-mode tag suspends scanning until its close tag
			if isRawModeOpen(toks) {
				tokens, i = scanRawBody(input, tokens, i)
				textStart = i
			}
			continue
		}

		// 3) plain text, byte widths don't matter here since every special
		// symbol is single-byte ASCII
		i++
	}

	// final text flush
	flush(n)

	return clean(tokens)
}

// scanTag tries to read a complete tag-shaped span starting at the "<" at
// index start: an optional "/", a name, zero or more ":"-separated parameter
// segments and the terminating ">". Parameter segments may be quoted with
// single or double quotes, with backslash-escaped quotes inside.
//
// It returns the produced tokens and the index right after the span, or
// ok == false when the text is not tag-shaped.
func scanTag(input string, start int, escaped bool) (toks []Token, end int, ok bool) {
	n := len(input)
	j := start + 1

	closing := false
	if j < n && input[j] == SymbolClose {
		closing = true
		j++
	}

	nameStart := j
	for j < n && isNameByte(input[j]) {
		j++
	}
	// a tag must have a name
	if j == nameStart {
		return nil, 0, false
	}

	toks = make([]Token, 0, 4)
	toks = append(toks, markerToken(start, closing, escaped))
	toks = append(toks, Token{Type: TypeName, Pos: nameStart, Len: j - nameStart, Val: input[nameStart:j]})

	for j < n && input[j] == SymbolSeparator {
		sepPos := j
		j++

		segStart := j
		if j < n && (input[j] == '\'' || input[j] == '"') {
			// quoted segment: consume until the matching unescaped quote,
			// any byte is literal inside, including "<" and ">"
			quote := input[j]
			j++
			closed := false
			for j < n {
				if input[j] == SymbolEscape && j+1 < n && (input[j+1] == '\'' || input[j+1] == '"') {
					j += 2
					continue
				}
				if input[j] == quote {
					j++
					closed = true
					break
				}
				j++
			}
			if !closed {
				return nil, 0, false
			}
			// the quote must close the whole segment
			if j >= n || (input[j] != SymbolSeparator && input[j] != SymbolTagEnd) {
				return nil, 0, false
			}
		} else {
			for j < n && input[j] != SymbolSeparator && input[j] != SymbolTagEnd && input[j] != SymbolTagStart {
				j++
			}
			// empty segments and spans running into another "<" are not tags
			if j >= n || input[j] == SymbolTagStart || j == segStart {
				return nil, 0, false
			}
		}

		toks = append(toks, Token{Type: TypeParamSeparator, Pos: sepPos, Len: 1, Val: ":"})
		toks = append(toks, Token{Type: TypeName, Pos: segStart, Len: j - segStart, Val: input[segStart:j]})
	}

	if j >= n || input[j] != SymbolTagEnd {
		return nil, 0, false
	}

	toks = append(toks, Token{Type: TypeTagEnd, Pos: j, Len: 1, Val: ">"})

	return toks, j + 1, true
}

// markerToken builds the marker token for a span starting at the "<" at
// index start. Escaped markers keep the escape symbol out of Val, so that
// collapsing the span into literal text unescapes it.
func markerToken(start int, closing, escaped bool) Token {
	val := "<"
	typ := TypeOpenTagStart
	if closing {
		val = "</"
		typ = TypeCloseTagStart
	}

	pos := start
	length := len(val)
	if escaped {
		if closing {
			typ = TypeEscapedCloseTagStart
		} else {
			typ = TypeEscapedOpenTagStart
		}
		pos = start - 1
		length++
	}

	return Token{Type: typ, Pos: pos, Len: length, Val: val}
}

// isRawModeOpen reports whether the token span is a bare, unescaped opening
// raw-mode tag. An escaped one collapses to literal text during
// interpretation, so its body must stay tokenized.
func isRawModeOpen(toks []Token) bool {
	return len(toks) == 3 &&
		toks[0].Type == TypeOpenTagStart &&
		strings.EqualFold(toks[1].Val, rawModeTag) &&
		toks[2].Type == TypeTagEnd
}

// scanRawBody consumes everything from index i until the close tag of the
// raw-mode tag as a single STRING token, then emits the close tag tokens.
// If the close tag never appears, the rest of the input is literal text.
//
// The close-tag search is case-insensitive but compares windows of the
// original input in place: lowering a copy first would shift byte offsets
// whenever the body holds runes whose case pair has a different length.
func scanRawBody(input string, tokens []Token, i int) ([]Token, int) {
	closeTag := string(SymbolTagStart) + string(SymbolClose) + rawModeTag + string(SymbolTagEnd)

	idx := -1
	for j := i; j+len(closeTag) <= len(input); j++ {
		if input[j] == SymbolTagStart && strings.EqualFold(input[j:j+len(closeTag)], closeTag) {
			idx = j
			break
		}
	}

	if idx < 0 {
		if i < len(input) {
			tokens = append(tokens, Token{Type: TypeString, Pos: i, Len: len(input) - i, Val: input[i:]})
		}
		return tokens, len(input)
	}

	if idx > i {
		tokens = append(tokens, Token{Type: TypeString, Pos: i, Len: idx - i, Val: input[i:idx]})
	}

	namePos := idx + 2
	tokens = append(tokens,
		Token{Type: TypeCloseTagStart, Pos: idx, Len: 2, Val: "</"},
		Token{Type: TypeName, Pos: namePos, Len: len(rawModeTag), Val: input[namePos : namePos+len(rawModeTag)]},
		Token{Type: TypeTagEnd, Pos: namePos + len(rawModeTag), Len: 1, Val: ">"},
	)

	return tokens, idx + len(closeTag)
}

// isNameByte reports whether the byte may appear in a tag name.
// "#" is allowed so hex color tags like <#ff0000> scan as names.
func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_' || b == '-' || b == '#' || b == '.'
}

// clean merges adjacent STRING tokens, so literal runs produced by escapes
// and raw-mode bodies come out as a single token.
func clean(tokens []Token) []Token {
	out := tokens[:0]
	for _, t := range tokens {
		if t.Type == TypeString && len(out) > 0 && out[len(out)-1].Type == TypeString {
			prev := &out[len(out)-1]
			prev.Val += t.Val
			prev.Len += t.Len
			continue
		}
		out = append(out, t)
	}
	return out
}
