package markup

import (
	"strings"

	"github.com/Drolfothesgnir/tagmark/component"
	"github.com/Drolfothesgnir/tagmark/scanner"
	"github.com/Drolfothesgnir/tagmark/transform"
)

// parse walks the token stream and assembles the styled-text tree.
//
// The parser owns the token slice for the duration of the call and mutates
// it during recovery: a malformed or unrecognized tag span is collapsed
// back into a single literal token and rescanned from there. Every
// recovery branch strictly reduces the number of tokens not yet classified
// as literal, so the loop always terminates.
func parse(
	tokens []scanner.Token,
	registry *transform.Registry,
	templates map[string]*component.Text,
	resolver transform.PlaceholderResolver,
	strict bool,
) (*component.Text, []Diagnostic, error) {

	parent := component.NewBuilder()

	// currently open tag effects, applied to content oldest first
	active := transform.NewScope()

	// deferred one-shot effects: drained newest-first against mid-stream
	// content, oldest-first at the end of the stream
	var oneTime []transform.OneTime

	// raw-mode flag, set while the pre scope is open
	preActive := false

	var diags []Diagnostic
	report := func(issue Issue, pos int, near, desc string) {
		diags = append(diags, Diagnostic{Issue: issue, Index: pos, Near: near, Description: desc})
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Type {
		case scanner.TypeEscapedOpenTagStart, scanner.TypeOpenTagStart:
			// next has to be a name
			if i == len(tokens)-1 {
				if strict {
					return nil, diags, &ParseError{Msg: "expected tag name after open tag start, got end of input", Pos: tok.Pos}
				}
				report(IssueMissingName, tok.Pos, tok.Val, "open tag start at the very end of the input, keeping it as literal text")
				tokens[i] = scanner.Token{Type: scanner.TypeString, Pos: tok.Pos, Len: tok.Len, Val: tok.Val}
				continue
			}

			i++
			name := tokens[i]

			// an escaped marker immediately followed by a real open marker
			// folds into literal text, scanning resumes from the real one
			if name.Type == scanner.TypeOpenTagStart && tok.Type == scanner.TypeEscapedOpenTagStart {
				i--
				tokens[i] = scanner.Token{Type: scanner.TypeString, Pos: tok.Pos, Len: tok.Len, Val: tok.Val}
				continue
			}

			if name.Type != scanner.TypeName && tok.Type != scanner.TypeEscapedOpenTagStart {
				if strict {
					return nil, diags, &ParseError{Msg: "expected tag name after open tag start, got " + name.Type.String(), Pos: name.Pos}
				}
				report(IssueMissingName, name.Pos, name.Val, "expected tag name after open tag start, resuming from the unexpected token")
				continue
			}

			// after the name: either a parameter separator or the tag end
			if i == len(tokens)-1 {
				if strict {
					return nil, diags, &ParseError{Msg: "expected parameters or tag end after tag name, got end of input", Pos: name.Pos}
				}
				report(IssueUnexpectedEnd, name.Pos, name.Val, "input ended after a tag name, keeping the span as literal text")
				continue
			}

			i++
			paramOrEnd := tokens[i]

			switch paramOrEnd.Type {
			case scanner.TypeParamSeparator:
				// collect parameter tokens up to the tag end
				var (
					inners []scanner.Token
					last   scanner.Token
					found  bool
				)
				for i < len(tokens)-1 {
					i++
					last = tokens[i]
					if last.Type == scanner.TypeTagEnd {
						found = true
						break
					}
					inners = append(inners, last)
				}

				if !found {
					if strict {
						return nil, diags, &ParseError{Msg: "expected tag end after parameters of tag " + name.Val + ", got end of input", Pos: name.Pos}
					}
					report(IssueMissingTagEnd, name.Pos, name.Val, "tag "+name.Val+" never terminates, resuming from its parameters")
					continue
				}

				trans := registry.Get(name.Val, inners, templates, resolver)
				if trans == nil || preActive || tok.Type == scanner.TypeEscapedOpenTagStart {
					if strict && trans == nil && !preActive && tok.Type != scanner.TypeEscapedOpenTagStart {
						return nil, diags, &ParseError{Msg: "unknown tag " + name.Val, Pos: name.Pos}
					}

					// not a real tag: rewind to the span start and collapse
					// the whole span into one literal token
					i -= 3 + len(inners)
					var sb strings.Builder
					sb.WriteString(tokens[i].Val)
					sb.WriteString(name.Val)
					sb.WriteString(paramOrEnd.Val)
					for _, t := range inners {
						sb.WriteString(t.Val)
					}
					sb.WriteString(last.Val)
					tokens = collapse(tokens, i, 4+len(inners), sb.String())
					continue
				}

				preActive = dispatch(trans, parent, active, &oneTime, preActive)

			case scanner.TypeTagEnd, scanner.TypeEscapedCloseTagStart:
				trans := registry.Get(name.Val, nil, templates, resolver)
				if trans == nil || preActive || tok.Type == scanner.TypeEscapedOpenTagStart {
					if strict && trans == nil && !preActive && tok.Type != scanner.TypeEscapedOpenTagStart {
						return nil, diags, &ParseError{Msg: "unknown tag " + name.Val, Pos: name.Pos}
					}

					i -= 2
					tokens = collapse(tokens, i, 3, tokens[i].Val+name.Val+paramOrEnd.Val)
					continue
				}

				preActive = dispatch(trans, parent, active, &oneTime, preActive)

			default:
				if strict {
					return nil, diags, &ParseError{Msg: "expected tag end or parameter separator after tag name, got " + paramOrEnd.Type.String(), Pos: paramOrEnd.Pos}
				}
				report(IssueUnexpectedToken, paramOrEnd.Pos, paramOrEnd.Val, "expected tag end or parameter separator after tag name, resuming from the unexpected token")
				continue
			}

		case scanner.TypeEscapedCloseTagStart, scanner.TypeCloseTagStart:
			// next has to be a name
			if i == len(tokens)-1 {
				if strict {
					return nil, diags, &ParseError{Msg: "expected tag name after close tag start, got end of input", Pos: tok.Pos}
				}
				report(IssueMissingName, tok.Pos, tok.Val, "close tag start at the very end of the input, keeping it as literal text")
				tokens[i] = scanner.Token{Type: scanner.TypeString, Pos: tok.Pos, Len: tok.Len, Val: tok.Val}
				continue
			}

			i++
			name := tokens[i]
			if name.Type != scanner.TypeName && tok.Type != scanner.TypeEscapedCloseTagStart {
				if strict {
					return nil, diags, &ParseError{Msg: "expected tag name after close tag start, got " + name.Type.String(), Pos: name.Pos}
				}
				report(IssueMissingName, name.Pos, name.Val, "expected tag name after close tag start, resuming from the unexpected token")
				continue
			}

			// after the name we want the end, though sometimes the end
			// carries parameters
			if i == len(tokens)-1 {
				if strict {
					return nil, diags, &ParseError{Msg: "expected parameters or tag end after close tag name, got end of input", Pos: name.Pos}
				}
				report(IssueUnexpectedEnd, name.Pos, name.Val, "input ended after a close tag name, keeping the span as literal text")
				continue
			}

			i++
			paramOrEnd := tokens[i]

			switch paramOrEnd.Type {
			case scanner.TypeTagEnd:
				unknown := !registry.Exists(name.Val)
				rawMismatch := preActive && !strings.EqualFold(name.Val, transform.PreName)
				if unknown || rawMismatch || tok.Type == scanner.TypeEscapedCloseTagStart {
					if strict && unknown && !rawMismatch && tok.Type != scanner.TypeEscapedCloseTagStart {
						return nil, diags, &ParseError{Msg: "unknown tag " + name.Val, Pos: name.Pos}
					}

					// invalid close, collapse the span into literal text
					i -= 2
					tokens = collapse(tokens, i, 3, tokens[i].Val+name.Val+paramOrEnd.Val)
					continue
				}

				removed, ok := active.RemoveLastMatch(func(t transform.Transformation) bool {
					return t.Name() == name.Val
				})
				if ok {
					if _, isRaw := removed.(transform.Raw); isRaw {
						preActive = false
					}
				}

			case scanner.TypeParamSeparator:
				var (
					inners []scanner.Token
					found  bool
				)
				for i < len(tokens)-1 {
					i++
					if tokens[i].Type == scanner.TypeTagEnd {
						found = true
						break
					}
					inners = append(inners, tokens[i])
				}

				if !found {
					if strict {
						return nil, diags, &ParseError{Msg: "expected tag end after parameters of close tag " + name.Val + ", got end of input", Pos: name.Pos}
					}
					report(IssueMissingTagEnd, name.Pos, name.Val, "close tag "+name.Val+" never terminates, resuming from its parameters")
					continue
				}

				// a parameterized close tag resolves a transformation value
				// and removes the first equal open entry, so it can pick
				// among several same-named scopes
				if trans := registry.Get(name.Val, inners, templates, resolver); trans != nil {
					active.RemoveFirstEqual(trans)
				}

			default:
				if strict {
					return nil, diags, &ParseError{Msg: "expected tag end or parameter separator after close tag name, got " + paramOrEnd.Type.String(), Pos: paramOrEnd.Pos}
				}
				report(IssueUnexpectedToken, paramOrEnd.Pos, paramOrEnd.Val, "expected tag end or parameter separator after close tag name, resuming from the unexpected token")
				continue
			}

		default:
			// literal content: apply the active scope oldest first, then
			// drain the one-shot queue newest first
			current := component.NewText(tok.Val)

			for _, tr := range active.Items() {
				current = tr.Apply(current, parent)
			}

			for len(oneTime) > 0 {
				last := oneTime[len(oneTime)-1]
				oneTime = oneTime[:len(oneTime)-1]
				current = last.ApplyOneTime(current, parent, active)
			}

			if current != nil {
				parent.Append(current)
			}
		}

		i++
	}

	// end-of-stream flush: still-open inserting effects and any remaining
	// one-shots run against the last produced node, or an empty one if the
	// stream produced no children at all
	last := parent.Last()
	if last == nil {
		last = component.NewText("")
	}

	for _, tr := range active.Items() {
		if _, ok := tr.(transform.Inserter); ok {
			last = tr.Apply(last, parent)
		}
	}

	for len(oneTime) > 0 {
		first := oneTime[0]
		oneTime = oneTime[1:]
		last = first.ApplyOneTime(last, parent, active)
	}

	// skip the wrapper node when the root holds exactly one child
	root := parent.Build()
	if root.Content == "" && len(root.Children) == 1 {
		return root.Children[0], diags, nil
	}

	return root, diags, nil
}

// dispatch routes a resolved transformation by capability and returns the
// updated raw-mode flag. Instant effects run now and are discarded,
// one-shots join the deferred queue, everything else joins the active
// scope.
func dispatch(
	t transform.Transformation,
	parent *component.Builder,
	active *transform.Scope,
	oneTime *[]transform.OneTime,
	preActive bool,
) bool {
	switch tr := t.(type) {
	case transform.InstantApply:
		tr.ApplyInstant(parent, active)
	case transform.OneTime:
		*oneTime = append(*oneTime, tr)
	default:
		if _, ok := t.(transform.Raw); ok {
			preActive = true
		}
		active.Push(t)
	}
	return preActive
}

// collapse replaces count tokens starting at index i with a single literal
// token carrying the reconstituted span text.
func collapse(tokens []scanner.Token, i, count int, val string) []scanner.Token {
	if i+count > len(tokens) {
		count = len(tokens) - i
	}

	length := 0
	for k := i; k < i+count; k++ {
		length += tokens[k].Len
	}

	tokens[i] = scanner.Token{Type: scanner.TypeString, Pos: tokens[i].Pos, Len: length, Val: val}
	return append(tokens[:i+1], tokens[i+count:]...)
}
