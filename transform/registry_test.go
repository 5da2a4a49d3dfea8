package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Drolfothesgnir/tagmark/component"
	"github.com/Drolfothesgnir/tagmark/scanner"
)

func args(vals ...string) []scanner.Token {
	toks := make([]scanner.Token, 0, len(vals)*2)
	for _, v := range vals {
		toks = append(toks,
			scanner.Token{Type: scanner.TypeParamSeparator, Val: ":"},
			scanner.Token{Type: scanner.TypeName, Val: v},
		)
	}
	return toks
}

func TestRegistry_Exists(t *testing.T) {
	r := DefaultRegistry()

	require.True(t, r.Exists("red"))
	require.True(t, r.Exists("RED"))
	require.True(t, r.Exists("bold"))
	require.True(t, r.Exists("pre"))
	require.True(t, r.Exists("#00ff00"))
	require.False(t, r.Exists("frobnicate"))
}

func TestRegistry_GetColor(t *testing.T) {
	r := DefaultRegistry()

	tr := r.Get("red", nil, nil, nil)
	require.NotNil(t, tr)
	color, ok := tr.(*Color)
	require.True(t, ok)
	require.Equal(t, "red", color.Value)

	tr = r.Get("color", args("blue"), nil, nil)
	require.NotNil(t, tr)
	color = tr.(*Color)
	require.Equal(t, "color", color.Name())
	require.Equal(t, "blue", color.Value)

	tr = r.Get("#ff00ff", nil, nil, nil)
	require.NotNil(t, tr)
	require.Equal(t, "#ff00ff", tr.(*Color).Value)

	// color tag without a valid argument does not resolve
	require.Nil(t, r.Get("color", nil, nil, nil))
	require.Nil(t, r.Get("color", args("nonsense"), nil, nil))
}

func TestRegistry_GetDecoration(t *testing.T) {
	r := DefaultRegistry()

	for name, kind := range map[string]string{
		"bold": DecorationBold,
		"b":    DecorationBold,
		"em":   DecorationItalic,
		"st":   DecorationStrikethrough,
		"obf":  DecorationObfuscated,
		"u":    DecorationUnderlined,
	} {
		tr := r.Get(name, nil, nil, nil)
		require.NotNil(t, tr, "tag %q", name)
		require.Equal(t, kind, tr.(*Decoration).Kind, "tag %q", name)
	}
}

func TestRegistry_GetClick(t *testing.T) {
	r := DefaultRegistry()

	tr := r.Get("click", args("run_command", "'/say hi'"), nil, nil)
	require.NotNil(t, tr)
	click := tr.(*Click)
	require.Equal(t, "run_command", click.Action)
	require.Equal(t, "/say hi", click.Value)

	require.Nil(t, r.Get("click", args("explode", "'now'"), nil, nil))
	require.Nil(t, r.Get("click", nil, nil, nil))
}

func TestRegistry_GetHover(t *testing.T) {
	r := DefaultRegistry()

	tr := r.Get("hover", args("show_text", "'a tip'"), nil, nil)
	require.NotNil(t, tr)
	hover := tr.(*Hover)
	require.Equal(t, "show_text", hover.Action)
	require.Equal(t, "a tip", hover.Value.Content)

	require.Nil(t, r.Get("hover", args("show_explosion", "'x'"), nil, nil))
}

func TestRegistry_GetTemplate(t *testing.T) {
	r := DefaultRegistry()

	templates := map[string]*component.Text{
		"who": component.NewText("World"),
	}

	tr := r.Get("who", nil, templates, nil)
	require.NotNil(t, tr)
	tpl := tr.(*Template)
	require.Equal(t, "who", tpl.Name())
	require.Equal(t, "World", tpl.Value.Content)

	// the template value is cloned, mutating it must not leak back
	tpl.Value.Content = "changed"
	require.Equal(t, "World", templates["who"].Content)
}

func TestRegistry_GetResolver(t *testing.T) {
	r := DefaultRegistry()

	resolver := func(name string) *component.Text {
		if name == "server" {
			return component.NewText("play.example.com")
		}
		return nil
	}

	tr := r.Get("server", nil, nil, resolver)
	require.NotNil(t, tr)
	require.Equal(t, "play.example.com", tr.(*Template).Value.Content)

	require.Nil(t, r.Get("nonsense", nil, nil, resolver))
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "plain", Unquote("plain"))
	require.Equal(t, "quoted", Unquote("'quoted'"))
	require.Equal(t, "quoted", Unquote(`"quoted"`))
	require.Equal(t, `it's`, Unquote(`'it\'s'`))
	require.Equal(t, "'mismatched", Unquote("'mismatched"))
	require.Equal(t, "'", Unquote("'"))
}
