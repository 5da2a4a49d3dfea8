package component

import "strings"

// NamedColors maps every recognized color name to its hex value.
// The palette follows the classic 16-color chat palette; "grey" spellings
// are accepted as aliases.
var NamedColors = map[string]string{
	"black":        "#000000",
	"dark_blue":    "#0000aa",
	"dark_green":   "#00aa00",
	"dark_aqua":    "#00aaaa",
	"dark_red":     "#aa0000",
	"dark_purple":  "#aa00aa",
	"gold":         "#ffaa00",
	"gray":         "#aaaaaa",
	"grey":         "#aaaaaa",
	"dark_gray":    "#555555",
	"dark_grey":    "#555555",
	"blue":         "#5555ff",
	"green":        "#55ff55",
	"aqua":         "#55ffff",
	"red":          "#ff5555",
	"light_purple": "#ff55ff",
	"yellow":       "#ffff55",
	"white":        "#ffffff",
}

// IsHexColor reports whether s is a hex color literal of the form #rrggbb.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		ok := b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
		if !ok {
			return false
		}
	}
	return true
}

// IsColor reports whether s names a known color or is a hex color literal.
func IsColor(s string) bool {
	if IsHexColor(s) {
		return true
	}
	_, ok := NamedColors[strings.ToLower(s)]
	return ok
}
