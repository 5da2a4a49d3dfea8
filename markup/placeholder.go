package markup

import (
	"errors"
	"strings"
)

// ErrUnevenPlaceholders is returned when a flat placeholder list does not
// come in key/value pairs. This is a caller contract violation and fails
// fast in both strict and lenient mode.
var ErrUnevenPlaceholders = errors.New("markup: placeholders must be an even list of key/value pairs")

// applyPlaceholders replaces every literal <key> occurrence with its value,
// left to right. Values are never rescanned for further substitution.
func applyPlaceholders(input string, placeholders ...string) (string, error) {
	if len(placeholders)%2 != 0 {
		return "", ErrUnevenPlaceholders
	}

	for i := 0; i+1 < len(placeholders); i += 2 {
		input = strings.ReplaceAll(input, "<"+placeholders[i]+">", placeholders[i+1])
	}

	return input, nil
}

// applyPlaceholderMap is the map form of applyPlaceholders.
func applyPlaceholderMap(input string, placeholders map[string]string) string {
	for key, value := range placeholders {
		input = strings.ReplaceAll(input, "<"+key+">", value)
	}
	return input
}
