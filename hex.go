package light

import "github.com/gogpu/light/colorrep"

// ParseHex creates an opaque color from a hex string.
// Accepted forms are "RRGGBB" and the "RGB" shorthand, each with an
// optional leading '#'. Signs such as "+FFFFF" are not accepted.
// The error wraps ErrInvalidHex.
func ParseHex(s string) (Color, error) {
	return ParseHexAlpha(s, 1)
}

// ParseHexAlpha is like ParseHex with an explicit alpha.
func ParseHexAlpha(s string, alpha float64) (Color, error) {
	c, err := colorrep.ParseHex[Color](s, alpha)
	if err != nil {
		Logger().Debug("light: rejected hex color", "input", s, "error", err)
		return Color{}, err
	}
	return c, nil
}

// MustParseHex is like ParseHex but panics on invalid input.
// It is intended for initializing package-level colors from literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
