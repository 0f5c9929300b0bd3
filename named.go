package light

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the CSS/SVG color keyword name as an opaque color.
// Matching ignores case, surrounding space and inner spaces, so
// "Steel Blue" resolves like "steelblue". The error wraps ErrUnknownName.
func Named(name string) (Color, error) {
	key := strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(name)), " ", "")
	rgba, ok := colornames.Map[key]
	if !ok {
		Logger().Debug("light: unknown color name", "name", name)
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return WebAlpha(int(rgba.R), int(rgba.G), int(rgba.B), float64(rgba.A)/255), nil
}

// Names returns the sorted list of keywords accepted by Named.
func Names() []string {
	return slices.Clone(colornames.Names)
}

// Parse resolves a hex string or a CSS color keyword.
func Parse(s string) (Color, error) {
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	c, err := Named(s)
	if err != nil {
		return Color{}, fmt.Errorf("light: parse %q: neither hex nor color name: %w", s, err)
	}
	return c, nil
}
