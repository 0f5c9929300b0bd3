// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lighttcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/light"
)

// FromTcell converts a tcell color to an opaque light color.
// It reports false for tcell.ColorDefault and for colors without an RGB
// value.
func FromTcell(c tcell.Color) (light.Color, bool) {
	if c == tcell.ColorDefault || !c.Valid() {
		return light.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		light.Logger().Debug("lighttcell: color has no RGB value", "color", c)
		return light.Color{}, false
	}
	return light.Web(int(r), int(g), int(b)), true
}

// ToTcell converts c to a 24-bit tcell color. Alpha is ignored.
func ToTcell(c light.Color) tcell.Color {
	w := c.WebComponents()
	return tcell.NewRGBColor(int32(w[0]), int32(w[1]), int32(w[2]))
}

// Style returns the default tcell style with the given foreground and
// background.
func Style(fg, bg light.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
}
