// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lightgloss

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/light"
)

// ErrIndexedColor is returned by FromLipgloss for ANSI palette indices
// such as "205", whose RGB value depends on the terminal.
var ErrIndexedColor = errors.New("lightgloss: indexed ANSI color has no fixed RGB value")

// ToLipgloss converts c to a lipgloss hex color. Alpha is ignored.
func ToLipgloss(c light.Color) lipgloss.Color {
	return lipgloss.Color("#" + c.Hex())
}

// ToAdaptive pairs a color for light terminal backgrounds with one for
// dark backgrounds.
func ToAdaptive(onLight, onDark light.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: string(ToLipgloss(onLight)),
		Dark:  string(ToLipgloss(onDark)),
	}
}

// FromLipgloss converts a lipgloss color given as hex or as a CSS keyword.
// ANSI palette indices return ErrIndexedColor.
func FromLipgloss(c lipgloss.Color) (light.Color, error) {
	s := string(c)
	if _, err := strconv.ParseUint(s, 10, 8); err == nil {
		return light.Color{}, fmt.Errorf("%w: %q", ErrIndexedColor, s)
	}
	return light.Parse(s)
}

// Contrast returns white or black, whichever reads better on c when c is
// drawn over background.
func Contrast(c, background light.Color) light.Color {
	if c.IsDarkAgainst(background) {
		return light.White
	}
	return light.Black
}

// Swatch renders label on a block of c with a contrasting foreground.
// The terminal background is assumed to be black.
func Swatch(c light.Color, label string) string {
	return lipgloss.NewStyle().
		Background(ToLipgloss(c)).
		Foreground(ToLipgloss(Contrast(c, light.Black))).
		Padding(0, 1).
		Render(label)
}
