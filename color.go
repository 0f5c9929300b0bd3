package light

import (
	"strconv"

	"github.com/gogpu/light/colorrep"
	"github.com/gogpu/light/internal/channel"
)

// Color is an immutable RGBA color.
// Each channel is in the range [0, 1]; constructors clamp out-of-range
// input instead of rejecting it.
//
// The zero value is fully transparent black. Two colors are equal (==)
// when their component vectors are equal, however they were built.
type Color struct {
	r, g, b, a float64
}

// Verify at compile time that Color satisfies the capability contract.
var _ colorrep.Representable[Color] = Color{}

// New creates a color from RGBA channels.
func New(r, g, b, a float64) Color {
	return colorrep.MakeRGBA[Color](r, g, b, a)
}

// RGB creates an opaque color from RGB channels.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// Gray creates an opaque gray with every RGB channel set to v.
func Gray(v float64) Color {
	return GrayAlpha(v, 1)
}

// GrayAlpha creates a gray with every RGB channel set to v.
func GrayAlpha(v, alpha float64) Color {
	return colorrep.MakeGray[Color](v, alpha)
}

// Web creates an opaque color from [0, 255] channels.
func Web(r, g, b int) Color {
	return WebAlpha(r, g, b, 1)
}

// WebAlpha creates a color from [0, 255] channels and a [0, 1] alpha.
func WebAlpha(r, g, b int, alpha float64) Color {
	return colorrep.MakeWeb[Color](r, g, b, alpha)
}

// HSB creates an opaque color from hue, saturation and brightness,
// each in [0, 1].
func HSB(h, s, v float64) Color {
	return HSBA(h, s, v, 1)
}

// HSBA creates a color from hue, saturation, brightness and alpha.
func HSBA(h, s, v, alpha float64) Color {
	return colorrep.MakeHSB[Color](h, s, v, alpha)
}

// HSL creates an opaque color from hue, saturation and lightness,
// each in [0, 1].
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// HSLA creates a color from hue, saturation, lightness and alpha.
func HSLA(h, s, l, alpha float64) Color {
	return colorrep.MakeHSL[Color](h, s, l, alpha)
}

// FromComponents creates a color from an [R, G, B, A] list.
// Alpha defaults to 1 when only three values are given, missing RGB
// channels default to 0 and extra values are ignored.
func FromComponents(components ...float64) Color {
	c := Color{a: 1}
	for i, v := range components {
		v = channel.Squeezed(v)
		switch i {
		case 0:
			c.r = v
		case 1:
			c.g = v
		case 2:
			c.b = v
		case 3:
			c.a = v
		}
	}
	return c
}

// PartialComponents holds optional channels for FromPartial.
type PartialComponents struct {
	Red, Green, Blue, Alpha *float64
}

// FromPartial creates a color from optional channels.
// Missing RGB channels become 0 and a missing alpha becomes 1.
func FromPartial(p PartialComponents) Color {
	value := func(v *float64, def float64) float64 {
		if v == nil {
			return def
		}
		return *v
	}
	return New(value(p.Red, 0), value(p.Green, 0), value(p.Blue, 0), value(p.Alpha, 1))
}

// Common colors
var (
	Clear = New(0, 0, 0, 0)
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)

	// Graphite is the neutral brand gray.
	Graphite = RGB(0.56, 0.56, 0.55)
)

// Components returns [R, G, B, A].
func (c Color) Components() [4]float64 {
	return [4]float64{c.r, c.g, c.b, c.a}
}

// FromComponents implements colorrep.Representable.
func (Color) FromComponents(components ...float64) Color {
	return FromComponents(components...)
}

// Red returns the red channel.
func (c Color) Red() float64 { return c.r }

// Green returns the green channel.
func (c Color) Green() float64 { return c.g }

// Blue returns the blue channel.
func (c Color) Blue() float64 { return c.b }

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 { return c.a }

// Hue returns the HSB hue in [0, 1].
func (c Color) Hue() float64 { return colorrep.Hue(c) }

// Saturation returns the HSB saturation.
func (c Color) Saturation() float64 { return colorrep.Saturation(c) }

// Brightness returns the HSB brightness.
func (c Color) Brightness() float64 { return colorrep.Brightness(c) }

// Luminosity returns the HSL lightness.
func (c Color) Luminosity() float64 { return colorrep.Luminosity(c) }

// RGBComponents returns [R, G, B].
func (c Color) RGBComponents() [3]float64 { return colorrep.RGBComponents(c) }

// HSBComponents returns [hue, saturation, brightness, alpha].
func (c Color) HSBComponents() [4]float64 { return colorrep.HSBComponents(c) }

// HSLComponents returns [hue, saturation, lightness, alpha].
func (c Color) HSLComponents() [4]float64 { return colorrep.HSLComponents(c) }

// WebComponents returns the truncated [0, 255] RGB channels.
func (c Color) WebComponents() [3]int { return colorrep.WebComponents(c) }

// HexComponents returns two uppercase hex digits per RGB channel.
func (c Color) HexComponents() [3]string { return colorrep.HexComponents(c) }

// Hex returns the six-digit RGB hex string without '#' and without alpha.
func (c Color) Hex() string { return colorrep.Hex(c) }

// String returns "#RRGGBB", followed by "/alpha" for translucent colors.
func (c Color) String() string {
	s := "#" + c.Hex()
	if c.a < 1 {
		s += "/" + strconv.FormatFloat(c.a, 'g', -1, 64)
	}
	return s
}

// Equal reports whether other has the same component vector.
func (c Color) Equal(other colorrep.Componenter) bool { return colorrep.Equal(c, other) }

// Compare applies f pairwise to the channels of c and other.
func (c Color) Compare(other colorrep.Componenter, f func(l, r float64) float64) [4]float64 {
	return colorrep.Compare(c, other, f)
}

// IsDark reports whether the brightness is below 0.5.
func (c Color) IsDark() bool { return colorrep.IsDark(c) }

// IsDarkAgainst reports whether c reads as dark over an opaque background.
func (c Color) IsDarkAgainst(background colorrep.Componenter) bool {
	return colorrep.IsDarkAgainst(c, background)
}
