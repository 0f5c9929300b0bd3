package colorrep

import (
	"strings"

	"github.com/gogpu/light/internal/channel"
	"github.com/gogpu/light/internal/space"
)

// Componenter exposes the canonical [R, G, B, A] component vector.
// Every channel is expected to lie in [0, 1].
type Componenter interface {
	Components() [4]float64
}

// Representable is a color type that can rebuild itself from components.
//
// FromComponents is called on the zero value of T and acts as a
// constructor. It must accept a 3-element list and default alpha to 1.
type Representable[T any] interface {
	Componenter
	FromComponents(components ...float64) T
}

// Red returns the red channel.
func Red(c Componenter) float64 { return c.Components()[0] }

// Green returns the green channel.
func Green(c Componenter) float64 { return c.Components()[1] }

// Blue returns the blue channel.
func Blue(c Componenter) float64 { return c.Components()[2] }

// Alpha returns the alpha channel.
func Alpha(c Componenter) float64 { return c.Components()[3] }

// Hue returns the HSB hue in [0, 1].
func Hue(c Componenter) float64 { return HSBComponents(c)[0] }

// Saturation returns the HSB saturation.
func Saturation(c Componenter) float64 { return HSBComponents(c)[1] }

// Brightness returns the HSB brightness (value).
func Brightness(c Componenter) float64 { return HSBComponents(c)[2] }

// Luminosity returns the HSL lightness.
func Luminosity(c Componenter) float64 { return HSLComponents(c)[2] }

// RGBComponents returns [R, G, B] without alpha.
func RGBComponents(c Componenter) [3]float64 {
	v := c.Components()
	return [3]float64{v[0], v[1], v[2]}
}

// HSBComponents returns [hue, saturation, brightness, alpha].
func HSBComponents(c Componenter) [4]float64 {
	v := c.Components()
	h, s, b := space.RGBToHSB(v[0], v[1], v[2])
	return [4]float64{h, s, b, v[3]}
}

// HSLComponents returns [hue, saturation, lightness, alpha].
// Saturation here is the HSL one and differs from Saturation.
func HSLComponents(c Componenter) [4]float64 {
	v := c.Components()
	h, s, l := space.RGBToHSL(v[0], v[1], v[2])
	return [4]float64{h, s, l, v[3]}
}

// WebComponents returns the RGB channels scaled to [0, 255].
// Scaling truncates, so 0.5 maps to 127.
func WebComponents(c Componenter) [3]int {
	v := c.Components()
	return [3]int{channel.ToWeb(v[0]), channel.ToWeb(v[1]), channel.ToWeb(v[2])}
}

// HexComponents returns each web component as two uppercase hex digits.
func HexComponents(c Componenter) [3]string {
	w := WebComponents(c)
	return [3]string{space.FormatHex(w[0]), space.FormatHex(w[1]), space.FormatHex(w[2])}
}

// Hex returns the six-digit RGB hex string, without '#' and without alpha.
func Hex(c Componenter) string {
	h := HexComponents(c)
	return strings.Join(h[:], "")
}

// Equal reports whether two colors have identical component vectors,
// regardless of their concrete types.
func Equal(a, b Componenter) bool {
	return a.Components() == b.Components()
}

// Compare applies f pairwise to the [R, G, B, A] channels of lhs and rhs.
func Compare(lhs, rhs Componenter, f func(l, r float64) float64) [4]float64 {
	a, b := lhs.Components(), rhs.Components()
	var out [4]float64
	for i := range out {
		out[i] = f(a[i], b[i])
	}
	return out
}

// IsDark reports whether the HSB brightness is below 0.5.
// Brightness exactly 0.5 is not dark.
func IsDark(c Componenter) bool {
	return Brightness(c) < 0.5
}

// IsDarkAgainst approximates whether c reads as dark when composited over
// an opaque background. Opaque colors fall back to IsDark.
func IsDarkAgainst(c, background Componenter) bool {
	v := c.Components()
	if v[3] >= 1 {
		return IsDark(c)
	}
	bg := background.Components()
	projection := (v[0] + v[1] + v[2] - v[3]) + (bg[0] + bg[1] + bg[2])
	return projection/2 < 1
}
