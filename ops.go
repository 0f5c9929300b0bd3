package light

import "github.com/gogpu/light/colorrep"

// Add returns the per-channel mean of c and other.
func (c Color) Add(other colorrep.Componenter) Color { return colorrep.Add(c, other) }

// Subtract returns min(c1+c2, 1) per channel. It saturates rather than
// subtracting; see colorrep.Subtract.
func (c Color) Subtract(other colorrep.Componenter) Color { return colorrep.Subtract(c, other) }

// Multiply blends c and other at the default midpoint.
func (c Color) Multiply(other colorrep.Componenter) Color { return colorrep.Multiply(c, other) }

// Divide blends c with the RGB inversion of other.
func (c Color) Divide(other colorrep.Componenter) Color { return colorrep.Divide(c, other) }

// Blend mixes squared channels of c and other; see colorrep.Blend.
func (c Color) Blend(other colorrep.Componenter, opts ...BlendOption) Color {
	return colorrep.Blend(c, other, opts...)
}

// Transform maps f over the RGB channels and keeps alpha.
func (c Color) Transform(f func(float64) float64) Color { return colorrep.Transform(c, f) }

// Invert returns the RGB inversion of c.
func (c Color) Invert() Color { return colorrep.Invert(c) }

// WithAlpha returns c with a new alpha.
func (c Color) WithAlpha(alpha float64) Color { return colorrep.WithAlpha(c, alpha) }

// WithHue returns c with a new HSB hue.
func (c Color) WithHue(hue float64) Color { return colorrep.WithHue(c, hue) }

// WithSaturation returns c with a new HSB saturation.
func (c Color) WithSaturation(saturation float64) Color {
	return colorrep.WithSaturation(c, saturation)
}

// WithBrightness returns c with a new HSB brightness.
func (c Color) WithBrightness(brightness float64) Color {
	return colorrep.WithBrightness(c, brightness)
}

// WithLuminosity returns c with a new HSL lightness.
// The HSB saturation of c is used as the HSL saturation; see
// colorrep.WithLuminosity.
func (c Color) WithLuminosity(luminosity float64) Color {
	return colorrep.WithLuminosity(c, luminosity)
}

// Lighten shifts the brightness by -amount/10 (amount in 0-10).
func (c Color) Lighten(amount float64) Color { return colorrep.Lighten(c, amount) }

// Darken shifts the brightness by +amount/10 (amount in 0-10).
func (c Color) Darken(amount float64) Color { return colorrep.Darken(c, amount) }

// LightenedToAlpha lightens a translucent color by its alpha.
func (c Color) LightenedToAlpha() Color { return colorrep.LightenedToAlpha(c) }

// DarkenedToAlpha darkens a translucent color by its alpha.
func (c Color) DarkenedToAlpha() Color { return colorrep.DarkenedToAlpha(c) }
