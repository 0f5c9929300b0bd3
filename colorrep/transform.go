package colorrep

import "github.com/gogpu/light/internal/channel"

// Transform maps f over the RGB channels, squeezing each result into
// [0, 1]. Alpha is unchanged.
func Transform[T Representable[T]](c T, f func(float64) float64) T {
	v := c.Components()
	return build[T]([4]float64{
		channel.Squeezed(f(v[0])),
		channel.Squeezed(f(v[1])),
		channel.Squeezed(f(v[2])),
		v[3],
	})
}

// Invert replaces every RGB channel with 1-c.
func Invert[T Representable[T]](c T) T {
	return Transform(c, func(v float64) float64 { return 1 - v })
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha[T Representable[T]](c T, alpha float64) T {
	v := c.Components()
	return MakeRGBA[T](v[0], v[1], v[2], alpha)
}

// WithHue rebuilds c through HSB with the hue replaced.
func WithHue[T Representable[T]](c T, hue float64) T {
	hsb := HSBComponents(c)
	return MakeHSB[T](hue, hsb[1], hsb[2], hsb[3])
}

// WithSaturation rebuilds c through HSB with the saturation replaced.
func WithSaturation[T Representable[T]](c T, saturation float64) T {
	hsb := HSBComponents(c)
	return MakeHSB[T](hsb[0], saturation, hsb[2], hsb[3])
}

// WithBrightness rebuilds c through HSB with the brightness replaced.
func WithBrightness[T Representable[T]](c T, brightness float64) T {
	hsb := HSBComponents(c)
	return MakeHSB[T](hsb[0], hsb[1], brightness, hsb[3])
}

// WithLuminosity rebuilds c through HSL with the lightness replaced.
//
// The HSL constructor receives the HSB saturation of c, not its HSL
// saturation, so the result is generally not c at another lightness:
// RGB (1, 0.5, 0.5) at 0.75 gives (0.875, 0.625, 0.625). Callers depend
// on this, so it is kept as is.
func WithLuminosity[T Representable[T]](c T, luminosity float64) T {
	hsb := HSBComponents(c)
	return MakeHSL[T](hsb[0], hsb[1], luminosity, hsb[3])
}

// Lighten shifts the brightness by -amount/10 and keeps alpha.
// Amount is conventionally in [0, 10].
func Lighten[T Representable[T]](c T, amount float64) T {
	return WithAlpha(WithBrightness(c, Brightness(c)-amount/10), Alpha(c))
}

// Darken shifts the brightness by +amount/10 and keeps alpha.
// Amount is conventionally in [0, 10].
func Darken[T Representable[T]](c T, amount float64) T {
	return WithAlpha(WithBrightness(c, Brightness(c)+amount/10), Alpha(c))
}

// LightenedToAlpha lightens a translucent color by its own alpha.
// Opaque colors are returned unchanged.
func LightenedToAlpha[T Representable[T]](c T) T {
	a := Alpha(c)
	if a >= 1 {
		return c
	}
	return Lighten(c, a)
}

// DarkenedToAlpha darkens a translucent color by its own alpha.
// Opaque colors are returned unchanged.
func DarkenedToAlpha[T Representable[T]](c T) T {
	a := Alpha(c)
	if a >= 1 {
		return c
	}
	return Darken(c, a)
}
