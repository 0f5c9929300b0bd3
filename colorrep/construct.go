package colorrep

import (
	"fmt"

	"github.com/gogpu/light/internal/channel"
	"github.com/gogpu/light/internal/space"
)

// vector is an anonymous component vector used for intermediate values.
type vector [4]float64

// Components implements Componenter.
func (v vector) Components() [4]float64 { return v }

// build squeezes v and hands it to T's constructor.
func build[T Representable[T]](v [4]float64) T {
	var zero T
	return zero.FromComponents(
		channel.Squeezed(v[0]),
		channel.Squeezed(v[1]),
		channel.Squeezed(v[2]),
		channel.Squeezed(v[3]),
	)
}

// MakeRGBA builds a T from RGBA channels, squeezing each into [0, 1].
func MakeRGBA[T Representable[T]](r, g, b, a float64) T {
	return build[T]([4]float64{r, g, b, a})
}

// MakeGray builds a T whose RGB channels all equal v.
func MakeGray[T Representable[T]](v, alpha float64) T {
	return MakeRGBA[T](v, v, v, alpha)
}

// MakeWeb builds a T from [0, 255] web channels.
// Web values outside the range are squeezed first.
func MakeWeb[T Representable[T]](r, g, b int, alpha float64) T {
	return MakeRGBA[T](channel.FromWeb(r), channel.FromWeb(g), channel.FromWeb(b), alpha)
}

// MakeHSB builds a T from hue, saturation and brightness in [0, 1].
func MakeHSB[T Representable[T]](h, s, v, alpha float64) T {
	r, g, b := space.HSBToRGB(h, s, v)
	return MakeRGBA[T](r, g, b, alpha)
}

// MakeHSL builds a T from hue, saturation and lightness in [0, 1].
func MakeHSL[T Representable[T]](h, s, l, alpha float64) T {
	r, g, b := space.HSLToRGB(h, s, l)
	return MakeRGBA[T](r, g, b, channel.Rounded(alpha))
}

// ParseHex builds a T from an optional '#', 3 or 6 digit hex string.
// The returned error wraps ErrInvalidHex.
func ParseHex[T Representable[T]](s string, alpha float64) (T, error) {
	r, g, b, err := space.ParseHex(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return MakeWeb[T](r, g, b, alpha), nil
}
