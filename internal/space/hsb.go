package space

import (
	"math"

	"github.com/gogpu/light/internal/channel"
)

// RGBToHSB converts RGB channels to hue, saturation and brightness (value).
//
// Achromatic input (all channels equal) yields hue 0 and saturation 0.
func RGBToHSB(r, g, b float64) (h, s, v float64) {
	maximum := max3(r, g, b)
	minimum := min3(r, g, b)
	v = maximum

	if minimum == maximum {
		return 0, 0, v
	}

	d := maximum - minimum
	if maximum != 0 {
		s = d / maximum
	}
	h = hueOf(r, g, b, maximum, d)
	return h, s, v
}

// HSBToRGB converts hue, saturation and brightness to RGB channels.
// Inputs are squeezed into [0, 1] first; hue 1 wraps to the red sector.
func HSBToRGB(h, s, v float64) (r, g, b float64) {
	h = channel.Squeezed(h)
	s = channel.Squeezed(s)
	v = channel.Squeezed(v)

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch math.Mod(i, 6) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	case 5:
		return v, p, q
	default:
		return v, v, v
	}
}

// hueOf splits on the maximal channel and returns hue in [0, 1).
// d must be non-zero.
func hueOf(r, g, b, maximum, d float64) float64 {
	var h float64
	switch maximum {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// max3 returns the maximum of three float64 values.
func max3(a, b, c float64) float64 {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}
