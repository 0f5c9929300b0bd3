package space

import "github.com/gogpu/light/internal/channel"

// hueEpsilon nudges the hue samples off the exact 1/6, 1/2 and 2/3
// segment boundaries so neighbouring hues do not flicker between segments.
const hueEpsilon = 0.0000000000000003

// RGBToHSL converts RGB channels to hue, saturation and lightness.
//
// Saturation follows the lightness-driven HSL formula, which differs from
// the HSB one. Achromatic input yields hue 0 and saturation 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	maximum := max3(r, g, b)
	minimum := min3(r, g, b)
	l = (maximum + minimum) / 2

	if minimum == maximum {
		return 0, 0, l
	}

	d := maximum - minimum
	if l > 0.5 {
		s = d / (2 - maximum - minimum)
	} else {
		s = d / (maximum + minimum)
	}
	h = hueOf(r, g, b, maximum, d)
	return h, s, l
}

// HSLToRGB converts hue, saturation and lightness to RGB channels.
//
// Sample points are squeezed into [0, 1] rather than wrapped, and every
// result channel is rounded to channel.Precision digits.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return channel.Rounded(l), channel.Rounded(l), channel.Rounded(l)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r = channel.Squeezed(hueToRGB(p, q, h+1.0/3-hueEpsilon))
	g = channel.Squeezed(hueToRGB(p, q, h) + hueEpsilon)
	b = channel.Squeezed(hueToRGB(p, q, h-1.0/3+hueEpsilon))

	return channel.Rounded(r), channel.Rounded(g), channel.Rounded(b)
}

// hueToRGB evaluates the piecewise HSL ramp at t. Segment bounds are
// inclusive on the upper side.
func hueToRGB(p, q, t float64) float64 {
	t = channel.Squeezed(t)
	switch {
	case t <= 1.0/6:
		return p + (q-p)*6*t
	case t <= 1.0/2:
		return q
	case t <= 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
