package light

import "image/color"

// RGBA implements the color.Color interface.
// It returns alpha-premultiplied values in the range [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA64().RGBA()
}

// NRGBA64 converts c to a non-premultiplied 16-bit color.
func (c Color) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(c.r*0xffff + 0.5),
		G: uint16(c.g*0xffff + 0.5),
		B: uint16(c.b*0xffff + 0.5),
		A: uint16(c.a*0xffff + 0.5),
	}
}

// NRGBA converts c to a non-premultiplied 8-bit color using the same
// truncating scale as WebComponents.
func (c Color) NRGBA() color.NRGBA {
	w := c.WebComponents()
	return color.NRGBA{
		R: uint8(w[0]),
		G: uint8(w[1]),
		B: uint8(w[2]),
		A: uint8(c.a * 255),
	}
}

// FromColor converts any color.Color to a Color.
// Premultiplied sources are unpremultiplied first.
func FromColor(c color.Color) Color {
	if lc, ok := c.(Color); ok {
		return lc
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return New(
		float64(n.R)/0xffff,
		float64(n.G)/0xffff,
		float64(n.B)/0xffff,
		float64(n.A)/0xffff,
	)
}
