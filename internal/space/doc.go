// Package space implements the color-space math behind every derived
// representation: RGB to and from HSB (HSV) and HSL, and the hexadecimal
// digit handling used by hex strings.
//
// All functions operate on plain float64 channels in [0, 1] and hold no
// state. Hue is normalized to [0, 1] rather than degrees.
package space
