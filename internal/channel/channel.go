// Package channel provides the numeric primitives shared by every color
// representation: range squeezing, fixed-precision rounding and the
// scaling between continuous [0,1] channels and discrete [0,255] web values.
package channel

import (
	"cmp"
	"math"
)

const (
	// Precision is the number of decimal digits Rounded keeps.
	// It only normalizes floating-point noise left by division chains.
	Precision = 16

	// WebMax is the largest web (8-bit) channel value.
	WebMax = 255

	// webDigits is the decimal precision ToWeb keeps before truncating.
	// It absorbs the noise Rounded leaves on k/255 without moving any
	// genuine fraction across an integer.
	webDigits = 9
)

// Squeeze returns value if it lies inside [lower, upper].
// Otherwise it returns upper when value exceeds it and lower in every
// other case, including NaN.
func Squeeze[T cmp.Ordered](lower, upper, value T) T {
	if value >= lower && value <= upper {
		return value
	}
	if value > upper {
		return upper
	}
	return lower
}

// Squeezed clamps a continuous channel into [0, 1].
func Squeezed(v float64) float64 {
	return Squeeze(0, 1, v)
}

// SqueezedWeb clamps a web channel into [0, 255].
func SqueezedWeb(v int) int {
	return Squeeze(0, WebMax, v)
}

// RoundTo rounds value to the given number of decimal digits.
// Halves round away from zero.
func RoundTo(value float64, digits int) float64 {
	divisor := math.Pow(10, float64(digits))
	return math.Round(value*divisor) / divisor
}

// Rounded rounds v to Precision decimal digits.
func Rounded(v float64) float64 {
	return RoundTo(v, Precision)
}

// ToWeb scales a continuous channel to a web value.
// The product is truncated toward zero, not rounded, so ToWeb(0.5) is 127.
// ToWeb(FromWeb(i)) == i for every i in [0, 255].
func ToWeb(c float64) int {
	return int(RoundTo(c*WebMax, webDigits))
}

// FromWeb scales a web value to a continuous channel.
// Out-of-range input is squeezed into [0, 255] first.
func FromWeb(v int) float64 {
	return Rounded(float64(SqueezedWeb(v)) / WebMax)
}
