package colorrep

import "math"

// Blend mixes the squared RGB channels of lhs and rhs, weighted by the
// midpoint (default 0.5), and interpolates alpha linearly:
//
//	c = (1-m)*c1² + m*c2²
//	a = (1-m)*a1  + m*a2
func Blend[T Representable[T]](lhs T, rhs Componenter, opts ...BlendOption) T {
	m := applyBlendOptions(opts).midpoint
	v := Compare(lhs, rhs, func(l, r float64) float64 {
		return (1-m)*l*l + m*r*r
	})
	v[3] = (1-m)*Alpha(lhs) + m*Alpha(rhs)
	return build[T](v)
}

// Add returns the per-channel mean of lhs and rhs, alpha included.
func Add[T Representable[T]](lhs T, rhs Componenter) T {
	return build[T](Compare(lhs, rhs, func(l, r float64) float64 {
		return (l + r) / 2
	}))
}

// Subtract returns min(c1+c2, 1) for every channel, alpha included.
//
// Despite the name this is a saturating sum, not a difference. Callers
// depend on it, so it is kept as is.
func Subtract[T Representable[T]](lhs T, rhs Componenter) T {
	return build[T](Compare(lhs, rhs, func(l, r float64) float64 {
		return math.Min(l+r, 1)
	}))
}

// Multiply is Blend at the default midpoint.
func Multiply[T Representable[T]](lhs T, rhs Componenter) T {
	return Blend(lhs, rhs)
}

// Divide blends lhs with the RGB inversion of rhs.
func Divide[T Representable[T]](lhs T, rhs Componenter) T {
	return Blend(lhs, inverted(rhs))
}

// inverted returns 1-c for each RGB channel of c, alpha untouched.
func inverted(c Componenter) vector {
	v := c.Components()
	return vector{1 - v[0], 1 - v[1], 1 - v[2], v[3]}
}
