package light

import "github.com/gogpu/light/colorrep"

// DefaultMidpoint is the blend weight used without WithMidpoint.
const DefaultMidpoint = colorrep.DefaultMidpoint

// BlendOption configures Color.Blend.
//
// Example:
//
//	// Even mix
//	c := light.Red.Blend(light.Blue)
//
//	// Three quarters blue
//	c := light.Red.Blend(light.Blue, light.WithMidpoint(0.75))
type BlendOption = colorrep.BlendOption

// WithMidpoint sets the weight of the right operand of a blend.
func WithMidpoint(m float64) BlendOption {
	return colorrep.WithMidpoint(m)
}
