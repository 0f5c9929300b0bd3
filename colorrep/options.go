package colorrep

// DefaultMidpoint is the blend weight used when no WithMidpoint option is given.
const DefaultMidpoint = 0.5

// BlendOption configures Blend.
//
// Example:
//
//	// Even mix
//	c := colorrep.Blend(a, b)
//
//	// Mostly b
//	c := colorrep.Blend(a, b, colorrep.WithMidpoint(0.8))
type BlendOption func(*blendOptions)

// blendOptions holds optional configuration for Blend.
type blendOptions struct {
	midpoint float64
}

// defaultBlendOptions returns the default blend options.
func defaultBlendOptions() blendOptions {
	return blendOptions{midpoint: DefaultMidpoint}
}

// WithMidpoint sets the weight of the right operand.
// 0 keeps the left operand's squared channels, 1 takes the right's.
func WithMidpoint(m float64) BlendOption {
	return func(o *blendOptions) {
		o.midpoint = m
	}
}

func applyBlendOptions(opts []BlendOption) blendOptions {
	o := defaultBlendOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
