package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/light"
)

var mixOps = map[string]func(a, b light.Color, midpoint float64) light.Color{
	"add":      func(a, b light.Color, _ float64) light.Color { return a.Add(b) },
	"subtract": func(a, b light.Color, _ float64) light.Color { return a.Subtract(b) },
	"multiply": func(a, b light.Color, _ float64) light.Color { return a.Multiply(b) },
	"divide":   func(a, b light.Color, _ float64) light.Color { return a.Divide(b) },
	"blend": func(a, b light.Color, m float64) light.Color {
		return a.Blend(b, light.WithMidpoint(m))
	},
}

func newMixCmd(out *outputOptions) *cobra.Command {
	var (
		op       string
		midpoint float64
	)

	cmd := &cobra.Command{
		Use:   "mix <a> <b>",
		Short: "Combine two colors",
		Long: `Combine two colors with one of the blend operations.

  add       per-channel mean
  subtract  min(a+b, 1) per channel
  multiply  blend at midpoint 0.5
  divide    blend a with the inversion of b
  blend     squared-channel blend weighted by --midpoint`,
		Example: `  light mix red blue --op blend --midpoint 0.75`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := mixOps[op]
			if !ok {
				return fmt.Errorf("unknown operation %q", op)
			}
			a, err := light.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := light.Parse(args[1])
			if err != nil {
				return err
			}
			return out.print(cmd.OutOrStdout(), f(a, b, midpoint))
		},
	}

	cmd.Flags().StringVar(&op, "op", "blend", "operation: add, subtract, multiply, divide or blend")
	cmd.Flags().Float64Var(&midpoint, "midpoint", light.DefaultMidpoint, "weight of the second color for blend")

	return cmd
}
