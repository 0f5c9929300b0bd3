package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/light"
)

type adjustments struct {
	hue, saturation, brightness, luminosity float64
	lighten, darken, alpha                  float64
	invert                                  bool
}

// apply runs the adjustments whose flags were set, in a fixed order:
// HSB and HSL replacements, then lighten/darken, then alpha and invert.
func (a *adjustments) apply(cmd *cobra.Command, c light.Color) light.Color {
	set := cmd.Flags().Changed
	if set("hue") {
		c = c.WithHue(a.hue)
	}
	if set("saturation") {
		c = c.WithSaturation(a.saturation)
	}
	if set("brightness") {
		c = c.WithBrightness(a.brightness)
	}
	if set("luminosity") {
		c = c.WithLuminosity(a.luminosity)
	}
	if set("lighten") {
		c = c.Lighten(a.lighten)
	}
	if set("darken") {
		c = c.Darken(a.darken)
	}
	if set("alpha") {
		c = c.WithAlpha(a.alpha)
	}
	if a.invert {
		c = c.Invert()
	}
	return c
}

func newAdjustCmd(out *outputOptions) *cobra.Command {
	var adj adjustments

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Change components of a color",
		Long: `Replace or shift components of a color.

--lighten and --darken take an amount in 0-10 and shift the HSB
brightness by amount/10: lighten lowers it, darken raises it.`,
		Example: `  light adjust red --hue 0.5
  light adjust graphite --alpha 0.4 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := light.Parse(args[0])
			if err != nil {
				return err
			}
			return out.print(cmd.OutOrStdout(), adj.apply(cmd, c))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&adj.hue, "hue", 0, "replace the HSB hue (0-1)")
	f.Float64Var(&adj.saturation, "saturation", 0, "replace the HSB saturation (0-1)")
	f.Float64Var(&adj.brightness, "brightness", 0, "replace the HSB brightness (0-1)")
	f.Float64Var(&adj.luminosity, "luminosity", 0, "replace the HSL lightness (0-1)")
	f.Float64Var(&adj.lighten, "lighten", 0, "lighten by an amount in 0-10")
	f.Float64Var(&adj.darken, "darken", 0, "darken by an amount in 0-10")
	f.Float64Var(&adj.alpha, "alpha", 1, "replace the alpha (0-1)")
	f.BoolVar(&adj.invert, "invert", false, "invert the RGB channels")

	return cmd
}
