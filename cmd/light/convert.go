package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/light"
)

func newConvertCmd(out *outputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Print a color in every representation",
		Long: `Print the hex, web, RGBA, HSB and HSL forms of a color.

Web components are truncated, so 0.5 prints as 127.`,
		Example: `  light convert '#3498DB'
  light convert "steel blue" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := light.Parse(args[0])
			if err != nil {
				return err
			}
			return out.print(cmd.OutOrStdout(), c)
		},
	}
}
