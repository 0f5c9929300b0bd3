package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/light"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		out     = &outputOptions{format: formatText}
	)

	root := &cobra.Command{
		Use:   "light",
		Short: "Convert, mix and adjust colors",
		Long: `light is a small front end for the light color library.

Colors are given as hex ("#FF0000", "F00") or as CSS keywords
("steelblue"). Results print as text, JSON or YAML.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				light.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return out.validate()
		},
	}
	root.SetVersionTemplate(`{{printf "light version %s\n" .Version}}`)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rejected input to stderr")
	root.PersistentFlags().StringVarP(&out.format, "format", "f", formatText, "output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&out.swatch, "swatch", false, "render a color swatch in text output")

	root.AddCommand(newConvertCmd(out))
	root.AddCommand(newMixCmd(out))
	root.AddCommand(newAdjustCmd(out))
	root.AddCommand(newNamesCmd(out))
	root.AddCommand(newVersionCmd())

	return root
}
