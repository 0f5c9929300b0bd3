package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/light"
	"github.com/gogpu/light/integration/lightgloss"
)

func newNamesCmd(out *outputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "names [filter]",
		Short: "List the CSS color keywords",
		Long: `List the CSS color keywords, optionally only those containing filter.

With --format json or yaml the names print as a list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			names := make([]string, 0, len(light.Names()))
			for _, name := range light.Names() {
				if strings.Contains(name, filter) {
					names = append(names, name)
				}
			}

			w := cmd.OutOrStdout()
			if out.format != formatText {
				return out.encode(w, names)
			}
			return out.printNames(w, names)
		},
	}
}

// printNames writes one keyword per line, prefixed by a swatch when
// requested.
func (o *outputOptions) printNames(w io.Writer, names []string) error {
	for _, name := range names {
		if !o.swatch {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
			continue
		}
		c, err := light.Named(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", lightgloss.Swatch(c, "#"+c.Hex()), name); err != nil {
			return err
		}
	}
	return nil
}
