package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the registered node and arrowhead shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := c.app.Shapes()
			w := cmd.OutOrStdout()
			st := newStyles(w)

			var b strings.Builder
			b.WriteString(st.title.Render("node shapes") + "\n")
			for _, s := range list.Nodes {
				b.WriteString("  " + s + "\n")
			}
			b.WriteString(st.title.Render("arrowheads") + "\n")
			for _, s := range list.Arrowheads {
				b.WriteString("  " + s + "\n")
			}
			_, err := io.WriteString(w, b.String())
			return err
		},
	}
}
