package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Validate and print the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Account\tKey\tFormula\tFlags\t")
			for _, i := range p.tree.Walk() {
				n := p.tree.Node(i)
				var flags []string
				if n.Editable {
					flags = append(flags, "editable")
				}
				if n.Expandable {
					flags = append(flags, "expandable")
				}
				fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t\n",
					strings.Repeat("  ", p.tree.Depth(i)), n.Name, n.Key(), n.Formula, strings.Join(flags, ","))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d accounts, %d leaves\n", p.tree.Len(), len(p.tree.Leaves()))
			return nil
		},
	}
}
