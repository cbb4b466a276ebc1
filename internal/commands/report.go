package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/dre/internal/expansion"
	"github.com/cleared-dev/dre/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		sel       selection
		expand    []string
		expandAll bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the DRE and KPIs for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}

			exp := expansion.New()
			if expandAll {
				exp.ExpandAll(p.tree)
			}
			for _, key := range trimAll(expand) {
				if _, ok := p.tree.Lookup(key); !ok {
					return fmt.Errorf("unknown account %q", key)
				}
				exp.Toggle(key)
			}

			month, err := parseMonth(sel.month)
			if err != nil {
				return err
			}
			budgets, err := p.budgetsFor(cmd, sel.budgetUnit, month)
			if err != nil {
				return err
			}

			rep, err := p.buildReport(cmd.Context(), &sel, exp, budgets)
			if err != nil {
				return err
			}
			return report.WriteText(cmd.OutOrStdout(), rep)
		},
	}

	sel.register(cmd)
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "toggle expansion of these account keys")
	cmd.Flags().BoolVar(&expandAll, "expand-all", false, "expand every expandable account")

	return cmd
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		sel selection
		out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every DRE row and the KPIs to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}

			month, err := parseMonth(sel.month)
			if err != nil {
				return err
			}
			budgets, err := p.budgetsFor(cmd, sel.budgetUnit, month)
			if err != nil {
				return err
			}

			exp := expansion.New()
			exp.ExpandAll(p.tree)
			rep, err := p.buildReport(cmd.Context(), &sel, exp, budgets)
			if err != nil {
				return err
			}

			if err := report.SaveXLSX(out, rep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows for %s to %s\n", len(rep.Rows), rep.Month, out)
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "dre.xlsx", "output workbook path")

	return cmd
}
