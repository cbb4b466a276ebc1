package commands

import (
	"errors"
	"fmt"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/dre/internal/auditlog"
	"github.com/cleared-dev/dre/internal/budget"
	"github.com/cleared-dev/dre/internal/filter"
	"github.com/cleared-dev/dre/internal/gitops"
	"github.com/cleared-dev/dre/internal/model"
	"github.com/cleared-dev/dre/internal/period"
)

func newBudgetCommand(opts *rootOptions) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget operations",
	}
	budgetCmd.AddCommand(
		newBudgetSetCommand(opts),
		newBudgetListCommand(opts),
		newBudgetLogCommand(opts),
	)
	return budgetCmd
}

func newBudgetSetCommand(opts *rootOptions) *cobra.Command {
	var unit, month string

	cmd := &cobra.Command{
		Use:   "set <account> <amount>",
		Short: "Set the budget of an editable account for one unit and month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			m, err := parseMonth(month)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			account, err := p.budgetAccount(args[0])
			if err != nil {
				return err
			}
			return p.setBudget(cmd, unit, account, m, amount)
		},
	}

	cmd.Flags().StringVar(&unit, "unit", model.AllUnits, "unit code")
	cmd.Flags().StringVar(&month, "month", "", "budget month as YYYY-MM (default current month)")

	return cmd
}

// budgetAccount returns the name budgets are stored under for the account
// with the given key or name.
func (p *project) budgetAccount(key string) (string, error) {
	i, ok := p.tree.Lookup(key)
	if !ok {
		return "", fmt.Errorf("unknown account %q", key)
	}
	n := p.tree.Node(i)
	if !n.Editable || !n.IsLeaf() {
		return "", fmt.Errorf("account %q does not take budgets", n.Name)
	}
	return n.Name, nil
}

func (p *project) setBudget(cmd *cobra.Command, unit, account string, month period.Month, amount decimal.Decimal) error {
	store, adapter, err := p.openBudgets(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	adapter.Load(cmd.Context(), unit, month)
	saveErr := adapter.Save(cmd.Context(), unit, account, month, amount)

	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Unit:      unit,
		Account:   account,
		Period:    month,
		Amount:    amount,
		Outcome:   auditlog.OutcomeSaved,
	}
	if !budget.IsAllUnits(unit) {
		entry.Unit = filter.NormalizeUnitCode(unit)
	}
	switch {
	case errors.Is(saveErr, budget.ErrAllUnits):
		entry.Outcome, entry.Detail = auditlog.OutcomeRejected, saveErr.Error()
	case saveErr != nil:
		entry.Outcome, entry.Detail = auditlog.OutcomeFailed, saveErr.Error()
	}
	if err := auditlog.Append(p.root, entry); err != nil {
		p.log.WarnContext(cmd.Context(), "failed to write budget log", "error", err)
	} else {
		p.commitBudgetLog(cmd, entry)
	}

	if saveErr != nil {
		return saveErr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s (unit %s, %s) set to %s\n",
		account, entry.Unit, month, amount.StringFixed(2))
	return nil
}

func (p *project) commitBudgetLog(cmd *cobra.Command, e auditlog.Entry) {
	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) || !gitops.Available() {
		return
	}
	msg := fmt.Sprintf("budget: %s %s %s %s (%s)", e.Unit, e.Period, e.Account, e.Amount.StringFixed(2), e.Outcome)
	author := gitops.Author{Name: p.cfg.Git.AuthorName, Email: p.cfg.Git.AuthorEmail}
	if _, err := gitops.Commit(p.root, msg, author, auditlog.File); err != nil {
		p.log.WarnContext(cmd.Context(), "failed to commit budget log", "error", err)
	}
}

func newBudgetListCommand(opts *rootOptions) *cobra.Command {
	var unit, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the budgets of one unit and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			m, err := parseMonth(month)
			if err != nil {
				return err
			}

			budgets, err := p.budgetsFor(cmd, unit, m)
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No budgets.")
				return nil
			}

			names := make([]string, 0, len(budgets))
			for name := range budgets {
				names = append(names, name)
			}
			slices.Sort(names)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Account\tBudget\t")
			for _, name := range names {
				fmt.Fprintf(tw, "%s\t%s\t\n", name, budgets[name].StringFixed(2))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&unit, "unit", model.AllUnits, "unit code")
	cmd.Flags().StringVar(&month, "month", "", "budget month as YYYY-MM (default current month)")

	return cmd
}

func newBudgetLogCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the history of budget edits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			entries, err := auditlog.Read(p.root)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Time\tUnit\tMonth\tAccount\tAmount\tOutcome\t")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
					e.Timestamp.Local().Format(time.DateTime), e.Unit, e.Period, e.Account, e.Amount.StringFixed(2), e.Outcome)
			}
			return tw.Flush()
		},
	}
}
