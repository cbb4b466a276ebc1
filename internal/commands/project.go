package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/dre/internal/accounts"
	"github.com/cleared-dev/dre/internal/budget"
	"github.com/cleared-dev/dre/internal/config"
	"github.com/cleared-dev/dre/internal/expansion"
	"github.com/cleared-dev/dre/internal/log"
	"github.com/cleared-dev/dre/internal/model"
	"github.com/cleared-dev/dre/internal/period"
	"github.com/cleared-dev/dre/internal/records"
	"github.com/cleared-dev/dre/internal/report"
	"github.com/cleared-dev/dre/internal/resolver"
)

// project is an opened DRE project directory.
type project struct {
	root   string
	cfg    *config.Config
	log    *log.Logger
	tree   *accounts.Tree
	source *records.Dir
}

func openProject(cmd *cobra.Command, opts *rootOptions) (*project, error) {
	root, err := filepath.Abs(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadProject(root)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: "dre",
		Format:    "text",
		Output:    cmd.ErrOrStderr(),
	})
	log.SetDefault(logger)

	tree, err := accounts.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}

	return &project{
		root:   root,
		cfg:    cfg,
		log:    logger,
		tree:   tree,
		source: records.NewDir(cfg.DataDir(root), cfg.UnitsPath(root), logger),
	}, nil
}

// openBudgets opens the budget database and an adapter over it. The caller
// closes the store.
func (p *project) openBudgets(cmd *cobra.Command) (*budget.SQLiteStore, *budget.Adapter, error) {
	store, err := budget.OpenSQLite(p.cfg.BudgetDBPath(p.root))
	if err != nil {
		return nil, nil, err
	}
	notify := budget.NotifierFunc(func(msg string) {
		fmt.Fprintf(cmd.ErrOrStderr(), "notice: %s\n", msg)
	})
	return store, budget.NewAdapter(store, notify, p.log), nil
}

// budgetsFor returns the budgets of unit for month. The all-units view has
// none and never opens the database.
func (p *project) budgetsFor(cmd *cobra.Command, unit string, month period.Month) (map[string]decimal.Decimal, error) {
	if budget.IsAllUnits(unit) {
		return nil, nil
	}
	store, adapter, err := p.openBudgets(cmd)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return adapter.Load(cmd.Context(), unit, month), nil
}

// buildReport loads the records of both windows and resolves the tree.
func (p *project) buildReport(ctx context.Context, sel *selection, exp *expansion.State, budgets map[string]decimal.Decimal) (*report.Report, error) {
	month, filter, err := sel.resolve()
	if err != nil {
		return nil, err
	}

	w := month.Window(0).Union(month.Window(-1))
	recs, units, err := p.source.Load(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	p.log.DebugContext(ctx, "building report", "month", month.String(), "units", len(units))

	r := resolver.New(p.tree, resolver.Inputs{
		Records:        recs,
		Catalog:        units,
		Filter:         filter,
		NonOperational: p.cfg.Accounts.NonOperational,
		Financing:      p.cfg.Accounts.Financing,
	}, month)

	return report.Build(r, exp, report.Options{
		Budgets:    budgets,
		BudgetUnit: sel.budgetUnit,
	}), nil
}

// selection holds the month and unit flags shared by report and export.
type selection struct {
	month      string
	groups     []string
	units      []string
	budgetUnit string
}

func (s *selection) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.month, "month", "", "report month as YYYY-MM (default current month)")
	cmd.Flags().StringSliceVar(&s.groups, "group", nil, "restrict to unit groups")
	cmd.Flags().StringSliceVar(&s.units, "unit", nil, "restrict to units, by code or name")
	cmd.Flags().StringVar(&s.budgetUnit, "budget-unit", model.AllUnits, "unit whose budgets fill the budget column")
}

func (s *selection) resolve() (period.Month, model.UnitFilter, error) {
	month, err := parseMonth(s.month)
	if err != nil {
		return period.Month{}, model.UnitFilter{}, err
	}
	return month, model.UnitFilter{Groups: trimAll(s.groups), Units: trimAll(s.units)}, nil
}

func parseMonth(s string) (period.Month, error) {
	if strings.TrimSpace(s) == "" {
		return period.FromTime(time.Now()), nil
	}
	return period.Parse(s)
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
