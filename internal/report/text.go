package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/resolver"
)

// WriteText prints the visible rows as an aligned table followed by the KPI
// cards.
func WriteText(w io.Writer, rep *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "DRE %s\t\t\t\t\t\t\t\n", rep.Month)
	fmt.Fprintf(tw, "Account\t%s\t%s\t%% Rev\tVar\tVar %%\tBudget\t\n", rep.Month, rep.Month.Add(-1))
	for _, row := range rep.Visible() {
		budget := ""
		if row.HasBudget {
			budget = money(row.Budget)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			label(row),
			money(row.Current),
			money(row.Previous),
			pct(row.PctOfRevenue),
			money(row.Variation),
			pct(row.VariationPct),
			budget,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing report table: %w", err)
	}

	fmt.Fprintln(w)
	return WriteKPIs(w, rep)
}

// WriteKPIs prints the KPI cards for both periods.
func WriteKPIs(w io.Writer, rep *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "KPI\t%s\t%s\t\n", rep.Month, rep.Month.Add(-1))
	for _, c := range kpiCards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", c.label, c.format(c.value(rep.Current)), c.format(c.value(rep.Previous)))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing KPI cards: %w", err)
	}
	return nil
}

type kpiCard struct {
	label  string
	value  func(resolver.KPIs) decimal.Decimal
	format func(decimal.Decimal) string
}

var kpiCards = []kpiCard{
	{"Revenue", func(k resolver.KPIs) decimal.Decimal { return k.Revenue }, money},
	{"Cost of goods", func(k resolver.KPIs) decimal.Decimal { return k.CostOfGoods }, money},
	{"Operating expenses", func(k resolver.KPIs) decimal.Decimal { return k.OperatingExpenses }, money},
	{"EBITDA", func(k resolver.KPIs) decimal.Decimal { return k.EBITDA }, money},
	{"EBITDA margin", func(k resolver.KPIs) decimal.Decimal { return k.EBITDAMarginPct }, pct},
	{"Non-operating", func(k resolver.KPIs) decimal.Decimal { return k.NonOperating }, money},
	{"Net profit", func(k resolver.KPIs) decimal.Decimal { return k.NetProfit }, money},
	{"Net margin", func(k resolver.KPIs) decimal.Decimal { return k.NetProfitMarginPct }, pct},
	{"Net debt", func(k resolver.KPIs) decimal.Decimal { return k.NetDebt }, money},
}

func label(row Row) string {
	marker := "  "
	if row.Expandable {
		marker = "+ "
		if row.Expanded {
			marker = "- "
		}
	}
	return strings.Repeat("  ", row.Depth) + marker + row.Name
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func pct(d decimal.Decimal) string { return d.StringFixed(2) + "%" }
