package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX export.
const (
	SheetDRE  = "DRE"
	SheetKPIs = "KPIs"
)

var rowHeadings = []any{
	"Key", "Account", "Level", "Current", "Previous",
	"% Revenue", "Variation", "Variation %", "Budget",
}

// NewWorkbook renders every row, visible or not, and the KPI cards into a
// new workbook. The caller closes it.
func NewWorkbook(rep *Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetDRE); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetKPIs); err != nil {
		f.Close()
		return nil, fmt.Errorf("creating KPI sheet: %w", err)
	}

	if err := writeRows(f, rep); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeKPIs(f, rep); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX writes the workbook for rep to w.
func WriteXLSX(w io.Writer, rep *Report) error {
	f, err := NewWorkbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook for rep to path.
func SaveXLSX(path string, rep *Report) error {
	f, err := NewWorkbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, rep *Report) error {
	if err := setRow(f, SheetDRE, 1, rowHeadings); err != nil {
		return err
	}
	for i, row := range rep.Rows {
		values := []any{
			row.Key,
			row.Name,
			row.Level,
			row.Current.InexactFloat64(),
			row.Previous.InexactFloat64(),
			row.PctOfRevenue.InexactFloat64(),
			row.Variation.InexactFloat64(),
			row.VariationPct.InexactFloat64(),
			nil,
		}
		if row.HasBudget {
			values[8] = row.Budget.InexactFloat64()
		}
		if err := setRow(f, SheetDRE, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeKPIs(f *excelize.File, rep *Report) error {
	if err := setRow(f, SheetKPIs, 1, []any{"KPI", rep.Month.String(), rep.Month.Add(-1).String()}); err != nil {
		return err
	}
	for i, c := range kpiCards {
		values := []any{
			c.label,
			c.value(rep.Current).InexactFloat64(),
			c.value(rep.Previous).InexactFloat64(),
		}
		if err := setRow(f, SheetKPIs, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
