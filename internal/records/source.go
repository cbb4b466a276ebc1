// Package records loads the transactional records and the unit catalog the
// DRE is computed from.
package records

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/dre/internal/log"
	"github.com/cleared-dev/dre/internal/model"
	"github.com/cleared-dev/dre/internal/period"
)

// File names inside the data directory.
const (
	RevenueFile = "revenue.csv"
	CostFile    = "cost_of_goods.csv"
	LedgerFile  = "ledger.csv"
	UnitsFile   = "units.csv"
)

// Source returns the records dated inside a window.
type Source interface {
	Fetch(ctx context.Context, w period.Window) (model.Records, error)
}

// Catalog returns the organizational-unit catalog.
type Catalog interface {
	Units(ctx context.Context) ([]model.OrgUnit, error)
}

var (
	_ Source  = (*Dir)(nil)
	_ Catalog = (*Dir)(nil)
)

// Dir reads records from CSV files in a directory. Missing files are empty
// collections.
type Dir struct {
	root  string
	units string
	log   *log.Logger
}

// NewDir returns a Dir reading records from root and the unit catalog from
// unitsPath. An empty unitsPath means root/units.csv.
func NewDir(root, unitsPath string, logger *log.Logger) *Dir {
	if logger == nil {
		logger = log.Discard()
	}
	if unitsPath == "" {
		unitsPath = filepath.Join(root, UnitsFile)
	}
	return &Dir{root: root, units: unitsPath, log: logger.WithComponent("records")}
}

// Root returns the data directory.
func (d *Dir) Root() string { return d.root }

// Fetch loads the three collections concurrently and keeps the entries
// dated inside w.
func (d *Dir) Fetch(ctx context.Context, w period.Window) (model.Records, error) {
	var (
		revenue []model.RevenueEntry
		costs   []model.CostEntry
		ledger  []model.LedgerEntry
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.read(ctx, filepath.Join(d.root, RevenueFile), func(f *os.File) (err error) {
			revenue, err = ReadRevenue(f)
			return err
		})
	})
	g.Go(func() error {
		return d.read(ctx, filepath.Join(d.root, CostFile), func(f *os.File) (err error) {
			costs, err = ReadCosts(f)
			return err
		})
	})
	g.Go(func() error {
		return d.read(ctx, filepath.Join(d.root, LedgerFile), func(f *os.File) (err error) {
			ledger, err = ReadLedger(f)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return model.Records{}, err
	}

	out := model.Records{
		Revenue:     keep(revenue, w, func(e model.RevenueEntry) time.Time { return e.Date }),
		CostOfGoods: keep(costs, w, func(e model.CostEntry) time.Time { return e.Date }),
		Ledger:      keep(ledger, w, func(e model.LedgerEntry) time.Time { return e.Date }),
	}
	d.log.DebugContext(ctx, "records fetched",
		"window", w.String(),
		"revenue", len(out.Revenue),
		"cost_of_goods", len(out.CostOfGoods),
		"ledger", len(out.Ledger))
	return out, nil
}

// Units loads the unit catalog. A missing file is an empty catalog.
func (d *Dir) Units(ctx context.Context) ([]model.OrgUnit, error) {
	var units []model.OrgUnit
	err := d.read(ctx, d.units, func(f *os.File) (err error) {
		units, err = ReadUnits(f)
		return err
	})
	return units, err
}

// Load fetches the records in w and the unit catalog together.
func (d *Dir) Load(ctx context.Context, w period.Window) (model.Records, []model.OrgUnit, error) {
	var (
		recs  model.Records
		units []model.OrgUnit
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recs, err = d.Fetch(ctx, w)
		return err
	})
	g.Go(func() (err error) {
		units, err = d.Units(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Records{}, nil, err
	}
	return recs, units, nil
}

func (d *Dir) read(ctx context.Context, path string, parse func(*os.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := filepath.Base(path)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		d.log.DebugContext(ctx, "record file missing, treating as empty", "file", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func keep[T any](in []T, w period.Window, date func(T) time.Time) []T {
	var out []T
	for _, e := range in {
		if w.Contains(date(e)) {
			out = append(out, e)
		}
	}
	return out
}
