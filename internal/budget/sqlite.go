package budget

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/model"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps budgets in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the budget database at path and
// brings its schema up to date.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// RunMigrations applies the embedded migrations on a connection of its own,
// since closing the migrator closes the database it was given.
func RunMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// List returns the budgets of unit for the month starting at period, sorted
// by account.
func (s *SQLiteStore) List(ctx context.Context, unit string, period time.Time) ([]model.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT account_name, amount, updated_at
		FROM budgets
		WHERE unit = ? AND period = ?
		ORDER BY account_name`,
		unit, period.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var out []model.Budget
	for rows.Next() {
		var account, amount, updated string
		if err := rows.Scan(&account, &amount, &updated); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}

		// A stored amount that no longer parses reads as zero.
		value, err := decimal.NewFromString(amount)
		if err != nil {
			value = decimal.Zero
		}
		updatedAt, _ := time.Parse(time.RFC3339, updated)

		out = append(out, model.Budget{
			Unit:      unit,
			Account:   account,
			Period:    period,
			Amount:    value,
			UpdatedAt: updatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return out, nil
}

// Upsert inserts b or replaces the amount stored under its natural key.
func (s *SQLiteStore) Upsert(ctx context.Context, b model.Budget) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (unit, account_name, period, amount, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (unit, account_name, period)
		DO UPDATE SET amount = excluded.amount, updated_at = excluded.updated_at`,
		b.Unit, b.Account, b.Period.Format(time.DateOnly), b.Amount.String(), b.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}
