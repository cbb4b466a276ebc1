// Package config reads and writes the dre.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/dre/internal/accounts"
)

// FileName is the config file at the project root.
const FileName = "dre.yaml"

// Environment overrides.
const (
	EnvBudgetDB = "DRE_BUDGET_DB"
	EnvLogLevel = "DRE_LOG_LEVEL"
	EnvDataDir  = "DRE_DATA_DIR"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config represents the top-level dre.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Data     DataConfig     `yaml:"data"`
	LogLevel string         `yaml:"log_level"`
	Accounts AccountsConfig `yaml:"accounts"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the record files and the budget database. Relative
// paths are resolved against the project root.
type DataConfig struct {
	Dir      string `yaml:"dir"`
	Units    string `yaml:"units"`
	BudgetDB string `yaml:"budget_db"`
}

// AccountsConfig lists the ledger accounts treated specially by the KPIs.
type AccountsConfig struct {
	NonOperational []string `yaml:"non_operational"`
	Financing      []string `yaml:"financing"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Data: DataConfig{
			Dir:      "records",
			Units:    "units.csv",
			BudgetDB: "budgets.db",
		},
		LogLevel: "info",
		Accounts: AccountsConfig{
			NonOperational: accounts.DefaultNonOperationalAccounts(),
			Financing:      accounts.DefaultFinancingAccounts(),
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "DRE",
			AuthorEmail: "dre@localhost",
		},
	}
}

// Load reads a dre.yaml file from disk. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadProject loads root/.env when present, then root/dre.yaml, applies the
// environment overrides and validates the result.
func LoadProject(root string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := Load(filepath.Join(root, FileName))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from DRE_* environment variables.
func (c *Config) ApplyEnv() {
	c.Data.BudgetDB = getEnv(EnvBudgetDB, c.Data.BudgetDB)
	c.Data.Dir = getEnv(EnvDataDir, c.Data.Dir)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
}

// Validate returns an error listing every problem found.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Data.Dir) == "" {
		problems = append(problems, "data dir cannot be empty")
	}
	if strings.TrimSpace(c.Data.BudgetDB) == "" {
		problems = append(problems, "budget database path cannot be empty")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		problems = append(problems, fmt.Sprintf("invalid log level %q: must be one of %v", c.LogLevel, logLevels))
	}
	problems = append(problems, checkAccounts("non_operational", c.Accounts.NonOperational)...)
	problems = append(problems, checkAccounts("financing", c.Accounts.Financing)...)
	if c.Git.AutoCommit && (c.Git.AuthorName == "" || c.Git.AuthorEmail == "") {
		problems = append(problems, "git author name and email are required when auto_commit is on")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func checkAccounts(field string, names []string) []string {
	var problems []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		switch {
		case n == "":
			problems = append(problems, fmt.Sprintf("%s: empty account name", field))
		case seen[n]:
			problems = append(problems, fmt.Sprintf("%s: duplicate account %q", field, n))
		}
		seen[n] = true
	}
	return problems
}

// DataDir returns the record directory resolved against root.
func (c *Config) DataDir(root string) string { return resolve(root, c.Data.Dir) }

// UnitsPath returns the unit catalog path resolved against root.
func (c *Config) UnitsPath(root string) string { return resolve(root, c.Data.Units) }

// BudgetDBPath returns the budget database path resolved against root.
func (c *Config) BudgetDBPath(root string) string { return resolve(root, c.Data.BudgetDB) }

func resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
