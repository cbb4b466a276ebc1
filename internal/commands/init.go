package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/dre/internal/accounts"
	"github.com/cleared-dev/dre/internal/config"
	"github.com/cleared-dev/dre/internal/gitops"
	"github.com/cleared-dev/dre/internal/records"
)

func newInitCommand() *cobra.Command {
	var name string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new DRE project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, !noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "do not create a git repository")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string, useGit bool) error {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default(name)
	dataDir := cfg.DataDir(dir)
	for _, d := range []string{dir, dataDir, filepath.Join(dir, "logs")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := accounts.Save(dir, accounts.DefaultChart()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	files := []struct {
		path   string
		header []string
	}{
		{filepath.Join(dataDir, records.RevenueFile), records.RevenueHeader},
		{filepath.Join(dataDir, records.CostFile), records.CostHeader},
		{filepath.Join(dataDir, records.LedgerFile), records.LedgerHeader},
		{cfg.UnitsPath(dir), records.UnitsHeader},
	}
	for _, f := range files {
		if err := writeHeaderFile(f.path, f.header); err != nil {
			return err
		}
	}

	gitignore := cfg.Data.BudgetDB + "\n.env\n*.xlsx\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	out := cmd.OutOrStdout()
	if !useGit || !cfg.Git.AutoCommit || !gitops.Available() {
		fmt.Fprintf(out, "Initialized DRE project at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return err
	}
	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := gitops.Commit(dir, "init: Initialize "+name, author)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized DRE project at %s (%s)\n", dir, hash)
	return nil
}

func writeHeaderFile(path string, header []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := records.WriteHeader(f, header); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
