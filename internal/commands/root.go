package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/dre/internal/buildinfo"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dir      string
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "dre",
		Short:   "Income statement (DRE) reports per unit and month",
		Version: buildinfo.Summary(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "project directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides dre.yaml (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(),
		newReportCommand(opts),
		newExportCommand(opts),
		newBudgetCommand(opts),
		newChartCommand(opts),
	)

	return rootCmd
}
