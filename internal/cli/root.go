package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/eorx/internal/config"
	"github.com/rshade/eorx/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the eorx CLI.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:           "eorx",
		Short:         "Exergy balance of enhanced oil recovery operations",
		Long:          "eorx computes the exergy balance, recovery factor, CO2 emissions and energy cost of EOR field data.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				cwd = "."
			}
			dir := config.ResolveProjectDir(cmd.Context(), projectDir, cwd)
			cfg := config.NewWithProjectDir(cmd.Context(), dir)

			cmd.SetContext(withRuntime(cmd.Context(), &runtime{cfg: cfg, projectDir: dir}))

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding .eorx/config.yaml (default: nearest ancestor)")
	cmd.AddCommand(NewBalanceCmd(), NewSeriesCmd(), newTechCmd(), newConfigCmd(), newCacheCmd())

	return cmd
}

const rootCmdExample = `  # Balance of a single measurement
  eorx balance --qinj 1000 --qoil 500 --whp 1500 --wor 0.5

  # Evaluate a field data workbook and chart it
  eorx series --file field.xlsx --chart field.png

  # Polymer flood from CSV, skipping bad rows, as JSON
  eorx series --file poly.csv --technology polymer --mode lenient --output json

  # Browse a series interactively
  eorx series --file field.xlsx --interactive

  # List EOR technologies deployed in China
  eorx tech list --region China

  # Initialize configuration
  eorx config init`

// newTechCmd creates the tech command group.
func newTechCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tech", Short: "EOR technology catalogue"}
	cmd.AddCommand(NewTechListCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// newCacheCmd creates the cache command group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Series result cache commands"}
	cmd.AddCommand(NewCacheStatusCmd(), NewCacheClearCmd())
	return cmd
}
