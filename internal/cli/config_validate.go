package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/eorx/internal/exergy"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: schema version, physical parameter
domains, technology and mode names, worker settings, output and logging options.`,
		Example: `  # Validate current configuration
  eorx config validate

  # Validate and show detailed information
  eorx config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := runtimeFrom(cmd).cfg

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg.Parameters, cfg.Analysis.Technology, cfg.Analysis.Mode)
	}

	return nil
}

func printVerboseDetails(cmd *cobra.Command, p exergy.Parameters, tech, mode string) {
	cmd.Println()
	cmd.Printf("Technology: %s\n", tech)
	cmd.Printf("Mode:       %s\n", mode)
	cmd.Printf("Densities:  oil %g kg/m3, water %g kg/m3\n", p.OilDensity, p.WaterDensity)
	cmd.Printf("Efficiency: pump %g, polymer %g, prep %g, valve %g, ALS %g\n",
		p.PumpEfficiency, p.PolymerEfficiency, p.PolymerPrepEfficiency, p.ValveEfficiency, p.ALSEfficiency)
	cmd.Printf("Geometry:   lift %g m, shipping %g km, %d valves\n", p.LiftHeight, p.ShippingDistance, p.Valves)
	cmd.Printf("Economics:  %g kg CO2/kWh, %g USD/kWh\n", p.CO2Factor, p.EnergyCost)
}
