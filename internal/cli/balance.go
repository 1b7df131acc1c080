package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/exergy"
	"github.com/rshade/eorx/internal/report"
)

// balanceFlags holds the single-measurement inputs.
type balanceFlags struct {
	qinj, qoil, whp, wor, c float64
	technology              string
	output                  string
}

type balanceJSON struct {
	Technology  exergy.Technology    `json:"technology"`
	Measurement exergy.Measurement   `json:"measurement"`
	Balance     exergy.BalanceResult `json:"balance"`
	Summary     engine.SeriesSummary `json:"summary"`
}

// NewBalanceCmd creates the balance command for a single measurement.
func NewBalanceCmd() *cobra.Command {
	var f balanceFlags

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Compute the exergy balance of one measurement",
		Long: `Computes the decomposed exergy balance of a single daily measurement
using the configured physical parameters.`,
		Example: `  # Waterflooding
  eorx balance --qinj 1000 --qoil 500 --whp 1500 --wor 0.5

  # Polymer injection with 0.1% concentration, as JSON
  eorx balance --technology polymer --qinj 1000 --qoil 500 --whp 1500 --wor 0.5 --c 0.001 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBalance(cmd, f)
		},
	}

	cmd.Flags().Float64Var(&f.qinj, "qinj", 0, "injection rate (bbl/day)")
	cmd.Flags().Float64Var(&f.qoil, "qoil", 0, "oil production rate (bbl/day)")
	cmd.Flags().Float64Var(&f.whp, "whp", 0, "wellhead pressure (psi)")
	cmd.Flags().Float64Var(&f.wor, "wor", 0, "water fraction of produced liquid, 0..1")
	cmd.Flags().Float64Var(&f.c, "c", 0, "polymer concentration fraction (polymer only)")
	cmd.Flags().StringVar(&f.technology, "technology", "", "EOR technology (default from config)")
	cmd.Flags().StringVar(&f.output, "output", "table", "output format: table or json")

	return cmd
}

func runBalance(cmd *cobra.Command, f balanceFlags) error {
	cfg := runtimeFrom(cmd).cfg

	params, err := cfg.ToParameters()
	if err != nil {
		return err
	}

	techName := cfg.Analysis.Technology
	if cmd.Flags().Changed("technology") {
		techName = f.technology
	}
	tech, err := exergy.ParseTechnology(techName)
	if err != nil {
		return err
	}

	meas := exergy.Measurement{
		InjectionRate:    f.qinj,
		OilRate:          f.qoil,
		WellheadPressure: f.whp,
		WOR:              f.wor,
	}
	if cmd.Flags().Changed("c") {
		meas = meas.WithConcentration(f.c)
	}

	b, err := exergy.ComputeBalance(meas, params, tech)
	if err != nil {
		return err
	}
	summary := engine.Summarize(b, params)

	logger.Debug().Ctx(cmd.Context()).
		Str("technology", tech.String()).
		Float64("x_rf", b.RecoveryFactor).
		Msg("balance computed")

	switch f.output {
	case "table", "":
		return report.RenderBalance(cmd.OutOrStdout(), tech, b, summary)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(balanceJSON{Technology: tech, Measurement: meas, Balance: b, Summary: summary})
	default:
		return fmt.Errorf("%w: %q (want table or json)", report.ErrUnknownFormat, f.output)
	}
}
