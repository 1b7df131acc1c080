package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/exergy"
)

// tabwriterPadding is the minimum gap between table columns.
const tabwriterPadding = 2

// RenderTable writes the summary table: one line per row with date, CO₂,
// cost, recovery factor and useful oil exergy, rounded to 3 decimals.
func RenderTable(w io.Writer, result *engine.SeriesResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintln(tw, "DATE\tCO2 (t)\tCOST (kUSD)\tX_RF\tUSEFUL (GJ)\t"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "----\t-------\t-----------\t----\t-----------\t"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, r := range result.Rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			rowLabel(r),
			r.Summary.CO2EmissionsTons,
			r.Summary.EnergyCostKUSD,
			r.Balance.RecoveryFactor,
			r.Summary.UsefulOilExergyGJ,
		); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Index, err)
		}
	}

	return tw.Flush()
}

// RenderBalance writes the decomposed balance of a single measurement.
func RenderBalance(w io.Writer, tech exergy.Technology, b exergy.BalanceResult, s engine.SeriesSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	lines := []struct {
		label string
		value string
	}{
		{"Technology", tech.DisplayName()},
		{"Mixing (J)", fmt.Sprintf("%.6e", b.Mixing)},
		{"Water treatment (J)", fmt.Sprintf("%.6e", b.WaterTreatment)},
		{"Injection (J)", fmt.Sprintf("%.6e", b.Injection)},
		{"Valve friction (J)", fmt.Sprintf("%.6e", b.ValveFriction)},
		{"Artificial lift (J)", fmt.Sprintf("%.6e", b.ArtificialLift)},
		{"Input exergy (J)", fmt.Sprintf("%.6e", s.InputExergyJ)},
		{"Input exergy (kWh)", fmt.Sprintf("%.3f", s.InputExergyKWh)},
		{"Oil exergy (J)", fmt.Sprintf("%.6e", b.OilTotal)},
		{"Recovery factor", fmt.Sprintf("%.5f", b.RecoveryFactor)},
		{"CO2 (t)", fmt.Sprintf("%.3f", s.CO2EmissionsTons)},
		{"Energy cost (kUSD)", fmt.Sprintf("%.3f", s.EnergyCostKUSD)},
		{"Useful oil exergy (GJ)", fmt.Sprintf("%.3f", s.UsefulOilExergyGJ)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", l.label, l.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
