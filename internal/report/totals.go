package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/greenops"
)

// RenderTotals writes the series aggregate and, when available, the
// everyday equivalents of the total CO₂.
func RenderTotals(w io.Writer, t engine.Totals, eq greenops.Equivalencies) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	rows := fmt.Sprintf("%d", t.Rows)
	if t.Excluded > 0 {
		rows = fmt.Sprintf("%d (%d excluded)", t.Rows, t.Excluded)
	}

	lines := [][2]string{
		{"Rows", rows},
	}
	if !t.Start.IsZero() {
		lines = append(lines, [2]string{"Period", t.Start.Format(dateLayout) + " .. " + t.End.Format(dateLayout)})
	}
	lines = append(lines,
		[2]string{"Input exergy", fmt.Sprintf("%.6e J (%s kWh)", t.InputExergyJ, greenops.FormatFloat(t.InputExergyKWh, 1))},
		[2]string{"CO2 emissions", greenops.FormatFloat(t.CO2EmissionsTons, 3) + " t"},
		[2]string{"Energy cost", greenops.FormatFloat(t.EnergyCostKUSD, 3) + " kUSD"},
		[2]string{"Useful oil exergy", greenops.FormatFloat(t.UsefulOilExergyGJ, 3) + " GJ"},
	)
	if t.Rows > 0 {
		lines = append(lines, [2]string{"X_RF mean/min/max", fmt.Sprintf("%.3f / %.3f / %.3f",
			t.MeanRecoveryFactor, t.MinRecoveryFactor, t.MaxRecoveryFactor)})
	}
	if !eq.Empty {
		lines = append(lines, [2]string{"CO2 equivalent", eq.CompactText})
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", l[0], l[1]); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}
	}
	return tw.Flush()
}
