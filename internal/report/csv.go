package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rshade/eorx/internal/engine"
)

//nolint:gochecknoglobals // Column order of the CSV export.
var csvHeader = []string{
	"index", "date",
	"Qinj_B", "qoil_B", "WHP_psi", "WOR", "C",
	"x_mix_j", "x_water_treat_j", "x_inject_j", "x_valve_friction_j", "x_artificial_lift_j", "x_oil_total_j",
	"x_rf", "input_exergy_kwh", "co2_t", "cost_kusd", "useful_exergy_gj",
}

// RenderCSV writes every row with its inputs, balance terms and summary.
func RenderCSV(w io.Writer, result *engine.SeriesResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range result.Rows {
		m, b, s := r.Measurement, r.Balance, r.Summary

		date := ""
		if !m.Date.IsZero() {
			date = m.Date.Format(dateLayout)
		}
		c := ""
		if m.Concentration != nil {
			c = ff(*m.Concentration)
		}

		rec := []string{
			strconv.Itoa(r.Index), date,
			ff(m.InjectionRate), ff(m.OilRate), ff(m.WellheadPressure), ff(m.WOR), c,
			ff(b.Mixing), ff(b.WaterTreatment), ff(b.Injection), ff(b.ValveFriction), ff(b.ArtificialLift), ff(b.OilTotal),
			ff(b.RecoveryFactor), ff(s.InputExergyKWh), ff(s.CO2EmissionsTons), ff(s.EnergyCostKUSD), ff(s.UsefulOilExergyGJ),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row %d: %w", r.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
