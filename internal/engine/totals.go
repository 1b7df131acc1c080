package engine

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Totals is the whole-series aggregate of accepted rows. Exergy, CO₂ and cost
// figures are plain sums over rows; no time integration is applied.
type Totals struct {
	Rows     int `json:"rows"`
	Excluded int `json:"excluded"`

	InputExergyJ      float64 `json:"input_exergy_j"`
	InputExergyKWh    float64 `json:"input_exergy_kwh"`
	OilExergyJ        float64 `json:"oil_exergy_j"`
	CO2EmissionsTons  float64 `json:"co2_emissions_t"`
	EnergyCostKUSD    float64 `json:"energy_cost_kusd"`
	UsefulOilExergyGJ float64 `json:"useful_oil_exergy_gj"`

	MeanRecoveryFactor float64 `json:"mean_rf"`
	MinRecoveryFactor  float64 `json:"min_rf"`
	MaxRecoveryFactor  float64 `json:"max_rf"`

	Start time.Time `json:"start,omitzero"`
	End   time.Time `json:"end,omitzero"`
}

// ComputeTotals aggregates rows. excluded is carried through for reporting.
func ComputeTotals(rows []Row, excluded int) Totals {
	t := Totals{Rows: len(rows), Excluded: excluded}
	if len(rows) == 0 {
		return t
	}

	var (
		inputJ = make([]float64, len(rows))
		kwh    = make([]float64, len(rows))
		oil    = make([]float64, len(rows))
		co2    = make([]float64, len(rows))
		cost   = make([]float64, len(rows))
		useful = make([]float64, len(rows))
		rf     = make([]float64, len(rows))
	)
	for i, r := range rows {
		inputJ[i] = r.Summary.InputExergyJ
		kwh[i] = r.Summary.InputExergyKWh
		oil[i] = r.Balance.OilTotal
		co2[i] = r.Summary.CO2EmissionsTons
		cost[i] = r.Summary.EnergyCostKUSD
		useful[i] = r.Summary.UsefulOilExergyGJ
		rf[i] = r.Balance.RecoveryFactor

		d := r.Measurement.Date
		if d.IsZero() {
			continue
		}
		if t.Start.IsZero() || d.Before(t.Start) {
			t.Start = d
		}
		if t.End.IsZero() || d.After(t.End) {
			t.End = d
		}
	}

	t.InputExergyJ = floats.Sum(inputJ)
	t.InputExergyKWh = floats.Sum(kwh)
	t.OilExergyJ = floats.Sum(oil)
	t.CO2EmissionsTons = floats.Sum(co2)
	t.EnergyCostKUSD = floats.Sum(cost)
	t.UsefulOilExergyGJ = floats.Sum(useful)
	t.MeanRecoveryFactor = stat.Mean(rf, nil)
	t.MinRecoveryFactor = floats.Min(rf)
	t.MaxRecoveryFactor = floats.Max(rf)

	return t
}
