package engine

import "github.com/rshade/eorx/internal/exergy"

// kilo converts kg to tonnes and USD to kUSD.
const kilo = 1000.0

// SeriesSummary holds the reporting metrics derived from one BalanceResult.
type SeriesSummary struct {
	InputExergyJ      float64 `json:"input_exergy_j"`
	InputExergyKWh    float64 `json:"input_exergy_kwh"`
	CO2EmissionsTons  float64 `json:"co2_emissions_t"`
	EnergyCostKUSD    float64 `json:"energy_cost_kusd"`
	UsefulOilExergyGJ float64 `json:"useful_oil_exergy_gj"`
}

// Summarize derives the reporting metrics of b using the CO₂ factor and
// energy cost in p.
func Summarize(b exergy.BalanceResult, p exergy.Parameters) SeriesSummary {
	j := b.InputExergy()
	kwh := exergy.JoulesToKWh(j)
	return SeriesSummary{
		InputExergyJ:      j,
		InputExergyKWh:    kwh,
		CO2EmissionsTons:  kwh * p.CO2Factor / kilo,
		EnergyCostKUSD:    kwh * p.EnergyCost / kilo,
		UsefulOilExergyGJ: exergy.JoulesToGJ(b.OilTotal * b.RecoveryFactor),
	}
}
