package exergy

import (
	"math"
	"strconv"
)

// Parameters holds the user-tunable physical, efficiency and economic inputs
// of a run. A Parameters value is copied into a Model and never mutated there.
//
// Units:
//   - OilDensity, WaterDensity: kg/m³
//   - efficiencies: fractions in (0, 1]
//   - LiftHeight: m
//   - ShippingDistance: km
//   - CO2Factor: kg CO₂ per kWh
//   - EnergyCost: USD per kWh
type Parameters struct {
	OilDensity            float64 `yaml:"oil_density"             json:"oil_density"`
	WaterDensity          float64 `yaml:"water_density"           json:"water_density"`
	PumpEfficiency        float64 `yaml:"pump_efficiency"         json:"pump_efficiency"`
	PolymerEfficiency     float64 `yaml:"polymer_efficiency"      json:"polymer_efficiency"`
	PolymerPrepEfficiency float64 `yaml:"polymer_prep_efficiency" json:"polymer_prep_efficiency"`
	ValveEfficiency       float64 `yaml:"valve_efficiency"        json:"valve_efficiency"`
	ALSEfficiency         float64 `yaml:"als_efficiency"          json:"als_efficiency"`
	LiftHeight            float64 `yaml:"lift_height_m"           json:"lift_height_m"`
	ShippingDistance      float64 `yaml:"shipping_distance_km"    json:"shipping_distance_km"`
	Valves                int     `yaml:"valves"                  json:"valves"`
	CO2Factor             float64 `yaml:"co2_factor_kg_per_kwh"   json:"co2_factor_kg_per_kwh"`
	EnergyCost            float64 `yaml:"energy_cost_usd_per_kwh" json:"energy_cost_usd_per_kwh"`
}

// DefaultParameters returns the field defaults used when nothing is configured.
func DefaultParameters() Parameters {
	return Parameters{
		OilDensity:            900,
		WaterDensity:          1050,
		PumpEfficiency:        0.80,
		PolymerEfficiency:     0.90,
		PolymerPrepEfficiency: 0.85,
		ValveEfficiency:       0.90,
		ALSEfficiency:         0.85,
		LiftHeight:            1500,
		ShippingDistance:      5000,
		Valves:                5,
		CO2Factor:             0.4,
		EnergyCost:            0.1,
	}
}

// Validate checks every parameter against its domain and returns the first
// violation as a *ConfigurationError.
func (p Parameters) Validate() error {
	if err := checkRange("oil_density", p.OilDensity, MinOilDensity, MaxOilDensity); err != nil {
		return err
	}
	if err := checkRange("water_density", p.WaterDensity, MinWaterDensity, MaxWaterDensity); err != nil {
		return err
	}

	efficiencies := []struct {
		field string
		value float64
	}{
		{"pump_efficiency", p.PumpEfficiency},
		{"polymer_efficiency", p.PolymerEfficiency},
		{"polymer_prep_efficiency", p.PolymerPrepEfficiency},
		{"valve_efficiency", p.ValveEfficiency},
		{"als_efficiency", p.ALSEfficiency},
	}
	for _, e := range efficiencies {
		if err := checkEfficiency(e.field, e.value); err != nil {
			return err
		}
	}

	if !finite(p.LiftHeight) || p.LiftHeight <= 0 {
		return &ConfigurationError{Field: "lift_height_m", Value: p.LiftHeight, Reason: "must be > 0"}
	}
	if err := checkNonNegative("shipping_distance_km", p.ShippingDistance); err != nil {
		return err
	}
	if p.Valves < MinValves {
		return &ConfigurationError{Field: "valves", Value: float64(p.Valves), Reason: "must be >= 1"}
	}
	if err := checkNonNegative("co2_factor_kg_per_kwh", p.CO2Factor); err != nil {
		return err
	}
	return checkNonNegative("energy_cost_usd_per_kwh", p.EnergyCost)
}

func checkRange(field string, v, lo, hi float64) error {
	if !finite(v) || v < lo || v > hi {
		return &ConfigurationError{
			Field:  field,
			Value:  v,
			Reason: "must be in [" + formatBound(lo) + ", " + formatBound(hi) + "]",
		}
	}
	return nil
}

func checkEfficiency(field string, v float64) error {
	if !finite(v) || v <= 0 || v > MaxEfficiency {
		return &ConfigurationError{Field: field, Value: v, Reason: "must be in (0, 1]"}
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if !finite(v) || v < 0 {
		return &ConfigurationError{Field: field, Value: v, Reason: "must be >= 0"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
