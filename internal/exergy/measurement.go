package exergy

import (
	"math"
	"time"
)

// Column names used by measurement tables and validation errors.
const (
	FieldDate             = "date"
	FieldInjectionRate    = "Qinj_B"
	FieldOilRate          = "qoil_B"
	FieldWellheadPressure = "WHP_psi"
	FieldWOR              = "WOR"
	FieldConcentration    = "C"
)

// Measurement is one timestep of well data as reported in the field.
//
// Rates are in barrels per day and pressure in psi; conversion to SI happens
// inside the calculator. Concentration is nil when the source did not carry a
// value, which is only acceptable for technologies that do not require it.
type Measurement struct {
	Date time.Time `json:"date"`
	// InjectionRate is Qinj in bbl/day.
	InjectionRate float64 `json:"qinj_bbl_day"`
	// OilRate is qoil in bbl/day.
	OilRate float64 `json:"qoil_bbl_day"`
	// WellheadPressure is WHP in psi, used as the injection pressure differential.
	WellheadPressure float64 `json:"whp_psi"`
	// WOR is the water fraction of produced liquid, in [0, 1].
	WOR float64 `json:"wor"`
	// Concentration is the polymer fraction C.
	Concentration *float64 `json:"c,omitempty"`
	// Line is the 1-based line or spreadsheet row the measurement was read
	// from, header included; 0 when it did not come from a file.
	Line int `json:"line,omitempty"`
}

// WithConcentration returns a copy of m carrying polymer concentration c.
func (m Measurement) WithConcentration(c float64) Measurement {
	m.Concentration = &c
	return m
}

// Validate checks the measurement for the given technology. It returns a
// *ValidationError (Row set to NoRow) describing the first problem found.
func (m Measurement) Validate(tech Technology) error {
	rates := []struct {
		field string
		value float64
	}{
		{FieldInjectionRate, m.InjectionRate},
		{FieldOilRate, m.OilRate},
		{FieldWellheadPressure, m.WellheadPressure},
	}
	for _, r := range rates {
		if !finite(r.value) {
			return invalidField(r.field, r.value, "must be a finite number")
		}
		if r.value < 0 {
			return invalidField(r.field, r.value, "must be >= 0")
		}
	}

	if !finite(m.WOR) || m.WOR < 0 || m.WOR > 1 {
		return invalidField(FieldWOR, m.WOR, "must be in [0, 1]")
	}

	if !tech.RequiresConcentration() {
		return nil
	}
	if m.Concentration == nil {
		return invalidField(FieldConcentration, math.NaN(), "required for "+tech.DisplayName())
	}
	if c := *m.Concentration; !finite(c) || c < 0 {
		return invalidField(FieldConcentration, c, "must be a finite number >= 0")
	}
	return nil
}

// concentration returns C for technologies that use it and 0 otherwise.
func (m Measurement) concentration(tech Technology) float64 {
	if !tech.RequiresConcentration() || m.Concentration == nil {
		return 0
	}
	return *m.Concentration
}

func invalidField(field string, value float64, reason string) *ValidationError {
	return &ValidationError{Row: NoRow, Field: field, Value: value, Reason: reason}
}
