// Package exergy computes the exergy balance of an enhanced oil recovery
// operation for a single timestep of well measurements.
//
// The calculation is a pure function of a Measurement, the run Parameters and
// the selected Technology. It converts field units to SI, decomposes the
// process input exergy into mixing, water treatment, injection pumping, valve
// throttling and artificial lift terms, and compares their sum with the
// chemical exergy of the produced oil.
package exergy

import "fmt"

// BalanceResult is the decomposed exergy balance of one measurement. Every
// exergy term is in joules for the rate period of the input (per day for
// bbl/day inputs); the calculator performs no time integration.
type BalanceResult struct {
	// Mixing is X_mix, the polymer manufacturing, shipping and preparation exergy.
	Mixing float64 `json:"x_mix_j"`
	// WaterTreatment is X_waterTreat.
	WaterTreatment float64 `json:"x_water_treat_j"`
	// Injection is X_inject, the injection pump work.
	Injection float64 `json:"x_inject_j"`
	// ValveFriction is X_valveFriction, the throttling loss over all control valves.
	ValveFriction float64 `json:"x_valve_friction_j"`
	// ArtificialLift is X_artificialLift, the lift work for oil plus associated water.
	ArtificialLift float64 `json:"x_artificial_lift_j"`
	// OilTotal is X_oilTotal, the chemical exergy of the produced oil.
	OilTotal float64 `json:"x_oil_total_j"`
	// RecoveryFactor is X_RF; negative when inputs exceed the oil chemical exergy.
	RecoveryFactor float64 `json:"x_rf"`
}

// InputExergy returns the sum of the five process-input terms in joules.
func (b BalanceResult) InputExergy() float64 {
	return b.Mixing + b.WaterTreatment + b.Injection + b.ValveFriction + b.ArtificialLift
}

// Model binds validated Parameters to a Technology. It is immutable and safe
// for concurrent use.
type Model struct {
	params Parameters
	tech   Technology
}

// NewModel validates the parameters and technology once for a run.
func NewModel(params Parameters, tech Technology) (*Model, error) {
	if !tech.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTechnology, int(tech))
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Model{params: params, tech: tech}, nil
}

// Parameters returns a copy of the model parameters.
func (m *Model) Parameters() Parameters { return m.params }

// Technology returns the model technology.
func (m *Model) Technology() Technology { return m.tech }

// Balance validates meas for the model technology and computes its balance.
func (m *Model) Balance(meas Measurement) (BalanceResult, error) {
	if err := meas.Validate(m.tech); err != nil {
		return BalanceResult{}, err
	}
	return computeBalance(meas, m.params, m.tech), nil
}

// ComputeBalance validates all inputs and computes the balance of a single
// measurement. Callers processing many rows should build a Model once.
func ComputeBalance(meas Measurement, params Parameters, tech Technology) (BalanceResult, error) {
	model, err := NewModel(params, tech)
	if err != nil {
		return BalanceResult{}, err
	}
	return model.Balance(meas)
}

func computeBalance(meas Measurement, p Parameters, tech Technology) BalanceResult {
	vInj := BarrelsToCubicMeters(meas.InjectionRate)
	qOil := BarrelsToCubicMeters(meas.OilRate)
	dp := PSIToPascal(meas.WellheadPressure)

	var r BalanceResult

	// Unmodeled technologies contribute no process-input terms yet.
	if tech.Modeled() {
		r.Mixing = mixingExergy(vInj, meas.concentration(tech), p, tech)
		r.WaterTreatment = KWhToJoules(vInj * WaterTreatmentKWhPerM3)
		r.Injection = vInj * dp / (p.PumpEfficiency * polymerPumpFactor(p, tech))
		r.ValveFriction = valveFrictionExergy(vInj, dp, p, tech)
	}

	r.ArtificialLift = artificialLiftExergy(qOil, meas.WOR, p)
	r.OilTotal = qOil * p.OilDensity * OilChemicalExergyJPerKg
	r.RecoveryFactor = recoveryFactor(r.OilTotal, r.InputExergy())

	return r
}

func mixingExergy(vInj, c float64, p Parameters, tech Technology) float64 {
	if tech != PolymerInjection {
		return 0
	}
	specific := PolymerManufacturingJPerKg + PolymerShippingJPerKgKm*p.ShippingDistance
	return vInj * c * specific / p.PolymerPrepEfficiency
}

// polymerPumpFactor is the extra pumping efficiency penalty for polymer flows.
func polymerPumpFactor(p Parameters, tech Technology) float64 {
	if tech == PolymerInjection {
		return p.PolymerEfficiency
	}
	return 1
}

// valveFrictionExergy sums the loss of every control valve, then applies the
// pump efficiency once. Polymer flows use the polymer efficiency in place of
// the valve efficiency.
func valveFrictionExergy(vInj, dp float64, p Parameters, tech Technology) float64 {
	divisor := p.ValveEfficiency
	if tech == PolymerInjection {
		divisor = p.PolymerEfficiency
	}

	var total float64
	for range p.Valves {
		total += vInj * dp / divisor
	}
	return total / p.PumpEfficiency
}

func artificialLiftExergy(qOil, wor float64, p Parameters) float64 {
	rhoMix := wor*p.WaterDensity + (1-wor)*p.OilDensity
	vLiq := qOil * (1 + wor)
	return vLiq * rhoMix * Gravity * p.LiftHeight / p.ALSEfficiency
}

// recoveryFactor is 0 when no oil was produced.
func recoveryFactor(oilTotal, inputs float64) float64 {
	if oilTotal == 0 {
		return 0
	}
	return (oilTotal - inputs) / oilTotal
}
