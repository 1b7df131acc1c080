package exergy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceWell is the single-row waterflooding case used across the balance tests.
func referenceWell() Measurement {
	return Measurement{
		InjectionRate:    1000,
		OilRate:          500,
		WellheadPressure: 1500,
		WOR:              0.5,
	}
}

func TestComputeBalance_WaterfloodingReference(t *testing.T) {
	got, err := ComputeBalance(referenceWell(), DefaultParameters(), Waterflooding)
	require.NoError(t, err)

	const rel = 1e-6
	assert.Zero(t, got.Mixing)
	assert.InEpsilon(t, 2.861766e9, got.WaterTreatment, rel)
	assert.InEpsilon(t, 2.0553322652e9, got.Injection, rel)
	assert.InEpsilon(t, 1.14185125846e10, got.ValveFriction, rel)
	assert.InEpsilon(t, 2.0126526727e9, got.ArtificialLift, rel)
	assert.InEpsilon(t, 3.2645595645e12, got.OilTotal, rel)
	assert.InEpsilon(t, 1.83482635225e10, got.InputExergy(), rel)
	assert.InDelta(t, 0.99438, got.RecoveryFactor, 1e-4)
}

func TestComputeBalance_PolymerTerms(t *testing.T) {
	meas := referenceWell().WithConcentration(0.001)

	got, err := ComputeBalance(meas, DefaultParameters(), PolymerInjection)
	require.NoError(t, err)

	const rel = 1e-6
	// 158.987 * 0.001 * (123.6e6 + 188*5000) / 0.85
	assert.InEpsilon(t, 2.329440115e7, got.Mixing, rel)
	assert.InEpsilon(t, 2.861766e9, got.WaterTreatment, rel)
	// pump work carries the extra polymer efficiency
	assert.InEpsilon(t, 2.2837025169e9, got.Injection, rel)
	// polymer efficiency replaces valve efficiency; both default to 0.90
	assert.InEpsilon(t, 1.14185125846e10, got.ValveFriction, rel)
}

func TestComputeBalance_ValveDivisorByTechnology(t *testing.T) {
	params := DefaultParameters()
	params.ValveEfficiency = 0.5
	params.PolymerEfficiency = 0.9

	const rel = 1e-9
	vInj := BarrelsToCubicMeters(1000)
	dp := PSIToPascal(1500)

	water, err := ComputeBalance(referenceWell(), params, Waterflooding)
	require.NoError(t, err)
	// 5 valves over valve efficiency: 2.0553322652e10 J
	assert.InEpsilon(t, 5*vInj*dp/(0.5*0.8), water.ValveFriction, rel)
	assert.InEpsilon(t, 2.0553322652e10, water.ValveFriction, 1e-6)

	poly, err := ComputeBalance(referenceWell().WithConcentration(0.001), params, PolymerInjection)
	require.NoError(t, err)
	// polymer efficiency replaces valve efficiency: 1.14185125846e10 J
	assert.InEpsilon(t, 5*vInj*dp/(0.9*0.8), poly.ValveFriction, rel)
	assert.InEpsilon(t, 1.14185125846e10, poly.ValveFriction, 1e-6)

	assert.InEpsilon(t, 0.9/0.5, water.ValveFriction/poly.ValveFriction, rel)
}

func TestComputeBalance_PolymerZeroConcentration(t *testing.T) {
	got, err := ComputeBalance(referenceWell().WithConcentration(0), DefaultParameters(), PolymerInjection)
	require.NoError(t, err)

	assert.Zero(t, got.Mixing)
	assert.InEpsilon(t, 2.2837025169e9, got.Injection, 1e-6)
}

func TestComputeBalance_ZeroOilRate(t *testing.T) {
	meas := referenceWell()
	meas.OilRate = 0

	for _, tech := range Technologies() {
		t.Run(tech.String(), func(t *testing.T) {
			m := meas.WithConcentration(0.002)
			got, err := ComputeBalance(m, DefaultParameters(), tech)
			require.NoError(t, err)
			assert.Zero(t, got.OilTotal)
			assert.Zero(t, got.RecoveryFactor)
			assert.Zero(t, got.ArtificialLift)
		})
	}
}

func TestComputeBalance_WaterfloodingIgnoresConcentration(t *testing.T) {
	withC := referenceWell().WithConcentration(0.5)

	a, err := ComputeBalance(referenceWell(), DefaultParameters(), Waterflooding)
	require.NoError(t, err)
	b, err := ComputeBalance(withC, DefaultParameters(), Waterflooding)
	require.NoError(t, err)

	assert.Zero(t, b.Mixing)
	assert.Equal(t, a, b)
}

func TestComputeBalance_UnitPolymerEfficiencyMatchesWaterfloodingInjection(t *testing.T) {
	params := DefaultParameters()
	params.PolymerEfficiency = 1

	water, err := ComputeBalance(referenceWell(), params, Waterflooding)
	require.NoError(t, err)
	poly, err := ComputeBalance(referenceWell().WithConcentration(0.001), params, PolymerInjection)
	require.NoError(t, err)

	assert.InEpsilon(t, water.Injection, poly.Injection, 1e-12)
}

func TestComputeBalance_MonotonicInWellheadPressure(t *testing.T) {
	pressures := []float64{0, 100, 500, 1500, 3000, 6000}

	for _, tech := range []Technology{Waterflooding, PolymerInjection} {
		t.Run(tech.String(), func(t *testing.T) {
			prev := BalanceResult{}
			for i, whp := range pressures {
				meas := referenceWell().WithConcentration(0.001)
				meas.WellheadPressure = whp

				got, err := ComputeBalance(meas, DefaultParameters(), tech)
				require.NoError(t, err)
				if i > 0 {
					assert.Greater(t, got.Injection, prev.Injection, "WHP=%g", whp)
					assert.Greater(t, got.ValveFriction, prev.ValveFriction, "WHP=%g", whp)
				}
				prev = got
			}
		})
	}
}

func TestComputeBalance_ValveCountScalesLinearly(t *testing.T) {
	params := DefaultParameters()
	params.Valves = 1
	one, err := ComputeBalance(referenceWell(), params, Waterflooding)
	require.NoError(t, err)

	params.Valves = 7
	seven, err := ComputeBalance(referenceWell(), params, Waterflooding)
	require.NoError(t, err)

	assert.InEpsilon(t, 7*one.ValveFriction, seven.ValveFriction, 1e-12)
}

func TestComputeBalance_Idempotent(t *testing.T) {
	meas := referenceWell().WithConcentration(0.0015)
	params := DefaultParameters()

	first, err := ComputeBalance(meas, params, PolymerInjection)
	require.NoError(t, err)
	for range 10 {
		again, err := ComputeBalance(meas, params, PolymerInjection)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeBalance_UnmodeledTechnologies(t *testing.T) {
	water, err := ComputeBalance(referenceWell(), DefaultParameters(), Waterflooding)
	require.NoError(t, err)

	for _, tech := range []Technology{CO2Injection, SteamInjection, ASP} {
		t.Run(tech.String(), func(t *testing.T) {
			got, err := ComputeBalance(referenceWell(), DefaultParameters(), tech)
			require.NoError(t, err)

			assert.Zero(t, got.Mixing)
			assert.Zero(t, got.WaterTreatment)
			assert.Zero(t, got.Injection)
			assert.Zero(t, got.ValveFriction)
			assert.Equal(t, water.ArtificialLift, got.ArtificialLift)
			assert.Equal(t, water.OilTotal, got.OilTotal)
			assert.InDelta(t, 1-got.ArtificialLift/got.OilTotal, got.RecoveryFactor, 1e-12)
		})
	}
}

func TestComputeBalance_NegativeRecoveryFactor(t *testing.T) {
	meas := Measurement{InjectionRate: 50000, OilRate: 1, WellheadPressure: 5000, WOR: 0.9}

	got, err := ComputeBalance(meas, DefaultParameters(), Waterflooding)
	require.NoError(t, err)
	assert.Greater(t, got.InputExergy(), got.OilTotal)
	assert.Negative(t, got.RecoveryFactor)
}

func TestComputeBalance_PolymerWithoutConcentration(t *testing.T) {
	_, err := ComputeBalance(referenceWell(), DefaultParameters(), PolymerInjection)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldConcentration, verr.Field)
	assert.Equal(t, NoRow, verr.Row)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestComputeBalance_InvalidConfiguration(t *testing.T) {
	params := DefaultParameters()
	params.PumpEfficiency = 0

	_, err := ComputeBalance(referenceWell(), params, Waterflooding)
	require.Error(t, err)

	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "pump_efficiency", cerr.Field)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestNewModel_UnknownTechnology(t *testing.T) {
	_, err := NewModel(DefaultParameters(), Technology(42))
	require.ErrorIs(t, err, ErrUnknownTechnology)
}

func TestModel_Accessors(t *testing.T) {
	params := DefaultParameters()
	params.LiftHeight = 900

	model, err := NewModel(params, PolymerInjection)
	require.NoError(t, err)
	assert.Equal(t, params, model.Parameters())
	assert.Equal(t, PolymerInjection, model.Technology())

	got, err := model.Balance(referenceWell().WithConcentration(0.001))
	require.NoError(t, err)
	want, err := ComputeBalance(referenceWell().WithConcentration(0.001), params, PolymerInjection)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
