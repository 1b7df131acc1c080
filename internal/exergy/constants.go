package exergy

// Process constants. These describe the modeled surface process and are not
// user-tunable.
const (
	// WaterTreatmentKWhPerM3 is the specific energy spent treating one cubic
	// meter of injection water.
	WaterTreatmentKWhPerM3 = 5.0

	// OilChemicalExergyJPerKg is the specific chemical exergy of crude oil (45.63 MJ/kg).
	OilChemicalExergyJPerKg = 45.63e6

	// PolymerManufacturingJPerKg is the specific exergy of polymer manufacturing (123.6 MJ/kg).
	PolymerManufacturingJPerKg = 123.6e6

	// PolymerShippingJPerKgKm is the specific exergy of shipping polymer, per kg and km.
	PolymerShippingJPerKgKm = 188.0

	// Gravity is the gravitational acceleration in m/s².
	Gravity = 9.81
)

// Unit conversion factors.
const (
	// BarrelToCubicMeter converts oilfield barrels to cubic meters.
	BarrelToCubicMeter = 0.158987

	// PSIToPa converts pounds per square inch to pascals.
	PSIToPa = 6894.76

	// JoulesPerKWh converts kilowatt-hours to joules.
	JoulesPerKWh = 3.6e6

	// KWhPerJoule converts joules to kilowatt-hours. The rounded factor is
	// kept as published in the reporting formulas rather than 1/JoulesPerKWh.
	KWhPerJoule = 2.77778e-7

	// JoulesPerGJ converts gigajoules to joules.
	JoulesPerGJ = 1e9
)

// Parameter domains. Densities follow the ranges offered to field operators;
// efficiencies are fractions in (0, 1].
const (
	MinOilDensity   = 800.0
	MaxOilDensity   = 1100.0
	MinWaterDensity = 1000.0
	MaxWaterDensity = 1500.0
	MaxEfficiency   = 1.0
	MinValves       = 1
)
