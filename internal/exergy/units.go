package exergy

// BarrelsToCubicMeters converts a barrel quantity (or bbl/day rate) to m³ (or m³/day).
func BarrelsToCubicMeters(bbl float64) float64 {
	return bbl * BarrelToCubicMeter
}

// PSIToPascal converts a pressure in psi to Pa.
func PSIToPascal(psi float64) float64 {
	return psi * PSIToPa
}

// KWhToJoules converts kWh to J.
func KWhToJoules(kwh float64) float64 {
	return kwh * JoulesPerKWh
}

// JoulesToKWh converts J to kWh using the published reporting factor.
func JoulesToKWh(j float64) float64 {
	return j * KWhPerJoule
}

// JoulesToGJ converts J to GJ.
func JoulesToGJ(j float64) float64 {
	return j / JoulesPerGJ
}
