package greenops

// EPA greenhouse gas equivalency factors (2024 edition), in kg CO₂e per unit
// of activity: equivalency = kg / factor.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	// EPAMilesDrivenFactor is kg CO₂e per mile of an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO₂e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO₂e sequestered by one seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO₂e of one day of average US home electricity.
	EPAHomeDayFactor = 18.3
)

// Mass units, as multipliers to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest emission worth translating.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
