package greenops

import (
	"context"
	"fmt"
	"math"

	"github.com/rshade/eorx/internal/logging"
)

var factors = []struct {
	kind   Kind
	factor float64
	label  string
}{
	{MilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{HomeDays, EPAHomeDayFactor, "days of US home electricity"},
	{TreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{SmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
}

// Calculate translates e into every equivalency. Emissions below
// MinEquivalencyThresholdKg yield an Empty result and no error.
func Calculate(e Emission) (Equivalencies, error) {
	kg, err := NormalizeToKg(e.Value, e.Unit)
	if err != nil {
		return Equivalencies{Empty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return Equivalencies{InputKg: kg, Empty: true}, nil
	}

	out := Equivalencies{InputKg: kg, Items: make([]Equivalency, 0, len(factors))}
	for _, f := range factors {
		v := kg / f.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Equivalencies{Empty: true}, ErrCalculationOverflow
		}
		out.Items = append(out.Items, Equivalency{
			Kind:      f.kind,
			Value:     v,
			Formatted: formatEquivalency(v),
			Label:     f.label,
		})
	}

	miles, homes, trees := out.Items[0].Formatted, out.Items[1].Formatted, out.Items[2].Formatted
	out.DisplayText = fmt.Sprintf(
		"Equivalent to driving ~%s miles or powering a US home for ~%s days", miles, homes)
	out.CompactText = fmt.Sprintf("(≈ %s mi, %s home-days, %s seedlings)", miles, homes, trees)

	return out, nil
}

// CalculateFromTons translates a CO₂ total in tonnes, as reported by the
// engine. Failures are logged and produce an Empty result.
func CalculateFromTons(ctx context.Context, tons float64) Equivalencies {
	out, err := Calculate(Emission{Value: tons, Unit: "t"})
	if err != nil {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "greenops").
			Float64("co2_t", tons).
			Err(err).
			Msg("equivalency calculation failed")
		return Equivalencies{Empty: true}
	}
	return out
}

func formatEquivalency(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
