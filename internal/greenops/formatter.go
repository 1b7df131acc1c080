package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//nolint:gochecknoglobals // x/text printers are meant to be shared.
var printer = message.NewPrinter(language.English)

// FormatNumber formats n with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f half away from zero to precision decimals and formats
// it with thousand separators: FormatFloat(1234.5678, 2) -> "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	scale := math.Pow(base, float64(precision))
	rounded := math.Round(f*scale) / scale

	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}
	return printer.Sprint(number.Decimal(rounded, number.Scale(precision)))
}

// FormatLarge abbreviates values of a million or more ("~5.2 million",
// "~1.5 billion") and formats smaller values like FormatNumber.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
