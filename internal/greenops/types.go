// Package greenops translates the CO₂ attributed to an EOR operation's input
// exergy into everyday equivalencies (miles driven, home-days of electricity,
// tree seedlings, phone charges) using EPA factors.
package greenops

import "fmt"

// Kind identifies an equivalency.
type Kind int

const (
	MilesDriven Kind = iota
	HomeDays
	TreeSeedlings
	SmartphonesCharged
)

// String returns the JSON key of the kind.
func (k Kind) String() string {
	switch k {
	case MilesDriven:
		return "miles_driven"
	case HomeDays:
		return "home_days"
	case TreeSeedlings:
		return "tree_seedlings"
	case SmartphonesCharged:
		return "smartphones_charged"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Emission is an amount of CO₂e in a named mass unit.
type Emission struct {
	Value float64 `json:"value"`
	// Unit is one of g, kg, t, lb, optionally suffixed with CO2e.
	Unit string `json:"unit"`
}

// Equivalency is one translated figure.
type Equivalency struct {
	Kind      Kind    `json:"kind"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Label     string  `json:"label"`
}

// Equivalencies is the full translation of one Emission.
type Equivalencies struct {
	InputKg float64       `json:"input_kg"`
	Items   []Equivalency `json:"items,omitempty"`
	// DisplayText is prose for terminal output.
	DisplayText string `json:"display_text,omitempty"`
	// CompactText fits a table footer.
	CompactText string `json:"compact_text,omitempty"`
	// Empty is set when the emission is below MinEquivalencyThresholdKg or invalid.
	Empty bool `json:"empty"`
}

// Get returns the item of kind k.
func (e Equivalencies) Get(k Kind) (Equivalency, bool) {
	for _, it := range e.Items {
		if it.Kind == k {
			return it, true
		}
	}
	return Equivalency{}, false
}
