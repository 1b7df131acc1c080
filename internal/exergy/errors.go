package exergy

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors. Use errors.Is to classify failures returned by this package.
var (
	// ErrInvalidMeasurement is wrapped by every ValidationError.
	ErrInvalidMeasurement = constError("invalid measurement")

	// ErrInvalidConfiguration is wrapped by every ConfigurationError.
	ErrInvalidConfiguration = constError("invalid configuration")

	// ErrUnknownTechnology indicates an unrecognized technology name or value.
	ErrUnknownTechnology = constError("unknown technology")
)

// NoRow marks a ValidationError that is not attached to a series row.
const NoRow = -1

// ValidationError reports a measurement field that is missing or outside its
// physical domain for the selected technology. It is raised before any
// arithmetic is performed.
type ValidationError struct {
	// Row is the zero-based series index, or NoRow for a standalone measurement.
	Row int
	// Line is the 1-based source line of the measurement, 0 when unknown.
	Line int
	// Field is the measurement column name (Qinj_B, qoil_B, WHP_psi, WOR, C).
	Field string
	// Value is the offending value; NaN when the field is absent.
	Value float64
	// Reason describes the violated constraint.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row == NoRow {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidMeasurement, e.Field, e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: row %d (line %d): %s: %s", ErrInvalidMeasurement, e.Row, e.Line, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: row %d: %s: %s", ErrInvalidMeasurement, e.Row, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidMeasurement).
func (e *ValidationError) Unwrap() error { return ErrInvalidMeasurement }

// AtRow returns a copy of the error attached to the given series row.
func (e *ValidationError) AtRow(row int) *ValidationError {
	c := *e
	c.Row = row
	return &c
}

// AtLine returns a copy of the error carrying the source line.
func (e *ValidationError) AtLine(line int) *ValidationError {
	c := *e
	c.Line = line
	return &c
}

// ConfigurationError reports a parameter outside its allowed domain. It is
// raised once when a Model is constructed, never per row.
type ConfigurationError struct {
	// Field is the configuration key (for example pump_efficiency).
	Field string
	// Value is the rejected value.
	Value float64
	// Reason describes the violated constraint.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration).
func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfiguration }
