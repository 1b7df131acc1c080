package engine

import (
	"fmt"
	"strings"
)

// Mode selects how ComputeSeries treats a row that fails validation.
type Mode int

const (
	// Strict aborts the series at the first invalid row.
	Strict Mode = iota

	// Lenient excludes invalid rows and records a RowWarning for each.
	Lenient
)

// String returns the configuration key for m.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is Strict or Lenient.
func (m Mode) Valid() bool {
	return m == Strict || m == Lenient
}

// ParseMode parses "strict" or "lenient". The empty string selects Strict.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
