package pagination

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rshade/eorx/internal/engine"
)

// rowKeys maps sort field names to the value compared.
//
//nolint:gochecknoglobals // Fixed lookup table.
var rowKeys = map[string]func(r engine.Row) float64{
	"index":  func(r engine.Row) float64 { return float64(r.Index) },
	"date":   func(r engine.Row) float64 { return float64(r.Measurement.Date.Unix()) },
	"rf":     func(r engine.Row) float64 { return r.Balance.RecoveryFactor },
	"input":  func(r engine.Row) float64 { return r.Summary.InputExergyKWh },
	"co2":    func(r engine.Row) float64 { return r.Summary.CO2EmissionsTons },
	"cost":   func(r engine.Row) float64 { return r.Summary.EnergyCostKUSD },
	"useful": func(r engine.Row) float64 { return r.Summary.UsefulOilExergyGJ },
	"oil":    func(r engine.Row) float64 { return r.Measurement.OilRate },
	"whp":    func(r engine.Row) float64 { return r.Measurement.WellheadPressure },
}

// RowSorter sorts evaluated series rows.
type RowSorter struct{}

// NewRowSorter returns a RowSorter.
func NewRowSorter() *RowSorter { return &RowSorter{} }

// IsValidField checks if the field is valid for sorting.
func (s *RowSorter) IsValidField(field string) bool {
	_, ok := rowKeys[field]
	return ok
}

// GetValidFields returns all valid sort fields, sorted.
func (s *RowSorter) GetValidFields() []string {
	fields := make([]string, 0, len(rowKeys))
	for f := range rowKeys {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of rows. Ties keep input order in both
// directions.
func (s *RowSorter) Sort(rows []engine.Row, field, order string) ([]engine.Row, error) {
	key, ok := rowKeys[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
			strings.Join(s.GetValidFields(), ", "))
	}

	sorted := slices.Clone(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			return key(sorted[i]) > key(sorted[j])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted, nil
}
