package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rshade/eorx/internal/exergy"
)

// RequiredColumns are the headers every measurement table must carry.
//
//nolint:gochecknoglobals // Fixed column contract.
var RequiredColumns = []string{
	exergy.FieldDate,
	exergy.FieldInjectionRate,
	exergy.FieldOilRate,
	exergy.FieldWellheadPressure,
	exergy.FieldWOR,
}

// header maps column names to their position.
type header map[string]int

func newHeader(source string, cells []string) (header, error) {
	h := make(header, len(cells))
	for i, c := range cells {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" {
			continue
		}
		if _, dup := h[key]; !dup {
			h[key] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := h[strings.ToLower(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Source: source, Columns: missing}
	}
	return h, nil
}

func (h header) has(col string) bool {
	_, ok := h[strings.ToLower(col)]
	return ok
}

func (h header) cell(record []string, col string) string {
	i, ok := h[strings.ToLower(col)]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// dateFunc parses the date cell; xlsx adds serial-number support.
type dateFunc func(string) (time.Time, error)

// parseRecords turns header-aligned string records into measurements.
// records[0] is the header and lines[i] is the 1-based source line of
// records[i]. Blank lines are skipped; every measurement keeps its line.
func parseRecords(source string, records [][]string, lines []int, parseDate dateFunc) ([]exergy.Measurement, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyTable)
	}

	h, err := newHeader(source, records[0])
	if err != nil {
		return nil, err
	}
	withC := h.has(exergy.FieldConcentration)

	out := make([]exergy.Measurement, 0, len(records)-1)
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		row := i + 2
		if i+1 < len(lines) {
			row = lines[i+1]
		}

		m, err := parseRecord(h, rec, withC, parseDate)
		if err != nil {
			err.Source, err.Row = source, row
			return nil, err
		}
		m.Line = row
		out = append(out, m)
	}
	return out, nil
}

func parseRecord(h header, rec []string, withC bool, parseDate dateFunc) (exergy.Measurement, *CellError) {
	var m exergy.Measurement

	raw := h.cell(rec, exergy.FieldDate)
	d, err := parseDate(raw)
	if err != nil {
		return m, &CellError{Column: exergy.FieldDate, Value: raw, Err: err}
	}
	m.Date = d

	numeric := []struct {
		col string
		dst *float64
	}{
		{exergy.FieldInjectionRate, &m.InjectionRate},
		{exergy.FieldOilRate, &m.OilRate},
		{exergy.FieldWellheadPressure, &m.WellheadPressure},
		{exergy.FieldWOR, &m.WOR},
	}
	for _, n := range numeric {
		raw := h.cell(rec, n.col)
		v, err := parseNumber(raw)
		if err != nil {
			return m, &CellError{Column: n.col, Value: raw, Err: err}
		}
		*n.dst = v
	}

	if withC {
		raw := h.cell(rec, exergy.FieldConcentration)
		if raw != "" {
			v, err := parseNumber(raw)
			if err != nil {
				return m, &CellError{Column: exergy.FieldConcentration, Value: raw, Err: err}
			}
			m = m.WithConcentration(v)
		}
	}

	return m, nil
}

// thousandsGrouped matches numbers whose integer part uses ',' as a
// thousands separator, e.g. 1,200 or 12,345.6.
//
//nolint:gochecknoglobals // Compiled once.
var thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?([eE][+-]?\d+)?$`)

// parseNumber reads a decimal-point number. Commas are accepted only as
// well-formed thousands grouping; a decimal comma such as 1000,5 is rejected.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, errEmptyCell
	}
	if strings.Contains(s, ",") {
		if !thousandsGrouped.MatchString(s) {
			return 0, errDecimalComma
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotNumber
	}
	return v, nil
}

const (
	errEmptyCell    = constError("value required")
	errNotNumber    = constError("not a number")
	errDecimalComma = constError("comma is not a thousands separator (use '.' for decimals)")
)

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
