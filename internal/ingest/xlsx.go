package ingest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/rshade/eorx/internal/exergy"
)

// LoadXLSX reads measurements from a sheet of an Excel workbook. An empty
// sheet name selects the first sheet. Date cells may hold text or Excel
// serial dates.
func LoadXLSX(path, sheet string) ([]exergy.Measurement, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx file: %w", err)
	}

	s, err := pickSheet(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([][]string, 0, len(s.Rows))
	lines := make([]int, 0, len(s.Rows))
	for i, row := range s.Rows {
		lines = append(lines, i+1)
		if row == nil {
			records = append(records, nil)
			continue
		}
		rec := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			if c != nil {
				rec[i] = c.Value
			}
		}
		records = append(records, rec)
	}

	source := path + "[" + s.Name + "]"
	return parseRecords(source, records, lines, excelDate(f.Date1904))
}

func pickSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name == "" {
		if len(f.Sheets) == 0 {
			return nil, ErrNoSheet
		}
		return f.Sheets[0], nil
	}
	s, ok := f.Sheet[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, name)
	}
	return s, nil
}

// excelDate accepts text dates and numeric serial dates.
func excelDate(date1904 bool) dateFunc {
	return func(s string) (time.Time, error) {
		if t, err := ParseDate(s); err == nil {
			return t, nil
		}
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil || serial <= 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return xlsx.TimeFromExcelTime(serial, date1904).UTC(), nil
	}
}
