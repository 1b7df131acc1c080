package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/eorx/internal/exergy"
)

// LoadCSV reads measurements from comma-separated data with a header row.
// source names the input in errors.
func LoadCSV(r io.Reader, source string) ([]exergy.Measurement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// encoding/csv drops empty lines, so record positions come from FieldPos.
	var (
		records [][]string
		lines   []int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: reading csv: %w", source, err)
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = trimBOM(records[0][0])
	}
	return parseRecords(source, records, lines, ParseDate)
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
