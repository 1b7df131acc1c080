package ingest

import (
	"fmt"
	"strings"
)

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	// ErrUnsupportedFormat is returned by Load for extensions other than .xlsx and .csv.
	ErrUnsupportedFormat = constError("unsupported measurement file format")

	// ErrMissingColumns is wrapped by *MissingColumnsError.
	ErrMissingColumns = constError("missing required columns")

	// ErrNoSheet indicates the workbook has no sheet of the requested name.
	ErrNoSheet = constError("sheet not found")

	// ErrEmptyTable indicates a file without a header row.
	ErrEmptyTable = constError("no header row")

	// ErrInvalidDate is returned by ParseDate.
	ErrInvalidDate = constError("unrecognized date")
)

// MissingColumnsError lists the required columns absent from a header.
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Source, ErrMissingColumns, strings.Join(e.Columns, ", "))
}

// Unwrap allows errors.Is(err, ErrMissingColumns).
func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// CellError locates a cell that could not be parsed. Row is the 1-based line
// or spreadsheet row, header included.
type CellError struct {
	Source string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s: row %d, column %s: %q: %v", e.Source, e.Row, e.Column, e.Value, e.Err)
}

// Unwrap exposes the parse failure.
func (e *CellError) Unwrap() error { return e.Err }
