package engine

import "fmt"

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownMode is returned for an unrecognized series policy.
const ErrUnknownMode = constError("unknown series mode")

// SeriesError aborts a strict series. Err is usually an
// *exergy.ValidationError whose Row equals Index. Line is the source line of
// the row, 0 when unknown.
type SeriesError struct {
	Index int
	Line  int
	Err   error
}

func (e *SeriesError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("series aborted at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("series aborted at row %d: %v", e.Index, e.Err)
}

// Unwrap exposes the row error to errors.Is and errors.As.
func (e *SeriesError) Unwrap() error { return e.Err }
