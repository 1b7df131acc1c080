// Package report renders evaluated series for people and for other tools:
// aligned text tables, JSON, NDJSON, CSV and a PNG chart grid.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rshade/eorx/internal/engine"
)

// Format selects a renderer.
type Format string

// Supported formats.
const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownFormat is returned for an output format with no renderer.
const ErrUnknownFormat = constError("unknown output format")

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatNDJSON, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes result to w in the given format.
func Render(w io.Writer, result *engine.SeriesResult, format Format) error {
	switch format {
	case FormatTable:
		return RenderTable(w, result)
	case FormatJSON:
		return RenderJSON(w, result)
	case FormatNDJSON:
		return RenderNDJSON(w, result)
	case FormatCSV:
		return RenderCSV(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// rowLabel is the date of a row, or its input position when undated.
func rowLabel(r engine.Row) string {
	if r.Measurement.Date.IsZero() {
		return fmt.Sprintf("#%d", r.Index)
	}
	return r.Measurement.Date.Format(dateLayout)
}

const dateLayout = "2006-01-02"
