package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/exergy"
)

type seriesJSON struct {
	Technology exergy.Technology `json:"technology"`
	Mode       engine.Mode       `json:"mode"`
	Parameters exergy.Parameters `json:"parameters"`
	InputRows  int               `json:"input_rows"`
	Rows       []engine.Row      `json:"rows"`
	Warnings   []warningJSON     `json:"warnings,omitempty"`
	Totals     engine.Totals     `json:"totals"`
	Pagination any               `json:"pagination,omitempty"`
}

type warningJSON struct {
	Index int    `json:"index"`
	Line  int    `json:"line,omitempty"`
	Error string `json:"error"`
}

// RenderJSON writes the whole result, with totals, as one indented document.
func RenderJSON(w io.Writer, result *engine.SeriesResult) error {
	return RenderJSONPage(w, result, result.Rows, nil)
}

// RenderJSONPage is RenderJSON with only rows listed. Totals still cover
// every row of result; page, when non-nil, is emitted as "pagination".
func RenderJSONPage(w io.Writer, result *engine.SeriesResult, rows []engine.Row, page any) error {
	out := seriesJSON{
		Technology: result.Technology,
		Mode:       result.Mode,
		Parameters: result.Parameters,
		InputRows:  result.InputRows,
		Rows:       rows,
		Totals:     result.Totals(),
		Pagination: page,
	}
	if out.Rows == nil {
		out.Rows = []engine.Row{}
	}
	for _, wr := range result.Warnings {
		out.Warnings = append(out.Warnings, warningJSON{Index: wr.Index, Line: wr.Line, Error: wr.Err.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding series: %w", err)
	}
	return nil
}

// RenderNDJSON writes one JSON object per row with no wrapper.
func RenderNDJSON(w io.Writer, result *engine.SeriesResult) error {
	for _, r := range result.Rows {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling row %d: %w", r.Index, err)
		}
		if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
	}
	return nil
}
