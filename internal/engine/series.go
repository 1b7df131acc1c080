// Package engine applies the exergy calculator across a measurement series
// and derives the per-row and whole-series reporting metrics.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/eorx/internal/engine/batch"
	"github.com/rshade/eorx/internal/exergy"
	"github.com/rshade/eorx/internal/logging"
)

// Options control how a series is evaluated. The zero value is a valid
// strict, sequential run.
type Options struct {
	Mode Mode
	// Concurrency is the number of worker goroutines; values <= 1 run sequentially.
	Concurrency int
	// BatchSize is the number of rows per unit of work; 0 selects batch.DefaultChunkSize.
	BatchSize int
	// Progress, when set, is called after every completed batch.
	Progress batch.ProgressFunc
}

// Row is one evaluated measurement. Index is its position in the input.
type Row struct {
	Index       int                  `json:"index"`
	Measurement exergy.Measurement   `json:"measurement"`
	Balance     exergy.BalanceResult `json:"balance"`
	Summary     SeriesSummary        `json:"summary"`
}

// RowWarning records a row excluded in lenient mode. Line is the source
// line of the row, 0 when unknown.
type RowWarning struct {
	Index int
	Line  int
	Err   error
}

// SeriesResult is the outcome of ComputeSeries. Rows are in input order.
type SeriesResult struct {
	Technology exergy.Technology
	Parameters exergy.Parameters
	Mode       Mode
	InputRows  int
	Rows       []Row
	Warnings   []RowWarning
}

// Totals aggregates the evaluated rows.
func (r *SeriesResult) Totals() Totals {
	return ComputeTotals(r.Rows, len(r.Warnings))
}

type rowSlot struct {
	balance exergy.BalanceResult
	err     error
}

// ComputeSeries evaluates every measurement with params and tech and returns
// one Row per accepted measurement, in input order.
//
// Parameters are validated once, before any row. In Strict mode the first
// invalid row (lowest index) aborts the run with a *SeriesError; in Lenient
// mode invalid rows are left out and reported in SeriesResult.Warnings.
// Rows are independent, so Concurrency > 1 only affects throughput.
func ComputeSeries(
	ctx context.Context,
	measurements []exergy.Measurement,
	params exergy.Parameters,
	tech exergy.Technology,
	opts Options,
) (*SeriesResult, error) {
	log := logging.FromContext(ctx)

	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, opts.Mode)
	}

	model, err := exergy.NewModel(params, tech)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("technology", tech.String()).
		Str("mode", opts.Mode.String()).
		Int("rows", len(measurements)).
		Int("concurrency", opts.Concurrency).
		Msg("computing series")

	if !tech.Modeled() {
		log.Warn().
			Ctx(ctx).
			Str("component", "engine").
			Str("technology", tech.String()).
			Msg("technology not yet modeled, balance includes only artificial lift and oil exergy")
	}

	slots, err := evaluate(ctx, model, measurements, opts)
	if err != nil {
		return nil, err
	}

	result := &SeriesResult{
		Technology: tech,
		Parameters: params,
		Mode:       opts.Mode,
		InputRows:  len(measurements),
		Rows:       make([]Row, 0, len(measurements)),
	}

	for i, s := range slots {
		if s.err != nil {
			line := measurements[i].Line
			rowErr := attachRow(s.err, i, line)
			if opts.Mode == Strict {
				return nil, &SeriesError{Index: i, Line: line, Err: rowErr}
			}
			log.Warn().
				Ctx(ctx).
				Str("component", "engine").
				Int("row", i).
				Int("line", line).
				Err(rowErr).
				Msg("excluding invalid row")
			result.Warnings = append(result.Warnings, RowWarning{Index: i, Line: line, Err: rowErr})
			continue
		}

		result.Rows = append(result.Rows, Row{
			Index:       i,
			Measurement: measurements[i],
			Balance:     s.balance,
			Summary:     Summarize(s.balance, params),
		})
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Int("accepted", len(result.Rows)).
		Int("excluded", len(result.Warnings)).
		Msg("series computed")

	return result, nil
}

// evaluate fills one slot per measurement. Validation failures are stored in
// the slot, not returned, so the caller can apply the mode policy in order.
func evaluate(
	ctx context.Context,
	model *exergy.Model,
	measurements []exergy.Measurement,
	opts Options,
) ([]rowSlot, error) {
	slots := make([]rowSlot, len(measurements))
	if len(measurements) == 0 {
		return slots, nil
	}

	proc := batch.NewProcessorWithDefaults[exergy.Measurement]()
	if opts.BatchSize > 0 {
		p, err := batch.NewProcessor[exergy.Measurement](opts.BatchSize)
		if err != nil {
			return nil, err
		}
		proc = p
	}
	if opts.Progress != nil {
		proc.WithProgress(opts.Progress)
	}

	fn := func(_ context.Context, c batch.Chunk[exergy.Measurement]) error {
		for i, m := range c.Items {
			b, err := model.Balance(m)
			slots[c.Offset+i] = rowSlot{balance: b, err: err}
		}
		return nil
	}

	if opts.Concurrency > 1 {
		return slots, proc.ProcessConcurrent(ctx, measurements, fn, opts.Concurrency)
	}
	return slots, proc.Process(ctx, measurements, fn)
}

func attachRow(err error, row, line int) error {
	var verr *exergy.ValidationError
	if errors.As(err, &verr) {
		return verr.AtRow(row).AtLine(line)
	}
	return err
}
