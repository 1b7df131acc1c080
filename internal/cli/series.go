package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/eorx/internal/cli/pagination"
	"github.com/rshade/eorx/internal/config"
	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/engine/batch"
	"github.com/rshade/eorx/internal/engine/cache"
	"github.com/rshade/eorx/internal/exergy"
	"github.com/rshade/eorx/internal/greenops"
	"github.com/rshade/eorx/internal/ingest"
	"github.com/rshade/eorx/internal/report"
	"github.com/rshade/eorx/internal/tui"
)

// errNotTerminal is returned when --interactive is used without a terminal.
var errNotTerminal = errors.New("--interactive requires a terminal on stdout")

// seriesFlags holds the series command options.
type seriesFlags struct {
	file        string
	sheet       string
	technology  string
	mode        string
	concurrency int
	batchSize   int
	output      string
	chart       string
	interactive bool
	noTotals    bool
	noCache     bool
	sort        string
	page        pagination.Params
}

// NewSeriesCmd creates the series command that evaluates a measurement table.
func NewSeriesCmd() *cobra.Command {
	var f seriesFlags

	cmd := &cobra.Command{
		Use:   "series [file]",
		Short: "Evaluate a table of daily measurements",
		Long: `Reads daily measurements from an .xlsx or .csv file and computes the exergy
balance and reporting metrics of every row.

Required columns: date, Qinj_B, qoil_B, WHP_psi, WOR. Polymer injection also
needs C. Header names are case-insensitive.

In strict mode (default) the first invalid row aborts the run. In lenient
mode invalid rows are skipped and reported on stderr.`,
		Example: `  # Summary table and totals
  eorx series field.xlsx

  # Specific sheet, polymer flood, 4 workers
  eorx series --file field.xlsx --sheet Well-7 --technology polymer --concurrency 4

  # CSV export plus chart
  eorx series --file field.csv --output csv --chart field.png > balance.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && f.file == "" {
				f.file = args[0]
			}
			return runSeries(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "measurement file (.xlsx or .csv)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&f.technology, "technology", "", "EOR technology (default from config)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "row failure policy: strict or lenient (default from config)")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "worker goroutines (default from config)")
	cmd.Flags().IntVar(&f.batchSize, "batch-size", 0, "rows per batch (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output format: table, json, ndjson, csv (default from config)")
	cmd.Flags().StringVar(&f.chart, "chart", "", "write a PNG chart to this path")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "browse the series in an interactive table")
	cmd.Flags().BoolVar(&f.noTotals, "no-totals", false, "omit the totals block from table output")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "ignore and do not update the result cache")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort displayed rows by field[:asc|desc] (index, date, rf, input, co2, cost, useful, oil, whp)")
	cmd.Flags().IntVar(&f.page.Limit, "limit", 0, "show at most this many rows (0 = all)")
	cmd.Flags().IntVar(&f.page.Offset, "offset", 0, "skip this many rows")
	cmd.Flags().IntVar(&f.page.Page, "page", 0, "page number, 1-based (requires --page-size)")
	cmd.Flags().IntVar(&f.page.PageSize, "page-size", 0, "rows per page")

	return cmd
}

//nolint:funlen // Flag resolution, load, compute and render in one place.
func runSeries(cmd *cobra.Command, f seriesFlags) error {
	ctx := cmd.Context()
	cfg := runtimeFrom(cmd).cfg

	if f.file == "" {
		return errors.New("a measurement file is required (--file or positional argument)")
	}

	params, err := cfg.ToParameters()
	if err != nil {
		return err
	}

	techName := cfg.Analysis.Technology
	if cmd.Flags().Changed("technology") {
		techName = f.technology
	}
	tech, err := exergy.ParseTechnology(techName)
	if err != nil {
		return err
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("mode") {
		if opts.Mode, err = engine.ParseMode(f.mode); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		opts.Concurrency = f.concurrency
	}
	if cmd.Flags().Changed("batch-size") {
		opts.BatchSize = f.batchSize
	}

	formatName := cfg.Output.DefaultFormat
	if cmd.Flags().Changed("output") {
		formatName = f.output
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if err = f.page.Validate(); err != nil {
		return err
	}
	sortField, sortOrder, err := pagination.ParseSort(f.sort)
	if err != nil {
		return err
	}
	sorter := pagination.NewRowSorter()
	if !sorter.IsValidField(sortField) {
		return fmt.Errorf("%w: %q (valid: %s)", pagination.ErrInvalidSortField, sortField,
			strings.Join(sorter.GetValidFields(), ", "))
	}

	if f.interactive && !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	sc := openSeriesCache(cfg, f.noCache)
	key := cache.SeriesKey{Sheet: f.sheet, Technology: tech, Mode: opts.Mode, Parameters: params}
	if sc != nil {
		// unreadable files are reported by the loader below
		if key.FileDigest, err = cache.FileDigest(f.file); err != nil {
			sc = nil
		}
	}

	var (
		result *engine.SeriesResult
		hit    bool
	)
	if sc != nil {
		result, hit = sc.Get(ctx, key)
	}
	if !hit {
		measurements, loadErr := ingest.Load(ctx, f.file, ingest.Options{Sheet: f.sheet})
		if loadErr != nil {
			return loadErr
		}

		opts.Progress = func(s batch.Snapshot) {
			logger.Debug().Ctx(ctx).
				Int("done", s.DoneItems).
				Int("total", s.TotalItems).
				Float64("percent", s.Percent()).
				Msg("series progress")
		}

		if result, err = engine.ComputeSeries(ctx, measurements, params, tech, opts); err != nil {
			return err
		}
		if sc != nil {
			if putErr := sc.Put(ctx, key, result); putErr != nil {
				logger.Warn().Ctx(ctx).Err(putErr).Msg("failed to cache series result")
			}
		}
	}

	for _, w := range result.Warnings {
		if w.Line > 0 {
			cmd.PrintErrf("Warning: skipped line %d: %v\n", w.Line, w.Err)
			continue
		}
		cmd.PrintErrf("Warning: skipped row %d: %v\n", w.Index, w.Err)
	}

	if f.chart != "" {
		if err = report.SaveChart(f.chart, result); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		cmd.PrintErrf("Chart written to %s\n", f.chart)
	}

	if f.interactive {
		return runInteractive(ctx, result)
	}

	out := cmd.OutOrStdout()
	if err = renderSeries(out, result, format, sorter, sortField, sortOrder, f.page); err != nil {
		return err
	}

	if format == report.FormatTable && !f.noTotals {
		totals := result.Totals()
		eq := greenops.CalculateFromTons(ctx, totals.CO2EmissionsTons)
		if _, err = fmt.Fprintln(out); err != nil {
			return err
		}
		return report.RenderTotals(out, totals, eq)
	}
	return nil
}

// renderSeries writes the sorted, paged rows of result. Totals are left to
// the caller and always cover the full result.
func renderSeries(
	w io.Writer,
	result *engine.SeriesResult,
	format report.Format,
	sorter *pagination.RowSorter,
	sortField, sortOrder string,
	page pagination.Params,
) error {
	rows, err := sorter.Sort(result.Rows, sortField, sortOrder)
	if err != nil {
		return err
	}
	rows = pagination.Apply(page, rows)

	if format == report.FormatJSON {
		var meta any
		if page.IsEnabled() {
			meta = pagination.NewMeta(page, len(result.Rows))
		}
		return report.RenderJSONPage(w, result, rows, meta)
	}

	view := *result
	view.Rows = rows
	return report.Render(w, &view, format)
}

// openSeriesCache returns nil when caching is off or the store cannot be opened.
func openSeriesCache(cfg *config.Config, disabled bool) *cache.SeriesCache {
	if disabled || !cfg.Cache.Enabled {
		return nil
	}
	store, err := cache.NewFileStore(config.CacheDir(), true, cfg.Cache.TTLSeconds)
	if err != nil {
		logger.Warn().Err(err).Msg("series cache unavailable")
		return nil
	}
	if err = store.CleanupExpired(); err != nil {
		logger.Debug().Err(err).Msg("cache cleanup failed")
	}
	return cache.NewSeriesCache(store)
}

func runInteractive(ctx context.Context, result *engine.SeriesResult) error {
	p := tea.NewProgram(tui.NewSeriesModel(ctx, result), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
