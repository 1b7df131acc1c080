// Package ingest reads well measurement tables from Excel and CSV files.
//
// A table has one header row naming at least the columns date, Qinj_B,
// qoil_B, WHP_psi and WOR (matched case-insensitively). A C column carries
// polymer concentration; blank C cells and a missing C column leave
// Measurement.Concentration nil.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rshade/eorx/internal/exergy"
	"github.com/rshade/eorx/internal/logging"
)

// Options tune Load.
type Options struct {
	// Sheet selects a workbook sheet; empty means the first.
	Sheet string
}

// Load reads path, choosing the reader from its extension.
func Load(ctx context.Context, path string, opts Options) ([]exergy.Measurement, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("path", path).
		Msg("loading measurements")

	var (
		ms  []exergy.Measurement
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		ms, err = LoadXLSX(path, opts.Sheet)
	case ".csv":
		ms, err = loadCSVFile(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("path", path).
			Err(err).
			Msg("failed to load measurements")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("rows", len(ms)).
		Msg("measurements loaded")
	return ms, nil
}

func loadCSVFile(path string) ([]exergy.Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	return LoadCSV(f, path)
}
