package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/report"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteChart(&buf, sampleSeries(t, engine.Strict)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestWriteChart_NoRows(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteChart(&buf, &engine.SeriesResult{})
	require.ErrorIs(t, err, report.ErrNoRows)
	assert.Zero(t, buf.Len())
}

func TestSaveChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "series.png")
	require.NoError(t, report.SaveChart(path, sampleSeries(t, engine.Lenient)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}
