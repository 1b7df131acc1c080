package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/rshade/eorx/internal/engine"
)

// Chart canvas size.
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 7 * vg.Inch
	chartDPI    = 96
)

// ErrNoRows is returned when there is nothing to chart.
const ErrNoRows = constError("no rows to chart")

type panel struct {
	title string
	unit  string
	value func(engine.Row) float64
}

//nolint:gochecknoglobals // Fixed 2x2 panel layout.
var panels = [2][2]panel{
	{
		{"CO2 Emissions", "t", func(r engine.Row) float64 { return r.Summary.CO2EmissionsTons }},
		{"Energy Cost", "kUSD", func(r engine.Row) float64 { return r.Summary.EnergyCostKUSD }},
	},
	{
		{"Recovery Factor", "X_RF", func(r engine.Row) float64 { return r.Balance.RecoveryFactor }},
		{"Useful Oil Exergy", "GJ", func(r engine.Row) float64 { return r.Summary.UsefulOilExergyGJ }},
	},
}

// WriteChart draws CO₂, cost, recovery factor and useful exergy against date
// in a 2x2 grid and writes it to w as PNG. Undated series are plotted
// against row index.
func WriteChart(w io.Writer, result *engine.SeriesResult) error {
	if len(result.Rows) == 0 {
		return ErrNoRows
	}

	dated := true
	for _, r := range result.Rows {
		if r.Measurement.Date.IsZero() {
			dated = false
			break
		}
	}

	plots := make([][]*plot.Plot, len(panels))
	for i, row := range panels {
		plots[i] = make([]*plot.Plot, len(row))
		for j, pn := range row {
			p, err := newPanel(pn, result.Rows, dated)
			if err != nil {
				return fmt.Errorf("building %s panel: %w", pn.title, err)
			}
			plots[i][j] = p
		}
	}

	img := vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight), vgimg.UseDPI(chartDPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(panels), Cols: len(panels[0]),
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: 2 * vg.Millimeter, PadBottom: 2 * vg.Millimeter,
		PadLeft: 2 * vg.Millimeter, PadRight: 2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SaveChart writes the chart to path, creating parent directories.
func SaveChart(path string, result *engine.SeriesResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err = WriteChart(f, result); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newPanel(pn panel, rows []engine.Row, dated bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pn.title
	p.Y.Label.Text = pn.unit
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(rows))
	for i, r := range rows {
		if dated {
			xys[i].X = float64(r.Measurement.Date.Unix())
		} else {
			xys[i].X = float64(r.Index)
		}
		xys[i].Y = pn.value(r)
	}

	if dated {
		p.X.Label.Text = "Date"
		p.X.Tick.Marker = plot.TimeTicks{Format: dateLayout}
	} else {
		p.X.Label.Text = "Row"
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(2)
	p.Add(line, points)
	return p, nil
}
