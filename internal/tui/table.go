package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/eorx/internal/engine"
)

// Column widths for the series table.
const (
	colWidthDate   = 12
	colWidthCO2    = 10
	colWidthCost   = 12
	colWidthRF     = 8
	colWidthUseful = 14
)

// minTableHeight keeps a few rows visible on tiny terminals.
const minTableHeight = 3

func seriesColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: colWidthDate},
		{Title: "CO2 (t)", Width: colWidthCO2},
		{Title: "Cost (kUSD)", Width: colWidthCost},
		{Title: "X_RF", Width: colWidthRF},
		{Title: "Useful (GJ)", Width: colWidthUseful},
	}
}

func seriesRows(rows []engine.Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		date := fmt.Sprintf("#%d", r.Index)
		if !r.Measurement.Date.IsZero() {
			date = r.Measurement.Date.Format("2006-01-02")
		}
		out[i] = table.Row{
			date,
			fmt.Sprintf("%.3f", r.Summary.CO2EmissionsTons),
			fmt.Sprintf("%.3f", r.Summary.EnergyCostKUSD),
			fmt.Sprintf("%.3f", r.Balance.RecoveryFactor),
			fmt.Sprintf("%.3f", r.Summary.UsefulOilExergyGJ),
		}
	}
	return out
}

// NewSeriesTable builds a focused table of rows, height lines tall.
func NewSeriesTable(rows []engine.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(seriesColumns()),
		table.WithRows(seriesRows(rows)),
		table.WithFocused(true),
		table.WithHeight(max(height, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorHeader)
	s.Selected = s.Selected.
		Foreground(ColorValue).
		Background(ColorHighlight).
		Bold(false)
	t.SetStyles(s)
	return t
}
