package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/greenops"
)

const summaryLabelWidth = 20

// RenderSeriesSummary renders a bordered box with the technology, row counts
// and series totals. eq adds a CO₂ equivalents line unless it is Empty.
func RenderSeriesSummary(result *engine.SeriesResult, eq greenops.Equivalencies) string {
	t := result.Totals()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel).Width(summaryLabelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	line := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Exergy Balance: " + result.Technology.DisplayName()))
	sb.WriteString("\n\n")

	rows := fmt.Sprintf("%d of %d", t.Rows, result.InputRows)
	sb.WriteString(line("Rows", rows))
	if t.Excluded > 0 {
		warn := lipgloss.NewStyle().Foreground(ColorWarning)
		sb.WriteString(warn.Render(fmt.Sprintf("  (%d excluded)", t.Excluded)))
	}
	sb.WriteString("\n")

	if !t.Start.IsZero() {
		sb.WriteString(line("Period", t.Start.Format("2006-01-02")+" .. "+t.End.Format("2006-01-02")))
		sb.WriteString("\n")
	}

	sb.WriteString(line("Input exergy", greenops.FormatFloat(t.InputExergyKWh, 1)+" kWh"))
	sb.WriteString("\n")
	sb.WriteString(line("CO2 emissions", greenops.FormatFloat(t.CO2EmissionsTons, 3)+" t"))
	sb.WriteString("\n")
	sb.WriteString(line("Energy cost", greenops.FormatFloat(t.EnergyCostKUSD, 3)+" kUSD"))
	sb.WriteString("\n")
	sb.WriteString(line("Useful oil exergy", greenops.FormatFloat(t.UsefulOilExergyGJ, 3)+" GJ"))

	if t.Rows > 0 {
		rfStyle := lipgloss.NewStyle().Foreground(RecoveryFactorColor(t.MeanRecoveryFactor)).Bold(true)
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("Mean X_RF"))
		sb.WriteString(rfStyle.Render(fmt.Sprintf("%.3f", t.MeanRecoveryFactor)))
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("  [%.3f, %.3f]", t.MinRecoveryFactor, t.MaxRecoveryFactor)))
	}

	if !result.Technology.Modeled() {
		sb.WriteString("\n\n")
		sb.WriteString(mutedStyle.Render("Process terms not modeled for this technology."))
	}

	if !eq.Empty && eq.DisplayText != "" {
		sb.WriteString("\n\n")
		sb.WriteString(mutedStyle.Render(eq.DisplayText))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	return box.Render(sb.String())
}
