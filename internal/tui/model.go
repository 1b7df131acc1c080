package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/greenops"
)

// SortField orders the rows in the table.
type SortField int

// Sort orders, cycled with "s".
const (
	SortByIndex SortField = iota
	SortByCO2
	SortByRecoveryFactor
	sortFieldCount
)

func (s SortField) String() string {
	switch s {
	case SortByCO2:
		return "CO2"
	case SortByRecoveryFactor:
		return "X_RF"
	default:
		return "date"
	}
}

// chromeHeight is the space taken by the summary box, help line and margins.
const chromeHeight = 16

// SeriesModel is the Bubble Tea model for browsing an evaluated series.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View.
type SeriesModel struct {
	state  ViewState
	result *engine.SeriesResult
	rows   []engine.Row
	eq     greenops.Equivalencies

	table    table.Model
	selected int
	sortBy   SortField

	width  int
	height int
}

// NewSeriesModel creates the interactive model for result.
func NewSeriesModel(ctx context.Context, result *engine.SeriesResult) SeriesModel {
	m := SeriesModel{
		state:  ViewStateList,
		result: result,
		rows:   slices.Clone(result.Rows),
		eq:     greenops.CalculateFromTons(ctx, result.Totals().CO2EmissionsTons),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.table = NewSeriesTable(m.rows, m.tableHeight())
	return m
}

// Init implements tea.Model.
func (m SeriesModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m SeriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(keyMsg)
	case ViewStateDetail:
		return m.handleDetailKey(keyMsg)
	default:
		return m, nil
	}
}

func (m SeriesModel) handleListKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		m.selected = m.table.Cursor()
		if m.selected >= 0 && m.selected < len(m.rows) {
			m.state = ViewStateDetail
		}
		return m, nil
	case keyS:
		m.sortBy = (m.sortBy + 1) % sortFieldCount
		m.applySort()
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m SeriesModel) handleDetailKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc, keyEnter:
		m.state = ViewStateList
	}
	return m, nil
}

func (m *SeriesModel) applySort() {
	switch m.sortBy {
	case SortByCO2:
		slices.SortStableFunc(m.rows, func(a, b engine.Row) int {
			return cmpDesc(a.Summary.CO2EmissionsTons, b.Summary.CO2EmissionsTons)
		})
	case SortByRecoveryFactor:
		slices.SortStableFunc(m.rows, func(a, b engine.Row) int {
			return cmpDesc(a.Balance.RecoveryFactor, b.Balance.RecoveryFactor)
		})
	default:
		slices.SortStableFunc(m.rows, func(a, b engine.Row) int { return a.Index - b.Index })
	}
	m.table.SetRows(seriesRows(m.rows))
	m.table.SetCursor(0)
}

func cmpDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func (m SeriesModel) tableHeight() int {
	return max(m.height-chromeHeight, minTableHeight)
}

// View implements tea.Model.
func (m SeriesModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m SeriesModel) renderList() string {
	help := lipgloss.NewStyle().Foreground(ColorMuted).
		Render(fmt.Sprintf("↑/↓ move • enter details • s sort (%s) • q quit", m.sortBy))
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderSeriesSummary(m.result, m.eq),
		m.table.View(),
		help,
	)
}

func (m SeriesModel) renderDetail() string {
	r := m.rows[m.selected]
	b, s := r.Balance, r.Summary

	header := lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	label := lipgloss.NewStyle().Foreground(ColorLabel).Width(summaryLabelWidth)
	value := lipgloss.NewStyle().Foreground(ColorValue)

	var sb strings.Builder
	title := fmt.Sprintf("Row %d", r.Index)
	if !r.Measurement.Date.IsZero() {
		title += " (" + r.Measurement.Date.Format("2006-01-02") + ")"
	}
	sb.WriteString(header.Render(title))
	sb.WriteString("\n\n")

	kv := [][2]string{
		{"Qinj (bbl/d)", fmt.Sprintf("%g", r.Measurement.InjectionRate)},
		{"qoil (bbl/d)", fmt.Sprintf("%g", r.Measurement.OilRate)},
		{"WHP (psi)", fmt.Sprintf("%g", r.Measurement.WellheadPressure)},
		{"WOR", fmt.Sprintf("%g", r.Measurement.WOR)},
	}
	if r.Measurement.Concentration != nil {
		kv = append(kv, [2]string{"C", fmt.Sprintf("%g", *r.Measurement.Concentration)})
	}
	kv = append(kv,
		[2]string{"Mixing (J)", fmt.Sprintf("%.4e", b.Mixing)},
		[2]string{"Water treatment (J)", fmt.Sprintf("%.4e", b.WaterTreatment)},
		[2]string{"Injection (J)", fmt.Sprintf("%.4e", b.Injection)},
		[2]string{"Valve friction (J)", fmt.Sprintf("%.4e", b.ValveFriction)},
		[2]string{"Artificial lift (J)", fmt.Sprintf("%.4e", b.ArtificialLift)},
		[2]string{"Oil exergy (J)", fmt.Sprintf("%.4e", b.OilTotal)},
		[2]string{"Input (kWh)", fmt.Sprintf("%.3f", s.InputExergyKWh)},
		[2]string{"CO2 (t)", fmt.Sprintf("%.3f", s.CO2EmissionsTons)},
		[2]string{"Cost (kUSD)", fmt.Sprintf("%.3f", s.EnergyCostKUSD)},
	)
	for _, p := range kv {
		sb.WriteString(label.Render(p[0]) + value.Render(p[1]) + "\n")
	}

	rf := lipgloss.NewStyle().Foreground(RecoveryFactorColor(b.RecoveryFactor)).Bold(true)
	sb.WriteString(label.Render("X_RF") + rf.Render(fmt.Sprintf("%.5f", b.RecoveryFactor)) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("esc back • q quit"))

	return sb.String()
}
