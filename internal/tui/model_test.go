package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/exergy"
	"github.com/rshade/eorx/internal/greenops"
)

func testSeries(t *testing.T, tech exergy.Technology) *engine.SeriesResult {
	t.Helper()
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	ms := []exergy.Measurement{
		{Date: day(1), InjectionRate: 1000, OilRate: 500, WellheadPressure: 1500, WOR: 0.5},
		{Date: day(2), InjectionRate: 3000, OilRate: 200, WellheadPressure: 2500, WOR: 0.8},
		{Date: day(3), InjectionRate: -5, OilRate: 200, WellheadPressure: 2500, WOR: 0.8},
		{Date: day(4), InjectionRate: 800, OilRate: 650, WellheadPressure: 1200, WOR: 0.3},
	}
	res, err := engine.ComputeSeries(context.Background(), ms, exergy.DefaultParameters(),
		tech, engine.Options{Mode: engine.Lenient})
	require.NoError(t, err)
	return res
}

func key(s string) tea.KeyMsg {
	switch s {
	case keyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	case keyEsc:
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m SeriesModel, msg tea.Msg) (SeriesModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SeriesModel)
	require.True(t, ok)
	return sm, cmd
}

func TestNewSeriesModel(t *testing.T) {
	m := NewSeriesModel(context.Background(), testSeries(t, exergy.Waterflooding))

	assert.Equal(t, ViewStateList, m.state)
	assert.Len(t, m.rows, 3)
	assert.Equal(t, SortByIndex, m.sortBy)
	assert.False(t, m.eq.Empty)
	assert.Nil(t, m.Init())
	assert.Len(t, m.table.Rows(), 3)
}

func TestSeriesModel_StateTransitions(t *testing.T) {
	m := NewSeriesModel(context.Background(), testSeries(t, exergy.Waterflooding))

	m, _ = update(t, m, key(keyEnter))
	assert.Equal(t, ViewStateDetail, m.state)
	assert.Contains(t, m.View(), "Row 0 (2024-03-01)")

	m, _ = update(t, m, key(keyEsc))
	assert.Equal(t, ViewStateList, m.state)

	m, cmd := update(t, m, key(keyQuit))
	assert.Equal(t, ViewStateQuitting, m.state)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestSeriesModel_SortCycle(t *testing.T) {
	m := NewSeriesModel(context.Background(), testSeries(t, exergy.Waterflooding))

	m, _ = update(t, m, key(keyS))
	assert.Equal(t, SortByCO2, m.sortBy)
	for i := 1; i < len(m.rows); i++ {
		assert.GreaterOrEqual(t, m.rows[i-1].Summary.CO2EmissionsTons, m.rows[i].Summary.CO2EmissionsTons)
	}

	m, _ = update(t, m, key(keyS))
	assert.Equal(t, SortByRecoveryFactor, m.sortBy)
	for i := 1; i < len(m.rows); i++ {
		assert.GreaterOrEqual(t, m.rows[i-1].Balance.RecoveryFactor, m.rows[i].Balance.RecoveryFactor)
	}

	m, _ = update(t, m, key(keyS))
	assert.Equal(t, SortByIndex, m.sortBy)
	assert.Equal(t, []int{0, 1, 3}, []int{m.rows[0].Index, m.rows[1].Index, m.rows[2].Index})
}

func TestSeriesModel_WindowResize(t *testing.T) {
	m := NewSeriesModel(context.Background(), testSeries(t, exergy.Waterflooding))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 40-chromeHeight, m.tableHeight())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 5})
	assert.Equal(t, minTableHeight, m.tableHeight())
}

func TestSeriesModel_ListView(t *testing.T) {
	m := NewSeriesModel(context.Background(), testSeries(t, exergy.Waterflooding))
	view := m.View()

	assert.Contains(t, view, "Exergy Balance: Waterflooding")
	assert.Contains(t, view, "2024-03-04")
	assert.Contains(t, view, "q quit")
}

func TestRenderSeriesSummary(t *testing.T) {
	t.Run("modeled with exclusions", func(t *testing.T) {
		res := testSeries(t, exergy.Waterflooding)
		eq := greenops.CalculateFromTons(context.Background(), res.Totals().CO2EmissionsTons)

		out := RenderSeriesSummary(res, eq)
		assert.Contains(t, out, "3 of 4")
		assert.Contains(t, out, "(1 excluded)")
		assert.Contains(t, out, "2024-03-01 .. 2024-03-04")
		assert.Contains(t, out, "Mean X_RF")
		assert.Contains(t, out, "driving")
		assert.NotContains(t, out, "not modeled")
	})

	t.Run("unmodeled technology", func(t *testing.T) {
		out := RenderSeriesSummary(testSeries(t, exergy.SteamInjection), greenops.Equivalencies{Empty: true})
		assert.Contains(t, out, "not modeled")
		assert.NotContains(t, out, "driving")
	})

	t.Run("empty series", func(t *testing.T) {
		out := RenderSeriesSummary(&engine.SeriesResult{Technology: exergy.Waterflooding}, greenops.Equivalencies{Empty: true})
		assert.Contains(t, out, "0 of 0")
		assert.NotContains(t, out, "Mean X_RF")
	})
}

func TestRecoveryFactorColor(t *testing.T) {
	assert.Equal(t, ColorOK, RecoveryFactorColor(0.95))
	assert.Equal(t, ColorWarning, RecoveryFactorColor(0.6))
	assert.Equal(t, ColorCritical, RecoveryFactorColor(-0.2))
}

func TestNewSeriesTable(t *testing.T) {
	res := testSeries(t, exergy.Waterflooding)
	tbl := NewSeriesTable(res.Rows, 1)

	require.Len(t, tbl.Rows(), 3)
	assert.Equal(t, "2024-03-01", tbl.Rows()[0][0])
	assert.Equal(t, "2.039", tbl.Rows()[0][1])
	assert.Len(t, tbl.Columns(), 5)
}
