package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/eorx/internal/exergy"
)

func TestLoadCSV(t *testing.T) {
	data := "\ufeffdate,Qinj_B,qoil_B,WHP_psi,WOR,C\n" +
		"2024-01-01,1000,500,1500,0.5,0.001\n" +
		"2024-01-02,\"1,200\",480,1550,0.55,\n" +
		",,,,,\n" +
		"2024-01-03,1100,470,1500,0.6,0.0012\n"

	ms, err := LoadCSV(strings.NewReader(data), "wells.csv")
	require.NoError(t, err)
	require.Len(t, ms, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ms[0].Date)
	assert.InDelta(t, 1000.0, ms[0].InjectionRate, 0)
	assert.InDelta(t, 500.0, ms[0].OilRate, 0)
	assert.InDelta(t, 1500.0, ms[0].WellheadPressure, 0)
	assert.InDelta(t, 0.5, ms[0].WOR, 0)
	require.NotNil(t, ms[0].Concentration)
	assert.InDelta(t, 0.001, *ms[0].Concentration, 0)

	assert.InDelta(t, 1200.0, ms[1].InjectionRate, 0)
	assert.Nil(t, ms[1].Concentration, "blank C stays absent")
	assert.NotNil(t, ms[2].Concentration)

	assert.Equal(t, []int{2, 3, 5}, []int{ms[0].Line, ms[1].Line, ms[2].Line})
}

func TestLoadCSV_BlankLinesKeepFileLines(t *testing.T) {
	data := "date,Qinj_B,qoil_B,WHP_psi,WOR\n" +
		"2024-01-01,1000,500,1500,0.5\n" +
		"\n" +
		"2024-01-02,1100,490,1520,0.6\n" +
		"\n" +
		"2024-01-03,oops,480,1550,0.7\n"

	_, err := LoadCSV(strings.NewReader(data), "gaps.csv")
	var ce *CellError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 6, ce.Row)

	ms, err := LoadCSV(strings.NewReader(strings.Replace(data, "oops", "1200", 1)), "gaps.csv")
	require.NoError(t, err)
	require.Len(t, ms, 3)
	assert.Equal(t, 2, ms[0].Line)
	assert.Equal(t, 4, ms[1].Line)
	assert.Equal(t, 6, ms[2].Line)
}

func TestLoadCSV_HeaderMatching(t *testing.T) {
	data := " Date ,QINJ_B,Qoil_b,whp_psi,wor\n2024-02-01,10,5,100,0\n"

	ms, err := LoadCSV(strings.NewReader(data), "mixed.csv")
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Nil(t, ms[0].Concentration, "no C column")
	assert.InDelta(t, 10.0, ms[0].InjectionRate, 0)
}

func TestLoadCSV_MissingColumns(t *testing.T) {
	data := "date,Qinj_B,WOR\n2024-01-01,1,0\n"

	_, err := LoadCSV(strings.NewReader(data), "short.csv")
	require.ErrorIs(t, err, ErrMissingColumns)

	var mce *MissingColumnsError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, []string{exergy.FieldOilRate, exergy.FieldWellheadPressure}, mce.Columns)
	assert.Contains(t, err.Error(), "short.csv")
}

func TestLoadCSV_CellErrors(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantCol string
		wantErr error
	}{
		{"bad number", "2024-01-01,abc,5,100,0", exergy.FieldInjectionRate, errNotNumber},
		{"empty required", "2024-01-01,10,,100,0", exergy.FieldOilRate, errEmptyCell},
		{"bad date", "yesterday,10,5,100,0", exergy.FieldDate, ErrInvalidDate},
		{"decimal comma", "2024-01-01,\"1000,5\",5,100,0", exergy.FieldInjectionRate, errDecimalComma},
		{"misplaced grouping", "2024-01-01,10,\"12,34\",100,0", exergy.FieldOilRate, errDecimalComma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "date,Qinj_B,qoil_B,WHP_psi,WOR\n2024-01-01,1,1,1,0\n" + tt.row + "\n"

			_, err := LoadCSV(strings.NewReader(data), "bad.csv")
			require.ErrorIs(t, err, tt.wantErr)

			var ce *CellError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, 3, ce.Row)
			assert.Equal(t, tt.wantCol, ce.Column)
			assert.Equal(t, "bad.csv", ce.Source)
		})
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""), "empty.csv")
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-05", "2024/03/05", "03/05/2024", "05.03.2024", " 2024-03-05 ", "Mar 5, 2024"} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseDate(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}

	got, err := ParseDate("2024-03-05T06:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Hour())

	_, err = ParseDate("5th of March")
	require.ErrorIs(t, err, ErrInvalidDate)
}
