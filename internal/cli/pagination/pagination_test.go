package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/exergy"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		errMsg string
	}{
		{name: "zero value", params: Params{}},
		{name: "offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, errMsg: "limit cannot be negative"},
		{name: "limit too large", params: Params{Limit: MaxLimit + 1}, errMsg: "limit cannot exceed"},
		{name: "negative offset", params: Params{Offset: -1}, errMsg: "offset cannot be negative"},
		{name: "negative page", params: Params{Page: -1}, errMsg: "page cannot be negative"},
		{name: "negative page-size", params: Params{PageSize: -1}, errMsg: "page-size cannot be negative"},
		{name: "mixed modes", params: Params{Page: 1, PageSize: 5, Offset: 10}, errMsg: "mutually exclusive"},
		{name: "page with limit", params: Params{Page: 1, PageSize: 5, Limit: 3}, errMsg: "mutually exclusive"},
		{name: "page-size without page", params: Params{PageSize: 10}, errMsg: "page must be specified"},
		{name: "page without page-size", params: Params{Page: 2}, errMsg: "page-size must be specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{"", DefaultSortField, SortOrderAsc, nil},
		{"co2", "co2", SortOrderAsc, nil},
		{"RF:DESC", "rf", SortOrderDesc, nil},
		{" cost : asc ", "cost", SortOrderAsc, nil},
		{"a:b:c", "", "", ErrInvalidSortFormat},
		{":desc", "", "", ErrEmptySortField},
		{"co2:up", "", "", ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{"disabled", Params{}, items},
		{"limit", Params{Limit: 3}, []int{0, 1, 2}},
		{"offset only", Params{Offset: 7}, []int{7, 8, 9}},
		{"offset and limit", Params{Offset: 4, Limit: 2}, []int{4, 5}},
		{"limit past end", Params{Offset: 8, Limit: 5}, []int{8, 9}},
		{"offset past end", Params{Offset: 20}, []int{}},
		{"first page", Params{Page: 1, PageSize: 4}, []int{0, 1, 2, 3}},
		{"partial last page", Params{Page: 3, PageSize: 4}, []int{8, 9}},
		{"page past end returns last page", Params{Page: 9, PageSize: 4}, []int{8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}

	assert.Empty(t, Apply(Params{Limit: 2}, []int{}))
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		total  int
		want   Meta
	}{
		{
			name:   "page mode middle",
			params: Params{Page: 2, PageSize: 10},
			total:  25,
			want:   Meta{CurrentPage: 2, PageSize: 10, TotalPages: 3, TotalItems: 25, HasPrevious: true, HasNext: true},
		},
		{
			name:   "offset mode converts to page",
			params: Params{Limit: 10, Offset: 20},
			total:  25,
			want:   Meta{CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25, HasPrevious: true},
		},
		{
			name:   "no limit is one page",
			params: Params{},
			total:  7,
			want:   Meta{CurrentPage: 1, PageSize: 7, TotalPages: 1, TotalItems: 7},
		},
		{
			name:   "empty",
			params: Params{Page: 1, PageSize: 5},
			total:  0,
			want:   Meta{CurrentPage: 1, PageSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.params, tt.total))
		})
	}
}

func testRows() []engine.Row {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return []engine.Row{
		{Index: 0, Measurement: exergy.Measurement{Date: day(3)}, Summary: engine.SeriesSummary{CO2EmissionsTons: 2}},
		{Index: 1, Measurement: exergy.Measurement{Date: day(1)}, Summary: engine.SeriesSummary{CO2EmissionsTons: 1}},
		{Index: 2, Measurement: exergy.Measurement{Date: day(2)}, Summary: engine.SeriesSummary{CO2EmissionsTons: 2}},
	}
}

func indexes(rows []engine.Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Index
	}
	return out
}

func TestRowSorter(t *testing.T) {
	sorter := NewRowSorter()
	rows := testRows()

	tests := []struct {
		field, order string
		want         []int
	}{
		{"index", SortOrderAsc, []int{0, 1, 2}},
		{"index", SortOrderDesc, []int{2, 1, 0}},
		{"date", SortOrderAsc, []int{1, 2, 0}},
		{"co2", SortOrderAsc, []int{1, 0, 2}},
		{"co2", SortOrderDesc, []int{0, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.field+":"+tt.order, func(t *testing.T) {
			got, err := sorter.Sort(rows, tt.field, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, indexes(got))
		})
	}

	assert.Equal(t, []int{0, 1, 2}, indexes(rows), "input untouched")

	_, err := sorter.Sort(rows, "savings", SortOrderAsc)
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "co2")

	assert.True(t, sorter.IsValidField("rf"))
	assert.False(t, sorter.IsValidField("name"))
	assert.Contains(t, sorter.GetValidFields(), "useful")
}
