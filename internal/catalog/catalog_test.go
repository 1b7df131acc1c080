package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/eorx/internal/exergy"
)

func keys(es []Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Key)
	}
	return out
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	assert.Equal(t, "waterflooding", all[0].Key)

	// Callers can't mutate the catalogue.
	all[0].Regions[0] = "Mars"
	assert.Equal(t, "Worldwide", All()[0].Regions[0])
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		region   string
		want     []string
	}{
		{"everything", "", "", []string{"waterflooding", "co2", "steam", "isc", "polymer", "asp", "meor", "nano"}},
		{"all keyword", "All", "all", []string{"waterflooding", "co2", "steam", "isc", "polymer", "asp", "meor", "nano"}},
		{"thermal", "thermal", "", []string{"steam", "isc"}},
		{"chemical in china", "Chemical", "China", []string{"polymer", "asp"}},
		{"region only", "", "venezuela", []string{"steam", "isc"}},
		{"canada", "", "Canada", []string{"co2", "steam", "polymer"}},
		{"no match", "Gas", "China", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(Filter(tt.category, tt.region)))
		})
	}
}

func TestLookup(t *testing.T) {
	for _, tech := range exergy.Technologies() {
		t.Run(tech.String(), func(t *testing.T) {
			e, ok := Lookup(tech)
			require.True(t, ok)
			require.NotNil(t, e.Technology)
			assert.Equal(t, tech, *e.Technology)
			assert.Equal(t, tech.Modeled(), e.Modeled())
		})
	}

	_, ok := Lookup(exergy.Technology(99))
	assert.False(t, ok)
}

func TestModeled(t *testing.T) {
	var modeled []string
	for _, e := range All() {
		if e.Modeled() {
			modeled = append(modeled, e.Key)
		}
	}
	assert.Equal(t, []string{"waterflooding", "polymer"}, modeled)
}

func TestCategoriesAndRegions(t *testing.T) {
	assert.Equal(t,
		[]string{"Advanced", "Biological", "Chemical", "Gas", "Thermal", "Water"},
		Categories())

	regions := Regions()
	assert.IsIncreasing(t, regions)
	assert.Contains(t, regions, "USA (Permian Basin)")
	assert.Contains(t, regions, "Worldwide")
}
