// Package catalog lists the enhanced oil recovery technologies eorx knows
// about, where they are deployed, and which of them have a balance model.
package catalog

import (
	"slices"
	"strings"

	"github.com/rshade/eorx/internal/exergy"
)

// Categories.
const (
	CategoryWater      = "Water"
	CategoryGas        = "Gas"
	CategoryThermal    = "Thermal"
	CategoryChemical   = "Chemical"
	CategoryBiological = "Biological"
	CategoryAdvanced   = "Advanced"
)

// Entry describes one technology.
type Entry struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Regions     []string `json:"regions"`
	// Technology is set when the entry maps onto an exergy.Technology.
	Technology *exergy.Technology `json:"technology,omitempty"`
}

// Modeled reports whether an exergy balance model is implemented for the entry.
func (e Entry) Modeled() bool {
	return e.Technology != nil && e.Technology.Modeled()
}

func tech(t exergy.Technology) *exergy.Technology { return &t }

//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var entries = []Entry{
	{
		Key:         "waterflooding",
		Name:        "Waterflooding",
		Category:    CategoryWater,
		Description: "Treated water is injected to maintain reservoir pressure and sweep oil toward producers.",
		Regions:     []string{"Worldwide"},
		Technology:  tech(exergy.Waterflooding),
	},
	{
		Key:         "co2",
		Name:        "CO₂ Injection",
		Category:    CategoryGas,
		Description: "CO₂ is injected into the reservoir to reduce crude viscosity and improve its mobility.",
		Regions:     []string{"USA (Permian Basin)", "Canada", "United Arab Emirates"},
		Technology:  tech(exergy.CO2Injection),
	},
	{
		Key:         "steam",
		Name:        "Steam Injection (Steamflooding)",
		Category:    CategoryThermal,
		Description: "Steam is injected to heat the crude and make it flow more easily toward producers.",
		Regions:     []string{"California", "Venezuela", "Canada"},
		Technology:  tech(exergy.SteamInjection),
	},
	{
		Key:         "isc",
		Name:        "In-Situ Combustion (ISC)",
		Category:    CategoryThermal,
		Description: "Part of the crude is burned inside the reservoir to generate heat and reduce viscosity.",
		Regions:     []string{"India", "Russia", "Venezuela"},
	},
	{
		Key:         "polymer",
		Name:        "Polymer Injection",
		Category:    CategoryChemical,
		Description: "Polymers are added to the injection water to raise its viscosity and improve sweep efficiency.",
		Regions:     []string{"China", "Canada", "Argentina"},
		Technology:  tech(exergy.PolymerInjection),
	},
	{
		Key:         "asp",
		Name:        "ASP (Alkaline-Surfactant-Polymer)",
		Category:    CategoryChemical,
		Description: "A blend of chemical agents lowers interfacial tension and improves crude mobility.",
		Regions:     []string{"China", "India", "USA"},
		Technology:  tech(exergy.ASP),
	},
	{
		Key:         "meor",
		Name:        "Microbial (MEOR)",
		Category:    CategoryBiological,
		Description: "Microorganisms produce gases or biosurfactants that improve recovery.",
		Regions:     []string{"India", "Russia", "Pilot projects"},
	},
	{
		Key:         "nano",
		Name:        "Nanotechnology (emerging)",
		Category:    CategoryAdvanced,
		Description: "Nanoparticles alter the properties of the crude or the porous medium.",
		Regions:     []string{"USA", "United Arab Emirates", "Pilot phase"},
	},
}

// All returns every entry in catalogue order.
func All() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = clone(e)
	}
	return out
}

// Filter returns the entries matching category and region, in catalogue
// order. An empty (or "all") argument matches everything; matching ignores case.
func Filter(category, region string) []Entry {
	var out []Entry
	for _, e := range entries {
		if !matches(category, e.Category) {
			continue
		}
		if !isAll(region) && !slices.ContainsFunc(e.Regions, func(r string) bool {
			return strings.EqualFold(r, strings.TrimSpace(region))
		}) {
			continue
		}
		out = append(out, clone(e))
	}
	return out
}

// Lookup returns the entry describing t.
func Lookup(t exergy.Technology) (Entry, bool) {
	for _, e := range entries {
		if e.Technology != nil && *e.Technology == t {
			return clone(e), true
		}
	}
	return Entry{}, false
}

// Categories returns the distinct categories, sorted.
func Categories() []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Category)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Regions returns the distinct deployment regions, sorted.
func Regions() []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Regions...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "all")
}

func matches(filter, value string) bool {
	return isAll(filter) || strings.EqualFold(strings.TrimSpace(filter), value)
}

func clone(e Entry) Entry {
	e.Regions = slices.Clone(e.Regions)
	if e.Technology != nil {
		e.Technology = tech(*e.Technology)
	}
	return e
}
