package exergy

import (
	"fmt"
	"strings"
)

// Technology identifies the enhanced oil recovery method whose balance is computed.
type Technology int

const (
	// Waterflooding injects treated water only.
	Waterflooding Technology = iota

	// PolymerInjection injects water blended with polymer at concentration C.
	PolymerInjection

	// CO2Injection is representable but not yet modeled.
	CO2Injection

	// SteamInjection (steamflooding / cyclic steam) is representable but not yet modeled.
	SteamInjection

	// ASP (alkaline-surfactant-polymer) is representable but not yet modeled.
	ASP
)

// Technologies returns every representable technology in declaration order.
func Technologies() []Technology {
	return []Technology{Waterflooding, PolymerInjection, CO2Injection, SteamInjection, ASP}
}

// String returns the canonical lower-case key used in config files and flags.
func (t Technology) String() string {
	switch t {
	case Waterflooding:
		return "waterflooding"
	case PolymerInjection:
		return "polymer"
	case CO2Injection:
		return "co2"
	case SteamInjection:
		return "steam"
	case ASP:
		return "asp"
	default:
		return fmt.Sprintf("Technology(%d)", t)
	}
}

// DisplayName returns the human-readable technology name.
func (t Technology) DisplayName() string {
	switch t {
	case Waterflooding:
		return "Waterflooding"
	case PolymerInjection:
		return "Polymer Injection"
	case CO2Injection:
		return "CO₂ Injection"
	case SteamInjection:
		return "Steam Injection / CSS"
	case ASP:
		return "ASP"
	default:
		return t.String()
	}
}

// Valid reports whether t is one of the declared technologies.
func (t Technology) Valid() bool {
	return t >= Waterflooding && t <= ASP
}

// Modeled reports whether the process-input terms (mixing, water treatment,
// injection and valve friction) are implemented for t. Unmodeled technologies
// yield a balance made of artificial lift and oil chemical exergy only.
func (t Technology) Modeled() bool {
	return t == Waterflooding || t == PolymerInjection
}

// RequiresConcentration reports whether measurements must carry a polymer concentration.
func (t Technology) RequiresConcentration() bool {
	return t == PolymerInjection
}

// ParseTechnology resolves a technology from its key, display name or a common
// alias. Matching ignores case, spaces, dashes and underscores.
func ParseTechnology(s string) (Technology, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "", "₂", "2", "/", "").Replace(strings.ToLower(s))
	switch key {
	case "waterflooding", "waterflood", "water":
		return Waterflooding, nil
	case "polymer", "polymerinjection", "polymerflood", "polymerflooding":
		return PolymerInjection, nil
	case "co2", "co2injection":
		return CO2Injection, nil
	case "steam", "steaminjection", "steamflooding", "css", "steaminjectioncss":
		return SteamInjection, nil
	case "asp", "alkalinesurfactantpolymer":
		return ASP, nil
	default:
		return Waterflooding, fmt.Errorf("%w: %q", ErrUnknownTechnology, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Technology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTechnology, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Technology) UnmarshalText(text []byte) error {
	parsed, err := ParseTechnology(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
