package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentSchemaVersion is written by Save and config init.
const CurrentSchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions this build reads.
const supportedSchema = "^1"

// CheckSchemaVersion accepts an empty version (treated as current) and any
// version satisfying ^1.
func CheckSchemaVersion(v string) error {
	if v == "" {
		return nil
	}

	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, v, err)
	}

	c, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(ver) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, v, supportedSchema)
	}
	return nil
}
