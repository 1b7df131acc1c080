package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/eorx/internal/exergy"
)

// Top-level YAML keys.
const (
	keySchemaVersion = "schema_version"
	keyParameters    = "parameters"
	keyAnalysis      = "analysis"
	keyOutput        = "output"
	keyLogging       = "logging"
	keyCache         = "cache"
)

// ShallowMergeYAML applies the top-level sections of the YAML file at
// overlayPath onto target. A section present in the overlay replaces the
// whole target section; fields it omits take their zero value, except
// parameters, whose omitted fields fall back to the built-in defaults.
// Unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = applySection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

func applySection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySchemaVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		if err := CheckSchemaVersion(v); err != nil {
			return err
		}
		target.SchemaVersion = v
	case keyParameters:
		v := exergy.DefaultParameters()
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Parameters = v
	case keyAnalysis:
		var v AnalysisConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Analysis = v
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyCache:
		var v CacheConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Cache = v
	}
	return nil
}
