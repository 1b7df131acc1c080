// Package config loads, validates and saves eorx configuration.
//
// The global file lives at $EORX_HOME/config.yaml (default ~/.eorx). A
// project may carry .eorx/config.yaml, whose top-level sections replace the
// global ones. EORX_* environment variables override both, and CLI flags
// override everything.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/engine/batch"
	"github.com/rshade/eorx/internal/exergy"
)

// Directory and file names.
const (
	dirName        = ".eorx"
	configFileName = "config.yaml"
)

// Output formats accepted by output.default_format.
//
//nolint:gochecknoglobals // Fixed set of renderer names.
var OutputFormats = []string{"table", "json", "ndjson", "csv"}

// Config is the full eorx configuration.
type Config struct {
	SchemaVersion string            `yaml:"schema_version"`
	Parameters    exergy.Parameters `yaml:"parameters"`
	Analysis      AnalysisConfig    `yaml:"analysis"`
	Output        OutputConfig      `yaml:"output"`
	Logging       LoggingConfig     `yaml:"logging"`
	Cache         CacheConfig       `yaml:"cache"`

	configPath string
}

// AnalysisConfig selects how a series is computed.
type AnalysisConfig struct {
	Technology  string `yaml:"technology"`
	Mode        string `yaml:"mode"`
	Concurrency int    `yaml:"concurrency"`
	BatchSize   int    `yaml:"batch_size"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// CacheConfig controls the series result cache under $EORX_HOME/cache.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// Cache TTL bounds, in seconds.
const (
	MinCacheTTLSeconds = 60
	MaxCacheTTLSeconds = 7 * 24 * 3600
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Parameters:    exergy.DefaultParameters(),
		Analysis: AnalysisConfig{
			Technology:  exergy.Waterflooding.String(),
			Mode:        engine.Strict.String(),
			Concurrency: 1,
			BatchSize:   batch.DefaultChunkSize,
		},
		Output:  OutputConfig{DefaultFormat: "table"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Cache:   CacheConfig{Enabled: true, TTLSeconds: 3600},
	}
}

// Home returns the eorx home directory: $EORX_HOME or ~/.eorx.
func Home() string {
	if h := os.Getenv(EnvHome); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// CacheDir returns the series cache directory.
func CacheDir() string {
	return filepath.Join(Home(), "cache")
}

// DefaultPath returns the global config file path.
func DefaultPath() string {
	return filepath.Join(Home(), configFileName)
}

// New returns the global configuration with environment overrides applied.
// A missing or unreadable file yields defaults.
func New() *Config {
	cfg, err := Load(DefaultPath())
	if err != nil {
		cfg = Default()
		cfg.configPath = DefaultPath()
	}
	_ = cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err = CheckSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath returns where Save writes.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = DefaultPath()
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := CheckSchemaVersion(c.SchemaVersion); err != nil {
		errs = append(errs, err)
	}
	if err := c.Parameters.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("parameters: %w", err))
	}
	if _, err := c.Technology(); err != nil {
		errs = append(errs, fmt.Errorf("analysis.technology: %w", err))
	}
	if _, err := c.Mode(); err != nil {
		errs = append(errs, fmt.Errorf("analysis.mode: %w", err))
	}
	if c.Analysis.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("%w: analysis.concurrency must be >= 1, got %d",
			ErrInvalidValue, c.Analysis.Concurrency))
	}
	if c.Analysis.BatchSize < batch.MinChunkSize || c.Analysis.BatchSize > batch.MaxChunkSize {
		errs = append(errs, fmt.Errorf("%w: analysis.batch_size must be in [%d, %d], got %d",
			ErrInvalidValue, batch.MinChunkSize, batch.MaxChunkSize, c.Analysis.BatchSize))
	}
	if !slices.Contains(OutputFormats, strings.ToLower(c.Output.DefaultFormat)) {
		errs = append(errs, fmt.Errorf("%w: output.default_format %q (want one of %s)",
			ErrInvalidValue, c.Output.DefaultFormat, strings.Join(OutputFormats, ", ")))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil || c.Logging.Level == "" {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level))
	}
	if f := strings.ToLower(c.Logging.Format); f != "console" && f != "json" {
		errs = append(errs, fmt.Errorf("%w: logging.format %q (want console or json)",
			ErrInvalidValue, c.Logging.Format))
	}
	if c.Cache.Enabled && (c.Cache.TTLSeconds < MinCacheTTLSeconds || c.Cache.TTLSeconds > MaxCacheTTLSeconds) {
		errs = append(errs, fmt.Errorf("%w: cache.ttl_seconds must be in [%d, %d], got %d",
			ErrInvalidValue, MinCacheTTLSeconds, MaxCacheTTLSeconds, c.Cache.TTLSeconds))
	}

	return errors.Join(errs...)
}

// Technology parses analysis.technology.
func (c *Config) Technology() (exergy.Technology, error) {
	return exergy.ParseTechnology(c.Analysis.Technology)
}

// Mode parses analysis.mode.
func (c *Config) Mode() (engine.Mode, error) {
	return engine.ParseMode(c.Analysis.Mode)
}

// ToParameters returns the validated physical parameters.
func (c *Config) ToParameters() (exergy.Parameters, error) {
	if err := c.Parameters.Validate(); err != nil {
		return exergy.Parameters{}, err
	}
	return c.Parameters, nil
}

// EngineOptions builds series options from the analysis section.
func (c *Config) EngineOptions() (engine.Options, error) {
	mode, err := c.Mode()
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		Mode:        mode,
		Concurrency: c.Analysis.Concurrency,
		BatchSize:   c.Analysis.BatchSize,
	}, nil
}
