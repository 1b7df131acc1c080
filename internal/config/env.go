package config

import (
	"fmt"
	"strconv"
)

// Environment variables.
const (
	EnvHome        = "EORX_HOME"
	EnvProjectDir  = "EORX_PROJECT_DIR"
	EnvLogLevel    = "EORX_LOG_LEVEL"
	EnvLogFormat   = "EORX_LOG_FORMAT"
	EnvTechnology  = "EORX_TECHNOLOGY"
	EnvMode        = "EORX_MODE"
	EnvConcurrency = "EORX_CONCURRENCY"
	EnvOutput      = "EORX_OUTPUT_FORMAT"
)

// ApplyEnv overrides settings from the environment. lookup is usually
// os.LookupEnv. Values are not validated here; call Validate afterwards.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
		{EnvTechnology, &c.Analysis.Technology},
		{EnvMode, &c.Analysis.Mode},
		{EnvOutput, &c.Output.DefaultFormat},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvConcurrency); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvConcurrency, v)
		}
		c.Analysis.Concurrency = n
	}
	return nil
}
