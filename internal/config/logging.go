package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/eorx/internal/logging"
)

// LoggingConfig is the logging section.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File, when set, sends logs to this path instead of stderr.
	File string `yaml:"file,omitempty"`
}

// ToLoggingConfig converts the section for logging.NewLoggerWithPath.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// EnsureLogDir creates the directory of the configured log file.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(lc.File), 0o750)
}
