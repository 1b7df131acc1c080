package config

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	// ErrInvalidValue marks a setting outside its allowed values.
	ErrInvalidValue = constError("invalid config value")

	// ErrUnsupportedSchema marks a schema_version this build cannot read.
	ErrUnsupportedSchema = constError("unsupported config schema version")
)
