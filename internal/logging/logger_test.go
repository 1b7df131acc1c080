package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONWithRunID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug", Format: FormatJSON}, &buf)

	ctx := ContextWithRunID(context.Background(), "01J00000000000000000000000")
	l.Info().Ctx(ctx).Str("component", "engine").Msg("series computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, "01J00000000000000000000000", entry["run_id"])
	assert.Equal(t, "series computed", entry["message"])
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLogger(Config{Level: tt.level, Format: FormatJSON}, &bytes.Buffer{})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eorx.log")

	res := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
	t.Cleanup(func() { _ = res.Close() })

	assert.True(t, res.UsingFile)
	assert.False(t, res.FallbackUsed)
	assert.Equal(t, path, res.FilePath)
	assert.FileExists(t, path)
	require.NoError(t, res.Close())
	require.NoError(t, res.Close())
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	res := NewLoggerWithPath(Config{Output: OutputFile})
	assert.False(t, res.UsingFile)
	assert.True(t, res.FallbackUsed)
	assert.NotEmpty(t, res.FallbackReason)
}

func TestRunID(t *testing.T) {
	id := NewRunID()
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)

	assert.Empty(t, RunIDFromContext(context.Background()))
	assert.NotEmpty(t, GetOrGenerateRunID(context.Background()))

	ctx := ContextWithRunID(context.Background(), id)
	assert.Equal(t, id, GetOrGenerateRunID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Format: FormatJSON}, &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/eorx.log")
	PrintFallbackWarning(&buf, "permission denied")
	assert.Contains(t, buf.String(), "Logging to /tmp/eorx.log")
	assert.Contains(t, buf.String(), "permission denied")
}
