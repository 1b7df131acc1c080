package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_StatusAndClear(t *testing.T) {
	home, _ := isolate(t)
	file := writeCSV(t, wellsCSV)

	_, _, err := execute(t, "series", file, "--mode", "lenient", "--output", "csv")
	require.NoError(t, err)

	out, _, err := execute(t, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "cache"))
	assert.Contains(t, out, "Entries:   1")

	out, _, err = execute(t, "cache", "clear", "--expired")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")
	entries, err := os.ReadDir(filepath.Join(home, "cache"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "fresh entry survives --expired")

	_, _, err = execute(t, "cache", "clear")
	require.NoError(t, err)
	entries, err = os.ReadDir(filepath.Join(home, "cache"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCache_StatusDisabled(t *testing.T) {
	_, project := isolate(t)
	writeProjectConfig(t, project, "cache:\n  enabled: false\n")

	out, _, err := execute(t, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled:   false")
}
