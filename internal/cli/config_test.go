package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit_Project(t *testing.T) {
	_, project := isolate(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")
	assert.FileExists(t, filepath.Join(project, ".eorx", "config.yaml"))
	assert.FileExists(t, filepath.Join(project, ".eorx", ".gitignore"))

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ExistingGitignorePreserved(t *testing.T) {
	_, project := isolate(t)
	dir := filepath.Join(project, ".eorx")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("custom\n"), 0o600))

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.NotContains(t, out, "Created .gitignore")

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}

func TestConfigInit_Global(t *testing.T) {
	home, project := isolate(t)

	out, _, err := execute(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "config.yaml"))
	assert.FileExists(t, filepath.Join(home, "config.yaml"))
	assert.NoFileExists(t, filepath.Join(project, ".eorx", "config.yaml"))
}

func TestConfigShow(t *testing.T) {
	isolate(t)
	t.Setenv("EORX_MODE", "lenient")

	out, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# source:")
	assert.Contains(t, out, "mode: lenient")
	assert.Contains(t, out, "oil_density: 900")
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		isolate(t)
		out, _, err := execute(t, "config", "validate", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
		assert.Contains(t, out, "Technology: waterflooding")
	})

	t.Run("invalid", func(t *testing.T) {
		_, project := isolate(t)
		writeProjectConfig(t, project, "parameters:\n  oil_density: 700\n")

		_, _, err := execute(t, "config", "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "oil_density")
	})
}
