package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/eorx/internal/cli"
)

// isolate points eorx at throwaway home and project directories.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("EORX_HOME", home)
	t.Setenv("EORX_PROJECT_DIR", project)
	t.Setenv("EORX_LOG_LEVEL", "error")
	for _, k := range []string{"EORX_MODE", "EORX_TECHNOLOGY", "EORX_OUTPUT_FORMAT", "EORX_CONCURRENCY", "EORX_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	return home, project
}

// execute runs the root command and returns stdout and stderr separately.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wells.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const wellsCSV = "date,Qinj_B,qoil_B,WHP_psi,WOR\n" +
	"2024-01-01,1000,500,1500,0.5\n" +
	"2024-01-02,1200,480,1550,1.5\n" +
	"2024-01-03,900,510,1450,0.4\n"
