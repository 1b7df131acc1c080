package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const gitignoreContent = `# eorx project-local output (auto-generated)
# config.yaml is tracked; logs and rendered charts are not.
*.log
*.png
`

// EnsureGitignore writes a .gitignore into dir unless one exists. It reports
// whether a file was created.
func EnsureGitignore(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	//nolint:gosec // .gitignore is meant to be world-readable.
	if err := os.WriteFile(path, []byte(gitignoreContent), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
