package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/eorx/internal/logging"
)

// ResolveProjectDir returns the absolute project-local .eorx directory, or ""
// when there is none. It checks, in order, flagValue, $EORX_PROJECT_DIR and
// the nearest ancestor of startDir containing a .eorx directory. Nothing is
// created.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	root, err := findProjectRoot(startDir)
	if err != nil {
		return ""
	}
	return filepath.Join(root, dirName)
}

// NewWithProjectDir loads the global config and shallow-merges
// projectDir/config.yaml on top. Environment overrides are applied last.
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()
	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Str("overlay_path", overlayPath).
			Err(err).
			Msg("failed to merge project config, using global config")
		return cfg
	}
	_ = merged.ApplyEnv(os.LookupEnv)
	merged.SetConfigPath(overlayPath)
	return merged
}

var errNoProject = errors.New("no .eorx directory found")

// findProjectRoot walks up from start to the first directory holding .eorx.
// The home directory's .eorx is the global home, not a project.
func findProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	globalHome, _ := filepath.Abs(Home())

	for {
		candidate := filepath.Join(dir, dirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() && candidate != globalHome {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoProject
		}
		dir = parent
	}
}

func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "config").
			Str("dir", dir).
			Err(err).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}
	if filepath.Base(abs) == dirName {
		return abs
	}
	return filepath.Join(abs, dirName)
}
