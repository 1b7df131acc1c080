// Package version exposes build metadata injected with -ldflags.
package version

import "fmt"

// Set at build time, e.g.
//
//	-ldflags "-X github.com/rshade/eorx/pkg/version.version=v1.2.0"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the version string.
func GetVersion() string { return version }

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string { return gitCommit }

// GetBuildDate returns the build timestamp.
func GetBuildDate() string { return buildDate }

// String returns version, commit and build date on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
