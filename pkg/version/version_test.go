package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionDefaults(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "unknown", GetGitCommit())
	assert.Equal(t, "unknown", GetBuildDate())
	assert.Equal(t, "dev (commit unknown, built unknown)", String())
}
