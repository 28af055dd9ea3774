package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestVersionDefault(t *testing.T) {
	assert.NotEmpty(t, Version)
}

func TestStyled(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = true

	for _, v := range []string{"1.2.3", "0.1.0-dev", "1.2.3-rc.1+build.123", "dev", "1.2"} {
		Version = v
		assert.Equal(t, v, Styled())
	}

	color.NoColor = false
	Version = "1.2.3-dev"
	styled := Styled()
	assert.Contains(t, styled, "\x1b[")
	assert.Contains(t, styled, "-dev")
}

func TestCommitOverride(t *testing.T) {
	orig := GitCommit
	t.Cleanup(func() { GitCommit = orig })

	GitCommit = "abc123def456"
	assert.Equal(t, "abc123def456", Commit())
}
