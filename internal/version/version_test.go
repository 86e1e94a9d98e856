package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBuildTime(t *testing.T) {
	assert.True(t, parseBuildTime("unknown").IsZero())
	assert.True(t, parseBuildTime("").IsZero())
	assert.True(t, parseBuildTime("yesterday").IsZero())
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), parseBuildTime("2024-05-01T12:00:00Z"))
	assert.Equal(t, 2024, parseBuildTime("2024-05-01 12:00:00").Year())
}

func TestReleaseVersion(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	defer func() { Version, GitCommit = oldVersion, oldCommit }()

	Version = "v1.2.3"
	GitCommit = "abcdef0123456"

	assert.True(t, IsRelease())
	assert.Equal(t, "v1.2.3", GetVersion())
	assert.Equal(t, "v1.2.3 (abcdef0)", GetShortVersion())

	info := GetBuildInfo()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "abcdef0123456", info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
