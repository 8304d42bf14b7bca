package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.BuildTag)
	assert.Equal(t, QKidney, info.QKidney)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.Platform, runtime.GOOS)
}

func TestInfo_String(t *testing.T) {
	s := Info{BuildTag: "v1.2.3", QKidney: QKidney, GitCommit: "abc123"}.String()

	assert.Contains(t, s, "Build Tag:    v1.2.3\n")
	assert.Contains(t, s, "QKidney:      QKidney-2010\n")
	assert.Contains(t, s, "Git Commit:   abc123\n")
}
