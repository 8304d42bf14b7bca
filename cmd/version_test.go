package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:    dev")
	env.contains(out, "QKidney:      QKidney-2010")
}

func TestVersion_JSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runStdout("version", "-o", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["build_tag"])
	assert.NotEmpty(t, info["go_version"])
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("bool", "1", "-o", "yaml")
	assert.Error(t, err)
	env.contains(out, "invalid output format")
}
