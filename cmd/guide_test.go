package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# irisk")
		env.contains(out, "## Commands")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nonexistent")
		assert.Error(t, err)
		env.contains(out, "Available:")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"bool", "irisk bool"},
		{"range", "irisk range"},
		{"cat", "irisk cat"},
		{"qkidney", "irisk qkidney"},
		{"config", "irisk config"},
		{"serve", "irisk serve"},
	}

	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}

func TestGuide_JSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runStdout("guide", "cat", "-o", "json")
	require.NoError(t, err)

	var g map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Equal(t, "cat", g["topic"])
	assert.Contains(t, g["content"], "irisk cat")
}
