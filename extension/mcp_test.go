package extension

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestArgHelpers(t *testing.T) {
	req := request(map[string]any{
		"s":   "text",
		"b":   true,
		"n":   float64(42.9),
		"obj": map[string]any{"age": float64(50)},
		"bad": "not-a-number",
	})

	assert.Equal(t, "text", ArgString(req, "s", "def"))
	assert.Equal(t, "def", ArgString(req, "missing", "def"))
	assert.True(t, ArgBool(req, "b", false))
	assert.False(t, ArgBool(req, "s", false), "string is not a bool")
	assert.InDelta(t, 42.9, ArgFloat(req, "n", 0), 1e-9)
	assert.Equal(t, 42, ArgInt(req, "n", 0))
	assert.Equal(t, 7, ArgInt(req, "bad", 7))
	assert.Equal(t, map[string]any{"age": float64(50)}, ArgObject(req, "obj"))
	assert.Nil(t, ArgObject(req, "missing"))
}

func TestArgHelpers_NoArguments(t *testing.T) {
	var req mcp.CallToolRequest

	assert.Equal(t, "d", ArgString(req, "s", "d"))
	assert.True(t, ArgBool(req, "b", true))
	assert.Equal(t, 3, ArgInt(req, "n", 3))
	assert.Nil(t, ArgObject(req, "obj"))
}

func TestJSONResult(t *testing.T) {
	res, err := JSONResult(map[string]int{"length": 6})

	assert.NoError(t, err)
	assert.False(t, res.IsError)
	tc, ok := res.Content[0].(mcp.TextContent)
	assert.True(t, ok)
	assert.Contains(t, tc.Text, `"length": 6`)
}
