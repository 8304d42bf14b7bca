// mcp.go defines types for MCP tool registration by extensions, plus the
// argument helpers their handlers share.
//
// MCPTool pairs the tool definition with its handler. The handler receives
// the Go context for cancellation and the extension Context for config.
//
// Argument extraction is permissive: a missing or mistyped optional argument
// yields the caller's default instead of a tool failure. Required arguments
// are declared on the tool and checked by the handler with the Require*
// helpers of mcp-go.

package extension

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ArgString returns a string argument, or def when missing or not a string.
func ArgString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// ArgBool returns a boolean argument, or def when missing or not a boolean.
func ArgBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// ArgFloat returns a numeric argument, or def when missing or not a number.
// JSON numbers always decode as float64.
func ArgFloat(req mcp.CallToolRequest, name string, def float64) float64 {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return v
	}
	return def
}

// ArgInt returns a numeric argument truncated to int, or def.
func ArgInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// ArgObject returns an object argument as a map, or nil when missing.
func ArgObject(req mcp.CallToolRequest, name string) map[string]any {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	obj, _ := args[name].(map[string]any)
	return obj
}

// JSONResult serialises v as indented JSON in a text result. Marshal
// failures become tool errors so every failure reaches the client the
// same way.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
