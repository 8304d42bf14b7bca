// tools.go implements the irisk_cat MCP tool.

package strl

import (
	"context"

	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func catTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("irisk_cat",
			mcp.WithDescription("Append src onto dst in a fixed-size buffer, truncating src if it does not fit. Returns the buffer content and the length the result would have had without the bound"),
			mcp.WithString("dst", mcp.Required(), mcp.Description("Initial buffer content")),
			mcp.WithString("src", mcp.Required(), mcp.Description("Text to append")),
			mcp.WithNumber("size", mcp.Required(), mcp.Description("Buffer capacity in bytes, terminator included")),
			mcp.WithBoolean("diff", mcp.Description("Include an inline diff of what was dropped")),
		),
		Handler: handleCat,
	}
}

func handleCat(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dst, err := req.RequireString("dst")
	if err != nil {
		return mcp.NewToolResultError("dst is required"), nil //nolint:nilerr
	}
	src, err := req.RequireString("src")
	if err != nil {
		return mcp.NewToolResultError("src is required"), nil //nolint:nilerr
	}
	size, err := req.RequireInt("size")
	if err != nil {
		return mcp.NewToolResultError("size is required"), nil //nolint:nilerr
	}

	l := log.Event("mcp:irisk_cat", "append").Author("mcp")

	r, err := Cat(dst, src, size)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if extension.ArgBool(req, "diff", false) {
		r.Diff = Diff(dst, src, r).Format(false)
	}

	l.Detail("length", r.Length).Detail("truncated", r.Truncated).Write(nil)

	if r.Truncated {
		if err := extension.Dispatch(extCtx, event("mcp", r)); err != nil {
			return nil, err
		}
	}
	return extension.JSONResult(r)
}
