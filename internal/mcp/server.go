// Package mcp implements the Model Context Protocol server, exposing irisk
// checks to LLMs. Tools come from the registered extensions; the server
// only owns transport and lifecycle.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/irisk/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
// Blocks until the client disconnects or the process is interrupted.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)

	slog.Info("irisk MCP server ready", "version", Version, "transport", "stdio", "tools", len(extension.Tools()))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds an MCP server with every registered extension tool.
func NewServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		"irisk",
		Version,
		server.WithToolCapabilities(true),
	)
	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, bind(extCtx, t))
	}
	return s
}

// bind adapts an extension handler to the server's handler signature.
// Handler errors are logged and returned as tool errors so one failing
// call never tears down the session.
func bind(extCtx extension.Context, t extension.MCPTool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := t.Handler(ctx, extCtx, req)
		if err != nil {
			slog.Error("tool failed", "tool", t.Tool.Name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return res, nil
	}
}
