// tools.go implements the core MCP tools: guide and config lookup.
//
// There is no config set tool. Changing limits or the NaN policy under a
// running server is left to the user at the command line.

package core

import (
	"context"
	"fmt"

	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/guide"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func guideTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("irisk_guide",
			mcp.WithDescription("Get help/guide content for irisk commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'cat', 'qkidney') or empty for the main guide")),
		),
		Handler: handleGuide,
	}
}

func handleGuide(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.ArgString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:irisk_guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}

func configGetTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("irisk_config_get",
			mcp.WithDescription("Get a configuration value, or all values when key is empty"),
			mcp.WithString("key", mcp.Description("Config key (author.name, author.email, limits.error_buffer, checks.reject_nan)")),
		),
		Handler: handleConfigGet,
	}
}

// handleConfigGet reads from the context config, which is the config the
// server started with.
func handleConfigGet(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()

	key := extension.ArgString(req, "key", "")
	if key == "" {
		log.Event("mcp:irisk_config_get", "list").Author("mcp").Write(nil)
		return extension.JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:irisk_config_get", "get").Author("mcp").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(map[string]string{key: v})
}
