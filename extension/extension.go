// Package extension provides the plugin architecture for irisk. Extensions
// bundle related CLI commands and MCP tools and register at init time, so a
// new group of checks can be added without touching the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for irisk extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their first
// command runs.
type Initializable interface {
	Extension
	Init(ctx Context) error
}
