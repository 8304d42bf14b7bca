// serve.go implements the "irisk serve" command.
//
// Unlike other commands, serve blocks until the MCP client disconnects.

package core

import (
	"github.com/jpl-au/irisk/cmd"
	"github.com/jpl-au/irisk/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Every check available on the command line is exposed as a tool:
irisk_is_boolean, irisk_in_range, irisk_cat, irisk_qkidney_validate,
irisk_guide and irisk_config_get.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.Context())
		},
	}
}
