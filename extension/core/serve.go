// serve.go implements the "cachedir serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/cachedir/extension"
	"github.com/jpl-au/cachedir/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio so LLM tools can
check directories for CACHEDIR.TAG.

See 'cachedir guide serve' for the available tools.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(extension.Tools())
		},
	}
}
