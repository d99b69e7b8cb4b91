// Package extension provides the plugin architecture for cachedir. Extensions
// group related CLI commands and MCP tools and register at init time, so new
// command groups can be added without touching the root command.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for cachedir extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Tools returns the MCP tools of every registered extension, in
// registration order.
func Tools() []MCPTool {
	var tools []MCPTool
	for _, ext := range All() {
		tools = append(tools, ext.MCPTools()...)
	}
	return tools
}
