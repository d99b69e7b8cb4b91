// Package core provides the core extension for cachedir.
// It registers commands: version, config, guide, serve.
package core

import (
	"github.com/jpl-au/cachedir/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core" - this extension provides the supporting commands.
func (e *Extension) Name() string { return "core" }

// Commands returns the supporting CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The guide tool is registered by the MCP server
// itself because it does not depend on any extension.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
