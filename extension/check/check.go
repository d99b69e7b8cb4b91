// Package check provides the check extension for cachedir.
// It registers commands: is-tagged, state; and the matching MCP tools.
package check

import (
	"github.com/jpl-au/cachedir/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Commands returns the tag checking commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newIsTaggedCmd(),
		newStateCmd(),
	}
}

// MCPTools exposes the same checks to MCP clients.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		isTaggedTool(),
		stateTool(),
	}
}
