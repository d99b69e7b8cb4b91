// mcp.go implements the MCP tools for tag checks.
//
// Design: A failed check is returned as an MCP tool error carrying the OS
// message, so the LLM sees it was not able to look rather than a negative
// answer. Not-tagged results are ordinary JSON results.

package check

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/cachedir/extension"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/jpl-au/cachedir/tag"
	"github.com/mark3labs/mcp-go/mcp"
)

func isTaggedTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("cachedir_is_tagged",
			mcp.WithDescription("Check whether a directory is tagged as a cache directory with a valid CACHEDIR.TAG file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory to check")),
		),
		Handler: handleIsTagged,
	}
}

func stateTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("cachedir_state",
			mcp.WithDescription("Report whether CACHEDIR.TAG in a directory is present, absent or has the wrong header"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory to inspect")),
			mcp.WithBoolean("explain", mcp.Description("Include a diff between the header found and the required signature")),
		),
		Handler: handleState,
	}
}

// handleIsTagged handles cachedir_is_tagged tool calls.
func handleIsTagged(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	r := tag.Check(dir)

	l := log.Event("mcp:is_tagged", "check").Author("mcp").Path(dir)
	if r.Err != nil {
		l.Detail("kind", r.Err.Kind.String()).Write(r.Err)
		return mcp.NewToolResultError(r.Err.Error()), nil
	}
	l.Result(r.Outcome.String()).Write(nil)

	return jsonResult(resultReport(dir, r))
}

// handleState handles cachedir_state tool calls.
func handleState(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	withExplain := req.GetBool("explain", false)

	r, err := tag.Inspect(dir)

	l := log.Event("mcp:state", "inspect").Author("mcp").Path(dir)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Result(r.State.String()).Write(nil)

	return jsonResult(stateReport(dir, r, nil, withExplain))
}

// jsonResult serialises v as indented JSON in a text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
