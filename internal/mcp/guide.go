// guide.go exposes the embedded guide pages as an MCP tool and as
// resources, so clients can load documentation either way.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/cachedir/guide"
	"github.com/jpl-au/cachedir/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrInvalidURI indicates a malformed guide resource URI.
var ErrInvalidURI = errors.New("invalid URI")

const guidePrefix = "cachedir://guide/"

func registerGuide(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("cachedir_guide",
			mcp.WithDescription("Read the cachedir guide. Omit topic for the main page; unknown topics list the available ones."),
			mcp.WithString("topic", mcp.Description("Guide topic, e.g. format, is-tagged, config, serve")),
		),
		getGuide,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guidePrefix+"{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read a cachedir guide page"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		readGuide,
	)
}

// getGuide handles cachedir_guide tool calls.
func getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := ""
	if v, err := req.RequireString("topic"); err == nil {
		topic = v
	}

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		data, _ := json.MarshalIndent(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}

	return mcp.NewToolResultText(content), nil
}

// readGuide handles cachedir://guide/{topic} resource requests.
func readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	topic, err := parseGuideURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	log.Event("mcp:guide", "read").Author("mcp").Detail("topic", topic).Write(err)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from cachedir://guide/{topic}.
func parseGuideURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, guidePrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	topic := strings.TrimPrefix(uri, guidePrefix)
	if topic == "" || strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return topic, nil
}
