// Package mcp implements the Model Context Protocol server, exposing
// cachedir checks to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/cachedir/extension"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio with the given extension tools
// plus the built-in guide tool and resources.
func Serve(tools []extension.MCPTool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(tools)

	slog.Info("cachedir MCP server ready", "version", Version, "transport", "stdio", "tools", len(tools)+1)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server without starting a transport.
func NewServer(tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"cachedir",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	for _, t := range tools {
		s.AddTool(t.Tool, server.ToolHandlerFunc(t.Handler))
	}
	registerGuide(s)

	return s
}
