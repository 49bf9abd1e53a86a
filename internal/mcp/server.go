// Package mcp provides a Model Context Protocol server for day-one-to-md.
// It exposes the journal conversion as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/MarvNC/day-one-to-md/internal/export"
)

// NewServer creates an MCP server with all conversion tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    export.AppName,
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// Conversions read the export file and keep nothing, so every tool here
// is read-only and idempotent.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all conversion tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "convert",
		Description: "Convert a Day One journal export (.zip or .json) into a single " +
			"chronologically ordered markdown document. Returns the document plus a summary.",
		Annotations: readOnlyAnnotations(),
	}, handleConvert())

	mcp.AddTool(server, &mcp.Tool{
		Name: "summary",
		Description: "Inspect a Day One journal export (.zip or .json) without producing " +
			"the document: entry count plus first and last entry timestamps.",
		Annotations: readOnlyAnnotations(),
	}, handleSummary())
}
