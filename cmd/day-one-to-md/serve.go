// Package main provides the entry point for the day-one-to-md CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	convertermcp "github.com/MarvNC/day-one-to-md/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run day-one-to-md as a Model Context Protocol (MCP) server over stdio.

This exposes the journal conversion as MCP tools that any MCP-capable
agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "day-one-to-md": {
        "command": "day-one-to-md",
        "args": ["serve"]
      }
    }
  }

Available tools: convert, summary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := convertermcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
