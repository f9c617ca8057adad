package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an agent can search tabs,
history and bookmarks.

Tools:
  search   query, optional scope (all, tabs, history, bookmarks)
  suggest  partial input

Resources:
  quickswitch://tabs
  quickswitch://search/{scope}/{query}

By default the server speaks JSON-RPC over stdio. Use --http to serve the
streamable HTTP transport instead.

Examples:
  quickswitch mcp
  quickswitch mcp --http 127.0.0.1:8080`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().String("http", "", "serve HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("http")
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:  appServices.Search,
		Suggest: appServices.Suggest,
	}, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if addr != "" {
		cmd.PrintErrf("Serving MCP over HTTP on %s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
