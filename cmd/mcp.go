package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/semiotic-labs/agentium-docs/internal/mcp"
	"github.com/semiotic-labs/agentium-docs/internal/search"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the documentation search tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := search.MustDefault()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "agentium-docs MCP server started on stdio (entries=%d, sections=%d)\n", idx.Len(), len(idx.Sections()))

		srv := mcpserver.NewServer(idx)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
