package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/semiotic-labs/agentium-docs/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the documentation search tools.
type Server struct {
	index *search.Index
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over idx.
func NewServer(idx *search.Index) *Server {
	s := &Server{index: idx}

	s.mcp = server.NewMCPServer(
		"agentium-docs",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool, s.handleSearchDocs)
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getEntryTool, s.handleGetEntry)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
