package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/semiotic-labs/agentium-docs/internal/search"
)

// handleSearchDocs runs a ranked search over the documentation catalog.
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results, err := search.FilterSections(s.index.Search(query), request.GetString("section", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit := request.GetInt("limit", search.MaxResults); limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No documentation matches %q.", query)), nil
	}

	return mcp.NewToolResultText(formatEntries(results)), nil
}

// handleListSections returns the section names, one per line.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, sec := range s.index.Sections() {
		sb.WriteString("- ")
		sb.WriteString(sec)
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	e, ok := s.index.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no entry with id %q", id)), nil
	}
	return mcp.NewToolResultText(formatEntries([]search.SearchEntry{e})), nil
}

// formatEntries converts entries into a text format suited to AI agents.
func formatEntries(entries []search.SearchEntry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(entries)))

	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("ID: %s\n", e.ID))
		sb.WriteString(fmt.Sprintf("Title: %s\n", e.Title))
		sb.WriteString(fmt.Sprintf("Type: %s\n", e.Type))
		sb.WriteString(fmt.Sprintf("Section: %s (#%s)\n", e.Section, e.SectionID))
		if len(e.Keywords) > 0 {
			sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(e.Keywords, ", ")))
		}
		sb.WriteString("\n")
		sb.WriteString(e.Preview)
		sb.WriteString("\n")
	}

	return sb.String()
}
