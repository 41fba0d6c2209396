package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchDocsTool defines the search_docs MCP tool.
var searchDocsTool = mcp.NewTool("search_docs",
	mcp.WithDescription("Search the Agentium SDK documentation. Matches the query literally against titles, previews, sections and keywords."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for, e.g. a method name or a chain id"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default and maximum 8)"),
	),
	mcp.WithString("section",
		mcp.Description("Optional glob over section ids, e.g. 'api-*'"),
	),
)

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the documentation sections in reading order."),
)

// getEntryTool defines the get_entry MCP tool.
var getEntryTool = mcp.NewTool("get_entry",
	mcp.WithDescription("Get one documentation entry by the id returned from search_docs."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Entry id"),
	),
)
