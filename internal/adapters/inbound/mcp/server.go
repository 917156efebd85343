package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with all SEOKraft tools and resources
// registered. contentPath is the content directory validated by the
// path-relative tools.
func NewServer(contentPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"seokraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, contentPath)
	registerResources(s, contentPath)

	return s
}
