package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCheckmendMCPServer creates a new MCP server with all checkmend tools
// and resources registered. The projectPath is the root directory of the
// project to audit.
func NewCheckmendMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"checkmend",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
