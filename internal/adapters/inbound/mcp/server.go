package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewModgenMCPServer creates a new MCP server with all modgen tools
// registered. The projectPath is the root directory holding .modgen.yaml
// and the output root.
func NewModgenMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"modgen",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
