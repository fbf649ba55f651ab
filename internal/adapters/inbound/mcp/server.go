package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/codeshift/internal/application"
)

const serverVersion = "0.1.0"

// NewCodeshiftMCPServer creates an MCP server exposing conversion, fixing,
// detection and test simulation as tools, and the language, pair, rule and
// scaffold catalogs as resources.
func NewCodeshiftMCPServer(conversions *application.ConversionService, tests *application.TestService) *server.MCPServer {
	s := server.NewMCPServer(
		"codeshift",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, conversions, tests)
	registerResources(s, conversions)

	return s
}
