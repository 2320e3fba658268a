package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/viktools/viktools/internal/toolbox"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the toolbox operations as tools.
type Server struct {
	toolbox *toolbox.Toolbox
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server backed by tb.
func NewServer(tb *toolbox.Toolbox) *Server {
	s := &Server{toolbox: tb}

	s.mcp = server.NewMCPServer(
		"viktools",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(encryptTool, s.handleEncrypt)
	s.mcp.AddTool(decryptTool, s.handleDecrypt)
	s.mcp.AddTool(encodeTool, s.handleEncode)
	s.mcp.AddTool(decodeTool, s.handleDecode)
	s.mcp.AddTool(hashTool, s.handleHash)
	s.mcp.AddTool(jwtEncodeTool, s.handleJWTEncode)
	s.mcp.AddTool(jwtDecodeTool, s.handleJWTDecode)
	s.mcp.AddTool(jwtVerifyTool, s.handleJWTVerify)
	s.mcp.AddTool(diagramGenerateTool, s.handleDiagramGenerate)
	s.mcp.AddTool(diagramValidateTool, s.handleDiagramValidate)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
