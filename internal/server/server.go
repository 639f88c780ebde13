// Package server exposes selwatch's single-shot inspection as MCP tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/selwatch/internal/logging"
	"github.com/mj1618/selwatch/internal/platform"
	"github.com/mj1618/selwatch/internal/probe"
	"github.com/mj1618/selwatch/internal/version"
)

// Supported transports.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int

	// Defaults for tool calls that omit the corresponding argument.
	Source     probe.Source
	Predicates []probe.PropertyPredicate
	MaxChars   int

	Logger *logging.Logger
}

// Server wraps the MCP server with the platform provider.
// Provider calls are serialized through providerMu.
type Server struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	cfg        Config
	log        *logging.Logger
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with all selwatch tools registered.
func New(provider *platform.Provider, cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logging.NopLogger()
	}
	s := &Server{
		provider: provider,
		cfg:      cfg,
		log:      log.With("component", "mcp"),
	}
	s.mcp = mcpserver.NewMCPServer("selwatch", version.Version)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve starts the server on the configured transport and blocks.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "", TransportStdio:
		s.log.Info("serving", "transport", TransportStdio)
		return mcpserver.ServeStdio(s.mcp)
	case TransportStreamableHTTP:
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		s.log.Info("serving", "transport", TransportStreamableHTTP, "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("inspect_text",
			mcp.WithDescription("Resolve the focused element (or the element under the mouse pointer), find the first element in its subtree that satisfies a capability condition, and return its selected text ranges and caret text."),
			mcp.WithString("source", mcp.Description("Element source: focus or pointer"), mcp.Enum("focus", "pointer")),
			mcp.WithString("preset", mcp.Description("Named condition preset (see list_presets)")),
			mcp.WithString("require", mcp.Description("Comma-separated name=bool predicates; replaces the preset when set")),
			mcp.WithNumber("max_chars", mcp.Description("Maximum characters read per text range")),
		),
		s.handleInspectText,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_presets",
			mcp.WithDescription("List the named capability conditions accepted by inspect_text"),
		),
		s.handleListPresets,
	)
}
