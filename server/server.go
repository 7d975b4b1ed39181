// Package server exposes the tool registry over the Model Context Protocol
// on stdio. Every registered tool becomes an MCP tool; handlers funnel
// through the registry dispatcher so the result envelope is identical to
// in-process execution.
package server

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hupe1980/contentstudio/logging"
	"github.com/hupe1980/contentstudio/tool"
)

// Name and Version identify the server during the MCP handshake.
const (
	Name    = "ContentStudio"
	Version = "1.0.0"
)

// Options configure the stdio server.
type Options struct {
	Logger logging.Logger
}

// Server wraps an MCP stdio server around a tool registry.
type Server struct {
	mcp      *mcpserver.MCPServer
	registry *tool.Registry
	logger   logging.Logger
}

// New builds a server with all registry tools registered.
func New(registry *tool.Registry, optFns ...func(o *Options)) *Server {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	s := &Server{
		mcp: mcpserver.NewMCPServer(Name, Version,
			mcpserver.WithToolCapabilities(false),
		),
		registry: registry,
		logger:   opts.Logger,
	}

	for _, t := range registry.Tools() {
		s.mcp.AddTool(toMCPTool(t), s.handler(t.Name()))
	}

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout until the
// client disconnects or the process is signalled.
func (s *Server) ServeStdio() error {
	s.logger.Info("server.start", "name", Name, "version", Version, "tools", len(s.registry.Names()))
	if err := mcpserver.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// handler adapts registry dispatch to the MCP tool handler signature.
// Tool failures stay in-band as error envelopes; the handler itself only
// errors on protocol-level problems.
func (s *Server) handler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
		res := s.registry.Dispatch(ctx, name, req.GetArguments())
		return mcptypes.NewToolResultText(res.JSON()), nil
	}
}

// toMCPTool converts a registry tool and its JSON schema into the MCP
// tool declaration.
func toMCPTool(t tool.Tool) mcptypes.Tool {
	params := t.Parameters()

	schema := mcptypes.ToolInputSchema{Type: "object"}
	if props, ok := params["properties"].(map[string]any); ok {
		schema.Properties = props
	}
	switch req := params["required"].(type) {
	case []string:
		schema.Required = req
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}

	return mcptypes.Tool{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: schema,
	}
}
