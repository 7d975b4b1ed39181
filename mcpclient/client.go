// Package mcpclient connects the agent to a ContentStudio server over
// stdio. It spawns the server process, performs the MCP handshake and
// adapts discovered tools to model tool definitions.
package mcpclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"github.com/hupe1980/contentstudio/logging"
	"github.com/hupe1980/contentstudio/model"
)

const protocolVersion = "2025-06-18"

// Options configure the stdio client.
type Options struct {
	Env    []string
	Logger logging.Logger
}

// Client drives a ContentStudio server over stdio and implements the
// agent's ToolInvoker.
type Client struct {
	mcp    *client.Client
	logger logging.Logger
	tools  []mcptypes.Tool
}

// Connect spawns the server command, initializes the MCP session and
// discovers the available tools.
func Connect(ctx context.Context, command string, args []string, optFns ...func(o *Options)) (*Client, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	mcpClient, err := client.NewStdioMCPClient(command, opts.Env, args...)
	if err != nil {
		return nil, fmt.Errorf("spawn server %q: %w", command, err)
	}

	initReq := mcptypes.InitializeRequest{
		Params: mcptypes.InitializeParams{
			ProtocolVersion: protocolVersion,
			Capabilities:    mcptypes.ClientCapabilities{},
			ClientInfo: mcptypes.Implementation{
				Name:    "contentstudio-chat",
				Version: "1.0.0",
			},
		},
	}
	initRes, err := mcpClient.Initialize(ctx, initReq)
	if err != nil {
		mcpClient.Close()
		return nil, fmt.Errorf("initialize mcp session: %w", err)
	}

	toolsRes, err := mcpClient.ListTools(ctx, mcptypes.ListToolsRequest{})
	if err != nil {
		mcpClient.Close()
		return nil, fmt.Errorf("list tools: %w", err)
	}

	opts.Logger.Info("mcpclient.connected",
		"server", initRes.ServerInfo.Name,
		"version", initRes.ServerInfo.Version,
		"tools", len(toolsRes.Tools),
	)

	return &Client{
		mcp:    mcpClient,
		logger: opts.Logger,
		tools:  toolsRes.Tools,
	}, nil
}

// Close shuts down the session and the server process.
func (c *Client) Close() error {
	return c.mcp.Close()
}

// ListTools implements agent.ToolInvoker using the tool list captured
// during the handshake.
func (c *Client) ListTools(_ context.Context) ([]model.ToolDefinition, error) {
	defs := make([]model.ToolDefinition, 0, len(c.tools))
	for _, t := range c.tools {
		defs = append(defs, toDefinition(t))
	}
	return defs, nil
}

// CallTool implements agent.ToolInvoker. The returned string is the text
// content of the tool result, which for ContentStudio servers is the
// result envelope JSON.
func (c *Client) CallTool(ctx context.Context, name, argsJSON string) (string, error) {
	var args map[string]any
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
			return "", fmt.Errorf("decode arguments for %s: %w", name, err)
		}
	}

	res, err := c.mcp.CallTool(ctx, mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	})
	if err != nil {
		return "", fmt.Errorf("call tool %s: %w", name, err)
	}

	return resultText(res), nil
}

// resultText extracts the first text content block, falling back to a
// JSON rendering of the whole content list.
func resultText(res *mcptypes.CallToolResult) string {
	for _, content := range res.Content {
		if tc, ok := content.(mcptypes.TextContent); ok {
			return tc.Text
		}
	}
	if raw, err := json.Marshal(res.Content); err == nil {
		return string(raw)
	}
	return ""
}

// toDefinition converts an MCP tool declaration to a model tool definition.
func toDefinition(t mcptypes.Tool) model.ToolDefinition {
	params := map[string]any{"type": "object"}
	if t.InputSchema.Properties != nil {
		params["properties"] = t.InputSchema.Properties
	}
	if len(t.InputSchema.Required) > 0 {
		params["required"] = t.InputSchema.Required
	}

	return model.ToolDefinition{
		Type: "function",
		Function: model.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		},
	}
}
