package mcpclient

import (
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func TestToDefinition(t *testing.T) {
	mcpTool := mcptypes.Tool{
		Name:        "generate_qr_code",
		Description: "Generate a QR code image",
		InputSchema: mcptypes.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"data": map[string]any{"type": "string"},
				"size": map[string]any{"type": "integer"},
			},
			Required: []string{"data"},
		},
	}

	def := toDefinition(mcpTool)
	assert.Equal(t, "function", def.Type)
	assert.Equal(t, "generate_qr_code", def.Function.Name)
	assert.Equal(t, "Generate a QR code image", def.Function.Description)
	assert.Equal(t, "object", def.Function.Parameters["type"])
	assert.Contains(t, def.Function.Parameters["properties"], "data")
	assert.Equal(t, []string{"data"}, def.Function.Parameters["required"])
}

func TestToDefinition_NoParameters(t *testing.T) {
	def := toDefinition(mcptypes.Tool{Name: "noop", InputSchema: mcptypes.ToolInputSchema{Type: "object"}})
	assert.Equal(t, map[string]any{"type": "object"}, def.Function.Parameters)
}

func TestResultText(t *testing.T) {
	res := &mcptypes.CallToolResult{
		Content: []mcptypes.Content{
			mcptypes.TextContent{Type: "text", Text: `{"status":"success"}`},
		},
	}
	assert.Equal(t, `{"status":"success"}`, resultText(res))
}

func TestResultText_FallbackToJSON(t *testing.T) {
	res := &mcptypes.CallToolResult{Content: []mcptypes.Content{}}
	assert.Equal(t, "[]", resultText(res))
}
