package agent

import (
	"context"

	"github.com/hupe1980/contentstudio/model"
	"github.com/hupe1980/contentstudio/tool"
)

// RegistryInvoker executes tools in-process against a tool.Registry.
// Used by tests and by deployments that skip the server boundary.
type RegistryInvoker struct {
	registry *tool.Registry
}

// NewRegistryInvoker wraps a registry as a ToolInvoker.
func NewRegistryInvoker(registry *tool.Registry) *RegistryInvoker {
	return &RegistryInvoker{registry: registry}
}

// ListTools implements ToolInvoker.
func (r *RegistryInvoker) ListTools(_ context.Context) ([]model.ToolDefinition, error) {
	tools := r.registry.Tools()
	defs := make([]model.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs, nil
}

// CallTool implements ToolInvoker. Failures surface as in-band error
// envelopes; the transport itself cannot fail in-process.
func (r *RegistryInvoker) CallTool(ctx context.Context, name, argsJSON string) (string, error) {
	res := r.registry.DispatchRaw(ctx, name, argsJSON)
	return res.JSON(), nil
}
