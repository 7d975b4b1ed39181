package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/contentstudio/logging"
)

// Registry maps tool names to handlers and centralizes dispatch: lookup,
// argument decoding, panic containment and result formatting. A failed tool
// call always produces an error Result; it never terminates the process.
type Registry struct {
	tools  map[string]Tool
	order  []string // registration order, used for stable listings
	logger logging.Logger
}

// NewRegistry constructs an empty registry. A nil logger disables logging.
func NewRegistry(logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Registry{tools: make(map[string]Tool), logger: logger}
}

// Register adds a tool, replacing any previous registration under the same name.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Dispatch resolves name to a handler and invokes it with the given
// arguments. Unknown names, validation failures, handler errors and panics
// all come back as error Results carrying the failure taxonomy code.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (res Result) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tool.dispatch.panic", "tool", name, "recover", rec)
			res = Error(CodeExecution, fmt.Sprintf("tool %s panicked: %v", name, rec))
		}
	}()

	impl, ok := r.tools[name]
	if !ok {
		r.logger.Warn("tool.dispatch.unknown", "tool", name)
		return Error(CodeUnknownTool, fmt.Sprintf("unknown tool %q; available tools: %v", name, r.sortedNames()))
	}

	r.logger.Debug("tool.dispatch.start", "tool", name)

	if args == nil {
		args = map[string]any{}
	}

	result, err := impl.Call(ctx, args)
	if err != nil {
		r.logger.Error("tool.dispatch.error", "tool", name, "error", err.Error(), "duration_ms", time.Since(start).Milliseconds())
		if toolErr, ok := err.(*ToolError); ok {
			return Error(toolErr.Code, toolErr.Message)
		}
		return Error(CodeExecution, err.Error())
	}

	r.logger.Info("tool.dispatch.success", "tool", name, "duration_ms", time.Since(start).Milliseconds())

	fields, ok := result.(map[string]any)
	if !ok {
		fields = map[string]any{"result": result}
	}
	return Success(fields)
}

// DispatchRaw decodes a serialized JSON argument payload (as produced by
// model function calls) and dispatches it. An empty payload means no
// arguments; a malformed one yields an INVALID_ARGUMENTS error Result.
func (r *Registry) DispatchRaw(ctx context.Context, name, rawArgs string) Result {
	argMap := map[string]any{}
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &argMap); err != nil {
			r.logger.Warn("tool.dispatch.bad_args", "tool", name, "error", err.Error())
			return Error(CodeInvalidArguments, fmt.Sprintf("failed to decode arguments for %s: %v", name, err))
		}
	}
	return r.Dispatch(ctx, name, argMap)
}

func (r *Registry) sortedNames() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}
