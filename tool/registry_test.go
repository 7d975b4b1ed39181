package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool() Tool {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"msg": map[string]any{"type": "string"},
		},
		"required": []string{"msg"},
	}
	return NewFunctionTool("echo", "Echo a message", params, func(_ context.Context, args map[string]any) (any, error) {
		return map[string]any{"echo": args["msg"]}, nil
	})
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(echoTool())

	res := r.Dispatch(context.Background(), "echo", map[string]any{"msg": "hi"})
	assert.False(t, res.IsError())
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "hi", res.Fields["echo"])
}

func TestRegistry_DispatchUnknownTool(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(echoTool())

	res := r.Dispatch(context.Background(), "nope", nil)
	assert.True(t, res.IsError())
	assert.Equal(t, CodeUnknownTool, res.Code)
	// Available tools are listed for the model to self-correct.
	assert.Contains(t, res.Message, "echo")
}

func TestRegistry_DispatchValidationError(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(echoTool())

	res := r.Dispatch(context.Background(), "echo", map[string]any{})
	assert.True(t, res.IsError())
	assert.Equal(t, CodeValidation, res.Code)
}

func TestRegistry_DispatchRecoversPanic(t *testing.T) {
	r := NewRegistry(nil)
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	r.Register(NewFunctionTool("panicky", "Panics", params, func(_ context.Context, _ map[string]any) (any, error) {
		panic("kaboom")
	}))

	res := r.Dispatch(context.Background(), "panicky", map[string]any{})
	assert.True(t, res.IsError())
	assert.Equal(t, CodeExecution, res.Code)
}

func TestRegistry_DispatchRaw(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(echoTool())

	res := r.DispatchRaw(context.Background(), "echo", `{"msg":"raw"}`)
	require.False(t, res.IsError())
	assert.Equal(t, "raw", res.Fields["echo"])

	res = r.DispatchRaw(context.Background(), "echo", `{not json`)
	assert.True(t, res.IsError())
	assert.Equal(t, CodeInvalidArguments, res.Code)
}

func TestRegistry_NamesPreserveOrder(t *testing.T) {
	r := NewRegistry(nil)
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	for _, name := range []string{"zeta", "alpha", "mid"} {
		n := name
		r.Register(NewFunctionTool(n, n, params, func(_ context.Context, _ map[string]any) (any, error) {
			return nil, nil
		}))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
}
