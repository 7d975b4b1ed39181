package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/contentstudio/core"
	"github.com/hupe1980/contentstudio/model"
	"github.com/hupe1980/contentstudio/session"
	"github.com/hupe1980/contentstudio/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoRegistry() *tool.Registry {
	r := tool.NewRegistry(nil)
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"msg": map[string]any{"type": "string"},
		},
		"required": []string{"msg"},
	}
	r.Register(tool.NewFunctionTool("echo", "Echo a message", params, func(_ context.Context, args map[string]any) (any, error) {
		return map[string]any{"echo": args["msg"]}, nil
	}))
	return r
}

func TestAgent_PlainTextTurn(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("hello", "hi, how can I help?")

	a := New(llm, NewRegistryInvoker(echoRegistry()))

	reply, err := a.ProcessQuery(context.Background(), "s1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi, how can I help?", reply)

	// Tool definitions are offered to the model on every round.
	require.Len(t, llm.Requests, 1)
	require.Len(t, llm.Requests[0].Tools, 1)
	assert.Equal(t, "echo", llm.Requests[0].Tools[0].Function.Name)
}

func TestAgent_ToolCallRoundTrip(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.Script(model.Response{
		Content: core.Content{
			Role: "assistant",
			Parts: []core.Part{
				core.FunctionCallPart{FunctionCall: core.FunctionCall{
					ID:        "call-1",
					Name:      "echo",
					Arguments: `{"msg":"ping"}`,
				}},
			},
		},
		FinishReason: "tool_calls",
	})
	llm.Script(model.Response{
		Content: core.Content{
			Role:  "assistant",
			Parts: []core.Part{core.TextPart{Text: "the tool said ping"}},
		},
		FinishReason: "stop",
	})

	store := session.NewInMemoryStore()
	a := New(llm, NewRegistryInvoker(echoRegistry()), func(o *Options) {
		o.Store = store
	})

	reply, err := a.ProcessQuery(context.Background(), "s1", "run echo")
	require.NoError(t, err)
	assert.Equal(t, "the tool said ping", reply)

	// user, assistant(tool call), tool result, assistant(final)
	sess, err := store.Get("s1")
	require.NoError(t, err)
	require.Len(t, sess.Contents, 4)
	assert.Equal(t, "tool", sess.Contents[2].Role)

	fr, ok := sess.Contents[2].Parts[0].(core.FunctionResponsePart)
	require.True(t, ok)
	assert.Equal(t, "call-1", fr.FunctionResponse.ID)
	assert.Contains(t, fr.FunctionResponse.Response, `"echo":"ping"`)
	assert.Contains(t, fr.FunctionResponse.Response, `"status":"success"`)
}

func TestAgent_UnknownToolSurfacesInBand(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.Script(model.Response{
		Content: core.Content{
			Role: "assistant",
			Parts: []core.Part{
				core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: "c1", Name: "nope", Arguments: "{}"}},
			},
		},
		FinishReason: "tool_calls",
	})
	llm.Script(model.Response{
		Content:      core.Content{Role: "assistant", Parts: []core.Part{core.TextPart{Text: "done"}}},
		FinishReason: "stop",
	})

	store := session.NewInMemoryStore()
	a := New(llm, NewRegistryInvoker(echoRegistry()), func(o *Options) {
		o.Store = store
	})

	reply, err := a.ProcessQuery(context.Background(), "s1", "call something odd")
	require.NoError(t, err)
	assert.Equal(t, "done", reply)

	sess, _ := store.Get("s1")
	fr := sess.Contents[2].Parts[0].(core.FunctionResponsePart)
	assert.Contains(t, fr.FunctionResponse.Response, "UNKNOWN_TOOL")
}

func TestAgent_MaxIterations(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	// Every round asks for another tool call; the loop must give up.
	for i := 0; i < 5; i++ {
		llm.Script(model.Response{
			Content: core.Content{
				Role: "assistant",
				Parts: []core.Part{
					core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: "c", Name: "echo", Arguments: `{"msg":"again"}`}},
				},
			},
			FinishReason: "tool_calls",
		})
	}

	a := New(llm, NewRegistryInvoker(echoRegistry()), func(o *Options) {
		o.MaxIterations = 3
	})

	reply, err := a.ProcessQuery(context.Background(), "s1", "loop forever")
	require.NoError(t, err)
	assert.Contains(t, reply, "allowed number of steps")
	assert.Len(t, llm.Requests, 3)
}

// failingModel always errors with a fixed message.
type failingModel struct{ err error }

func (f *failingModel) Generate(context.Context, model.Request) (*model.Response, error) {
	return nil, f.err
}
func (f *failingModel) Info() model.Info { return model.Info{Name: "failing", Provider: "test"} }

func TestAgent_ModelErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"quota", errors.New("openai api error: insufficient_quota"), "quota has been exhausted"},
		{"invalid key", errors.New("anthropic api error: invalid_api_key"), "appears to be invalid"},
		{"generic", errors.New("something odd"), "error talking to the model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(&failingModel{err: tt.err}, NewRegistryInvoker(echoRegistry()))
			reply, err := a.ProcessQuery(context.Background(), "s1", "hi")
			require.NoError(t, err)
			assert.Contains(t, reply, tt.want)
		})
	}
}

func TestClassifyModelError_RateLimit(t *testing.T) {
	msg := classifyModelError(errors.New("429 rate_limit exceeded"))
	assert.Contains(t, msg, "rate limit")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(errors.New("rate limit exceeded")))
	assert.True(t, isRetryable(errors.New("connection reset")))
	assert.False(t, isRetryable(errors.New("invalid_api_key")))
}
