package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/contentstudio/core"
	"github.com/hupe1980/contentstudio/logging"
	"github.com/hupe1980/contentstudio/model"
	"github.com/hupe1980/contentstudio/session"
)

// DefaultSystemPrompt instructs the model to lean on the registered tools.
const DefaultSystemPrompt = "You are a helpful content creation assistant. " +
	"Use the available tools to generate thumbnails, QR codes, social media cards, " +
	"video montages and speech audio when the user asks for them. " +
	"When a tool returns an error, explain it to the user and suggest a fix. " +
	"Always report the output path of generated files."

// DefaultMaxIterations bounds model rounds within a single user turn.
const DefaultMaxIterations = 10

// ToolInvoker abstracts where tools actually run. The agent loop is the
// same whether they execute in-process or behind a stdio server.
type ToolInvoker interface {
	// ListTools returns the definitions of every available tool.
	ListTools(ctx context.Context) ([]model.ToolDefinition, error)

	// CallTool executes a named tool with JSON-encoded arguments and
	// returns the serialized result envelope. Transport failures are
	// returned as errors; tool-level failures arrive in-band as error
	// envelopes.
	CallTool(ctx context.Context, name, argsJSON string) (string, error)
}

// Options configure an Agent instance.
type Options struct {
	SystemPrompt  string
	MaxIterations int
	Store         session.Store
	Logger        logging.Logger
}

// Agent drives the multi-turn conversation: one user turn triggers up to
// MaxIterations model rounds, each round either producing a final text
// answer or tool calls that are executed sequentially.
type Agent struct {
	llm           model.Model
	invoker       ToolInvoker
	store         session.Store
	logger        logging.Logger
	systemPrompt  string
	maxIterations int

	tools []model.ToolDefinition // cached after first discovery
}

// New creates an agent with sensible defaults.
func New(llm model.Model, invoker ToolInvoker, optFns ...func(o *Options)) *Agent {
	opts := Options{
		SystemPrompt:  DefaultSystemPrompt,
		MaxIterations: DefaultMaxIterations,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultMaxIterations
	}

	return &Agent{
		llm:           llm,
		invoker:       invoker,
		store:         opts.Store,
		logger:        opts.Logger,
		systemPrompt:  opts.SystemPrompt,
		maxIterations: opts.MaxIterations,
	}
}

// ProcessQuery runs one user turn to completion and returns the final
// assistant text. Model transport failures are classified into
// user-facing messages so a single bad round never kills the session.
func (a *Agent) ProcessQuery(ctx context.Context, sessionID, query string) (string, error) {
	if err := a.store.Append(sessionID, core.NewUserText(query)); err != nil {
		return "", fmt.Errorf("append user turn: %w", err)
	}

	tools, err := a.toolDefinitions(ctx)
	if err != nil {
		return "", fmt.Errorf("discover tools: %w", err)
	}

	for i := 0; i < a.maxIterations; i++ {
		sess, err := a.store.Get(sessionID)
		if err != nil {
			return "", fmt.Errorf("load session: %w", err)
		}

		req := model.Request{
			Contents: append([]core.Content{core.NewSystemText(a.systemPrompt)}, sess.Contents...),
			Tools:    tools,
		}

		a.logger.Debug("agent.round.start", "session", sessionID, "round", i+1)
		start := time.Now()
		resp, err := a.generateWithRetry(ctx, req)
		if err != nil {
			a.logger.Error("agent.round.error", "session", sessionID, "round", i+1, "error", err)
			return classifyModelError(err), nil
		}
		a.logger.Debug("agent.round.done",
			"session", sessionID,
			"round", i+1,
			"duration_ms", time.Since(start).Milliseconds(),
			"finish_reason", resp.FinishReason,
		)

		if err := a.store.Append(sessionID, resp.Content); err != nil {
			return "", fmt.Errorf("append assistant turn: %w", err)
		}

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			return resp.Content.Text(), nil
		}

		// Tools run strictly one at a time, each result recorded before
		// the next model round sees it.
		for _, fc := range calls {
			result := a.executeTool(ctx, fc)
			toolContent := core.Content{
				Role: "tool",
				Parts: []core.Part{core.FunctionResponsePart{FunctionResponse: core.FunctionResponse{
					ID:       fc.ID,
					Name:     fc.Name,
					Response: result,
				}}},
			}
			if err := a.store.Append(sessionID, toolContent); err != nil {
				return "", fmt.Errorf("append tool result: %w", err)
			}
		}
	}

	return "I wasn't able to complete the request within the allowed number of steps. Please try rephrasing or splitting it up.", nil
}

// toolDefinitions discovers tools once and caches them for the agent's lifetime.
func (a *Agent) toolDefinitions(ctx context.Context) ([]model.ToolDefinition, error) {
	if a.tools != nil {
		return a.tools, nil
	}
	tools, err := a.invoker.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	a.tools = tools
	a.logger.Info("agent.tools.discovered", "count", len(tools))
	return tools, nil
}

// generateWithRetry allows a single retry for transient transport errors.
func (a *Agent) generateWithRetry(ctx context.Context, req model.Request) (*model.Response, error) {
	resp, err := a.llm.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}
	if !isRetryable(err) {
		return nil, err
	}
	a.logger.Warn("agent.round.retry", "error", err)
	return a.llm.Generate(ctx, req)
}

// executeTool calls a single tool and always returns a serialized result,
// converting transport failures into in-band error envelopes so the model
// can react to them.
func (a *Agent) executeTool(ctx context.Context, fc core.FunctionCall) string {
	args := fc.Arguments
	if args == "" {
		args = "{}"
	}

	a.logger.Info("agent.tool.start", "tool", fc.Name, "call_id", fc.ID)
	start := time.Now()
	result, err := a.invoker.CallTool(ctx, fc.Name, args)
	dur := time.Since(start).Milliseconds()
	if err != nil {
		a.logger.Error("agent.tool.error", "tool", fc.Name, "duration_ms", dur, "error", err)
		return fmt.Sprintf(`{"status":"error","code":"EXECUTION_ERROR","message":%q}`,
			fmt.Sprintf("tool transport failure: %v", err))
	}
	a.logger.Info("agent.tool.done", "tool", fc.Name, "duration_ms", dur)
	return result
}

// isRetryable reports whether a model error is worth one more attempt.
func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection")
}

// classifyModelError maps provider failures to user-facing messages.
func classifyModelError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient_quota") || strings.Contains(msg, "quota"):
		return "The API quota has been exhausted. Please check your plan and billing details."
	case strings.Contains(msg, "rate_limit") || strings.Contains(msg, "rate limit"):
		return "The API rate limit was hit. Please wait a moment and try again."
	case strings.Contains(msg, "invalid_api_key") || strings.Contains(msg, "incorrect api key"):
		return "The API key appears to be invalid. Please check your credentials."
	default:
		return fmt.Sprintf("Sorry, I hit an error talking to the model: %v", err)
	}
}
