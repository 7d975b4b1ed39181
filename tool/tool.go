// Package tool implements the function / tool calling subsystem: a registry
// of named media-generation capabilities with schema validated arguments,
// consistent error handling and a JSON result envelope suitable for feeding
// back to a function-calling language model.
package tool

import (
	"context"
	"fmt"
)

// Error codes used across the toolkit. MISSING_DEPENDENCY is deliberately
// distinct from GENERATION_ERROR: the user-facing remediation differs
// (install the dependency vs fix the input).
const (
	// CodeValidation indicates the supplied arguments failed schema validation.
	CodeValidation = "VALIDATION_ERROR"
	// CodeUnknownTool indicates the requested tool name is not registered.
	CodeUnknownTool = "UNKNOWN_TOOL"
	// CodeInvalidArguments indicates the raw argument payload was not valid JSON.
	CodeInvalidArguments = "INVALID_ARGUMENTS"
	// CodeMissingDependency indicates an optional backing dependency is not installed.
	CodeMissingDependency = "MISSING_DEPENDENCY"
	// CodeGeneration indicates the underlying rendering/encoding routine failed.
	CodeGeneration = "GENERATION_ERROR"
	// CodeExecution indicates any other failure during tool execution.
	CodeExecution = "EXECUTION_ERROR"
)

// Tool defines the interface for a named capability invocable by a model.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Define proper JSON schema for parameters
//   - Handle errors gracefully
//   - Be safe for repeated sequential use
type Tool interface {
	// Name returns the unique identifier for this tool (snake_case).
	Name() string

	// Description returns a human-readable description of what this tool does.
	// It is provided to the LLM to help it decide when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool with already-decoded arguments.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}

// MissingDependencyError builds a ToolError for an absent optional
// dependency, carrying the install instruction verbatim so it can surface
// unchanged to the user.
func MissingDependencyError(tool, dependency, install string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: fmt.Sprintf("%s is not installed. %s", dependency, install),
		Code:    CodeMissingDependency,
	}
}
