// Package tools defines the fixed set of callable tools the conversational
// model invokes: catalog search and lookup, schedule mutation, conflict
// checking, and the calendar view. Each tool carries a JSON-schema argument
// description for LLM tool calling and resolves every invocation, including
// partial failures, to a human-readable string.
package tools

import "context"

// Category classifies tools for prompt assembly.
type Category string

const (
	// CategoryCatalog covers read-only course catalog tools.
	CategoryCatalog Category = "catalog"

	// CategorySchedule covers tools that read or mutate the user's schedule.
	CategorySchedule Category = "schedule"
)

// Property describes a single parameter for the JSON schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
}

// Schema defines the JSON schema for tool arguments.
type Schema struct {
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// ExecuteFunc is the signature for tool execution. userID identifies the
// caller the tool acts for; ambient identity is never read from globals.
// The returned string is the conversational result shown to the model.
type ExecuteFunc func(ctx context.Context, userID string, args map[string]any) (string, error)

// Tool is one callable capability exposed to the model.
type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Schema      Schema   `json:"schema"`
	Execute     ExecuteFunc `json:"-"`
}

// Validate checks if the tool definition is valid.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// stringArg extracts an optional string argument.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg extracts an integer argument; JSON numbers arrive as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
