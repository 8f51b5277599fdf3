package tools

import (
	"context"
	"sort"
)

// ToolHandler receives the tool arguments as a JSON object.
type ToolHandler func(ctx context.Context, args string) (string, error)

type ToolKind string

const (
	ToolKindTool     ToolKind = "tool"
	ToolKindTemplate ToolKind = "template"
)

// Tool is a named, described unit the agent loop may decide to call.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     ToolHandler
	Kind        ToolKind
}

type Option func(*Tool)

func New(name string, handler ToolHandler, opts ...Option) Tool {
	t := Tool{
		Name:    name,
		Handler: handler,
		Kind:    ToolKindTool,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func WithDescription(description string) Option {
	return func(t *Tool) {
		t.Description = description
	}
}

func WithParameters(parameters map[string]any) Option {
	return func(t *Tool) {
		t.Parameters = parameters
	}
}

func WithKind(kind ToolKind) Option {
	return func(t *Tool) {
		t.Kind = kind
	}
}

// Invoke validates args against the tool schema and runs the handler.
func (t Tool) Invoke(ctx context.Context, args string) (string, error) {
	if err := t.Validate(args); err != nil {
		return "", err
	}
	return t.Handler(ctx, args)
}

// ParameterNames returns the declared argument names, sorted.
func (t Tool) ParameterNames() []string {
	props, _ := t.Parameters["properties"].(map[string]any)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ObjectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func StringProperty(description string) map[string]any {
	prop := map[string]any{
		"type": "string",
	}
	if description != "" {
		prop["description"] = description
	}
	return prop
}
