package tools

import (
	"errors"
	"fmt"
)

var ErrDuplicateTool = errors.New("duplicate tool name")

// Registry keeps tools in registration order with unique names.
type Registry struct {
	byName map[string]Tool
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Tool{}}
}

func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return errors.New("tool name is required")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %s: handler is required", tool.Name)
	}
	if _, exists := r.byName[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}
	if tool.Kind == "" {
		tool.Kind = ToolKindTool
	}
	r.byName[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	return nil
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

func (r *Registry) List() []Tool {
	items := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		items = append(items, r.byName[name])
	}
	return items
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Len() int {
	return len(r.order)
}
