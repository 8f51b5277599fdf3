package agent

import (
	"context"

	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/tools/buildin"
)

// Build resolves the shared model handle and assembles an agent exposing the
// four template tools. The handle drives both tool calls and decisions.
func Build(ctx context.Context, accessor *llm.Accessor, opts ...Option) (*Agent, error) {
	model, err := accessor.Handle(ctx)
	if err != nil {
		return nil, err
	}
	a := New(model, opts...)
	for _, tool := range buildin.All(model) {
		if err := a.RegisterTool(tool); err != nil {
			return nil, err
		}
	}
	return a, nil
}
