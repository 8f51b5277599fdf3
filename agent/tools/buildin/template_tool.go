package buildin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/prompts"
	"github.com/myproject/taskagent/agent/tools"
)

// templateHandler decodes the validated arguments and runs req once.
func templateHandler(req *prompts.Request) tools.ToolHandler {
	return func(ctx context.Context, args string) (string, error) {
		var values map[string]string
		if err := json.Unmarshal([]byte(args), &values); err != nil {
			return "", fmt.Errorf("parse args: %w", err)
		}
		return req.Run(ctx, values)
	}
}

func templateTool(name, description string, req *prompts.Request, properties map[string]any) tools.Tool {
	return tools.New(
		name,
		templateHandler(req),
		tools.WithDescription(description),
		tools.WithKind(tools.ToolKindTemplate),
		tools.WithParameters(tools.ObjectSchema(properties, req.Template.Slots...)),
	)
}

// All returns the four template tools bound to m.
func All(m llm.Model) []tools.Tool {
	return []tools.Tool{
		NewDraftEmailTool(m),
		NewGenerateStudyPlanTool(m),
		NewKnowledgeQnATool(m),
		NewExtractActionItemsTool(m),
	}
}
