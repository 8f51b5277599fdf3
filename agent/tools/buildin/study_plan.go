package buildin

import (
	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/prompts"
	"github.com/myproject/taskagent/agent/tools"
)

func NewGenerateStudyPlanTool(m llm.Model) tools.Tool {
	return templateTool(
		"GenerateStudyPlan",
		"Generate a study plan for a topic over a specified duration.",
		prompts.NewStudyPlanRequest(m),
		map[string]any{
			"topic":    tools.StringProperty("Subject to learn."),
			"duration": tools.StringProperty("Time available, e.g. '4 weeks'."),
		},
	)
}
