package buildin

import (
	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/prompts"
	"github.com/myproject/taskagent/agent/tools"
)

func NewExtractActionItemsTool(m llm.Model) tools.Tool {
	return templateTool(
		"ExtractActionItems",
		"Extract action items from meeting notes.",
		prompts.NewActionItemsRequest(m),
		map[string]any{
			"notes": tools.StringProperty("Raw meeting notes."),
		},
	)
}
