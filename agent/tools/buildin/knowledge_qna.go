package buildin

import (
	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/prompts"
	"github.com/myproject/taskagent/agent/tools"
)

func NewKnowledgeQnATool(m llm.Model) tools.Tool {
	return templateTool(
		"KnowledgeQnA",
		"Answer a question based on a specified knowledge domain.",
		prompts.NewKnowledgeQnARequest(m),
		map[string]any{
			"question": tools.StringProperty("The question to answer."),
			"domain":   tools.StringProperty("Knowledge domain that frames the answer."),
		},
	)
}
