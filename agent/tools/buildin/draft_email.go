package buildin

import (
	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/prompts"
	"github.com/myproject/taskagent/agent/tools"
)

func NewDraftEmailTool(m llm.Model) tools.Tool {
	return templateTool(
		"DraftEmail",
		"Draft a professional email based on a given context. This tool is specifically for email drafting.",
		prompts.NewEmailRequest(m),
		map[string]any{
			"context": tools.StringProperty("What the email is about and who it is for."),
		},
	)
}
