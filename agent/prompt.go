package agent

import (
	"fmt"
	"strings"

	"github.com/myproject/taskagent/agent/tools"
)

const (
	DefaultPrefix = "Answer the following questions as best you can. You have access to the following tools:"

	formatInstructions = `Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, should be one of [%s]
Action Input: the input to the action, a JSON object with the tool's arguments
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat N times)
Thought: I now know the final answer
Final Answer: the final answer to the original input question`

	defaultSuffix = "Begin!"
)

// PromptWrapper stores the fixed segments of the decision prompt.
type PromptWrapper struct {
	prefixes  []string
	ToolUsage []string
}

// ReActPromptWrapper returns the zero-shot, description-driven layout.
func ReActPromptWrapper() PromptWrapper {
	wrapper := PromptWrapper{}
	wrapper.AddPrefix(DefaultPrefix)
	return wrapper
}

// AddPrefix appends an instruction segment placed before the tool list.
func (w *PromptWrapper) AddPrefix(prompt string) {
	if strings.TrimSpace(prompt) == "" {
		return
	}
	w.prefixes = append(w.prefixes, prompt)
}

// AddToolUsage appends a hint placed after the format instructions.
func (w *PromptWrapper) AddToolUsage(toolUsage string) {
	if strings.TrimSpace(toolUsage) == "" {
		return
	}
	w.ToolUsage = append(w.ToolUsage, toolUsage)
}

// Wrap renders the decision prompt for one iteration of the loop.
func (w *PromptWrapper) Wrap(items []tools.Tool, question string, steps []Step) string {
	var sb strings.Builder
	if len(w.prefixes) > 0 {
		sb.WriteString(strings.Join(w.prefixes, "\n"))
		sb.WriteString("\n\n")
	}

	names := make([]string, 0, len(items))
	for _, tool := range items {
		names = append(names, tool.Name)
		sb.WriteString(fmt.Sprintf("%s: %s", tool.Name, tool.Description))
		if args := tool.ParameterNames(); len(args) > 0 {
			sb.WriteString(fmt.Sprintf(" Arguments: %s.", strings.Join(args, ", ")))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(formatInstructions, strings.Join(names, ", ")))
	sb.WriteString("\n\n")
	if len(w.ToolUsage) > 0 {
		sb.WriteString(strings.Join(w.ToolUsage, "\n"))
		sb.WriteString("\n\n")
	}
	sb.WriteString(defaultSuffix)
	sb.WriteString("\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\nThought:")
	sb.WriteString(scratchpad(steps))
	return sb.String()
}

func scratchpad(steps []Step) string {
	var sb strings.Builder
	for _, step := range steps {
		sb.WriteString(step.Action.Log)
		sb.WriteString("\n")
		sb.WriteString(observationPrefix)
		sb.WriteString(" ")
		sb.WriteString(step.Observation)
		sb.WriteString("\nThought:")
	}
	return sb.String()
}
