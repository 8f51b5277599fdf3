package prompts

import (
	"context"

	"github.com/myproject/taskagent/agent/llm"
)

var (
	EmailTemplate = Template{
		Name:  "email",
		Slots: []string{"context"},
		Text:  "You are drafting a professional email based on the following context:\n\n{context}\n\nProvide the complete email below.",
	}
	StudyPlanTemplate = Template{
		Name:  "study_plan",
		Slots: []string{"topic", "duration"},
		Text:  "Create a detailed study plan for learning about {topic} over the next {duration}.",
	}
	KnowledgeQnATemplate = Template{
		Name:  "knowledge_qna",
		Slots: []string{"question", "domain"},
		Text:  "Provide a detailed answer to the following question within the context of {domain}:\n\n{question}",
	}
	ActionItemsTemplate = Template{
		Name:  "action_items",
		Slots: []string{"notes"},
		Text:  "Extract and list the main action items from the following meeting notes:\n\n{notes}",
	}
)

// Templates returns the built-in templates in a stable order.
func Templates() []Template {
	return []Template{EmailTemplate, StudyPlanTemplate, KnowledgeQnATemplate, ActionItemsTemplate}
}

// Lookup finds a built-in template by name.
func Lookup(name string) (Template, bool) {
	for _, t := range Templates() {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Request binds a template to the model that answers it.
type Request struct {
	Template Template
	Model    llm.Model
}

// Run renders the prompt and makes exactly one model call. Nothing is sent
// when rendering fails.
func (r *Request) Run(ctx context.Context, values map[string]string) (string, error) {
	prompt, err := r.Template.Render(values)
	if err != nil {
		return "", err
	}
	return r.Model.Generate(ctx, prompt)
}

func NewEmailRequest(m llm.Model) *Request {
	return &Request{Template: EmailTemplate, Model: m}
}

func NewStudyPlanRequest(m llm.Model) *Request {
	return &Request{Template: StudyPlanTemplate, Model: m}
}

func NewKnowledgeQnARequest(m llm.Model) *Request {
	return &Request{Template: KnowledgeQnATemplate, Model: m}
}

func NewActionItemsRequest(m llm.Model) *Request {
	return &Request{Template: ActionItemsTemplate, Model: m}
}
