package tools

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/myproject/taskagent/agent/prompts"
)

// MissingArgumentError lists required arguments absent from a tool call.
type MissingArgumentError struct {
	Tool      string
	Arguments []string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("tool %s: missing argument(s): %s", e.Tool, strings.Join(e.Arguments, ", "))
}

// Unwrap exposes the missing arguments as a *prompts.MissingSlotError.
func (e *MissingArgumentError) Unwrap() error {
	return &prompts.MissingSlotError{Template: e.Tool, Slots: e.Arguments}
}

// InvalidArgumentsError reports arguments that are not a valid object for the tool.
type InvalidArgumentsError struct {
	Tool    string
	Reasons []string
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("tool %s: invalid arguments: %s", e.Tool, strings.Join(e.Reasons, "; "))
}

// Validate checks args against the tool's parameter schema. Tools without a
// schema accept anything.
func (t Tool) Validate(args string) error {
	if t.Parameters == nil {
		return nil
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(t.Parameters))
	if err != nil {
		return fmt.Errorf("tool %s: compile schema: %w", t.Name, err)
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(args))
	if err != nil {
		return &InvalidArgumentsError{Tool: t.Name, Reasons: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	var missing, reasons []string
	for _, re := range result.Errors() {
		if re.Type() == "required" {
			if prop, ok := re.Details()["property"].(string); ok {
				missing = append(missing, prop)
				continue
			}
		}
		reasons = append(reasons, re.String())
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingArgumentError{Tool: t.Name, Arguments: missing}
	}
	return &InvalidArgumentsError{Tool: t.Name, Reasons: reasons}
}

// Coerce turns free-text action input into a JSON argument object. A leading
// JSON object is used as is and anything after it is ignored. Otherwise the
// value, decoded if it is a JSON string, is bound to the only parameter of a
// single-argument tool. A surrounding Markdown code fence is dropped first.
func Coerce(t Tool, raw string) (string, error) {
	trimmed := stripCodeFence(strings.TrimSpace(raw))
	if strings.HasPrefix(trimmed, "{") {
		if obj, ok := firstObject(trimmed); ok {
			return obj, nil
		}
	}
	names := t.ParameterNames()
	if len(names) != 1 {
		return "", &InvalidArgumentsError{
			Tool:    t.Name,
			Reasons: []string{fmt.Sprintf("expected a JSON object with keys %s", strings.Join(names, ", "))},
		}
	}
	data, err := json.Marshal(map[string]string{names[0]: bareValue(trimmed)})
	if err != nil {
		return "", fmt.Errorf("encode args: %w", err)
	}
	return string(data), nil
}

// firstObject decodes the first JSON value of s and reports whether it is an object.
func firstObject(s string) (string, bool) {
	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&raw); err != nil {
		return "", false
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	return string(raw), true
}

func bareValue(s string) string {
	if strings.HasPrefix(s, `"`) {
		var value string
		if err := json.NewDecoder(strings.NewReader(s)).Decode(&value); err == nil {
			return value
		}
	}
	return strings.Trim(s, `"`)
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	if i := strings.LastIndex(body, "```"); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}
