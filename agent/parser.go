package agent

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	finalAnswerPrefix = "Final Answer:"
	observationPrefix = "Observation:"
)

var (
	actionPattern      = regexp.MustCompile(`(?s)Action\s*\d*\s*:[\s]*(.*?)[\s]*Action\s*\d*\s*Input\s*\d*\s*:[\s]*(.*)`)
	actionNamePattern  = regexp.MustCompile(`(?s)Action\s*\d*\s*:`)
	actionInputPattern = regexp.MustCompile(`(?s)Action\s*\d*\s*Input\s*\d*\s*:`)
)

// OutputParseError reports model output that is neither a tool call nor a final answer.
type OutputParseError struct {
	Output string
	Reason string
}

func (e *OutputParseError) Error() string {
	return fmt.Sprintf("could not parse model output: %s: %q", e.Reason, e.Output)
}

// Finish is the terminal answer emitted by the model.
type Finish struct {
	Output string
	Log    string
}

// truncateAtObservation drops anything the model hallucinated after its action.
func truncateAtObservation(text string) string {
	if i := strings.Index(text, "\n"+observationPrefix); i >= 0 {
		return text[:i]
	}
	return text
}

// parseDecision returns exactly one of action or finish.
func parseDecision(text string) (*Action, *Finish, error) {
	hasAnswer := strings.Contains(text, finalAnswerPrefix)
	if m := actionPattern.FindStringSubmatch(text); m != nil {
		if hasAnswer {
			return nil, nil, &OutputParseError{Output: text, Reason: "both a final answer and a parse-able action"}
		}
		return &Action{
			Tool:  strings.TrimSpace(m[1]),
			Input: strings.TrimSpace(m[2]),
			Log:   text,
		}, nil, nil
	}
	if hasAnswer {
		parts := strings.Split(text, finalAnswerPrefix)
		return nil, &Finish{Output: strings.TrimSpace(parts[len(parts)-1]), Log: text}, nil
	}
	switch {
	case !actionNamePattern.MatchString(text):
		return nil, nil, &OutputParseError{Output: text, Reason: "missing 'Action:' after 'Thought:'"}
	case !actionInputPattern.MatchString(text):
		return nil, nil, &OutputParseError{Output: text, Reason: "missing 'Action Input:' after 'Action:'"}
	default:
		return nil, nil, &OutputParseError{Output: text, Reason: "unrecognized format"}
	}
}
