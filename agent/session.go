package agent

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// State is the position of a session in the decide, invoke, observe cycle.
type State int

const (
	StateAwaitingDecision State = iota
	StateInvokingTool
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingDecision:
		return "awaiting_decision"
	case StateInvokingTool:
		return "invoking_tool"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var ErrInvalidTransition = errors.New("invalid session state transition")

var transitions = map[State][]State{
	StateAwaitingDecision: {StateInvokingTool, StateTerminated},
	StateInvokingTool:     {StateAwaitingDecision, StateTerminated},
}

// Action is a tool call chosen by the model.
type Action struct {
	Tool  string
	Input string
	Log   string
}

// Step pairs an action with the tool output it produced.
type Step struct {
	Action      Action
	Observation string
}

// Session is the scratch state of one agent run.
type Session struct {
	ID    string
	Input string
	Steps []Step

	state State
}

func newSession(input string) *Session {
	return &Session{
		ID:    uuid.NewString(),
		Input: input,
		state: StateAwaitingDecision,
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) transition(to State) error {
	for _, allowed := range transitions[s.state] {
		if allowed == to {
			s.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}

func (s *Session) observe(action Action, observation string) error {
	if err := s.transition(StateAwaitingDecision); err != nil {
		return err
	}
	s.Steps = append(s.Steps, Step{Action: action, Observation: observation})
	return nil
}

// terminate is valid from every non-terminal state.
func (s *Session) terminate() {
	if s.state != StateTerminated {
		s.state = StateTerminated
	}
}
