package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	s := newSession("hello")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StateAwaitingDecision, s.State())

	require.NoError(t, s.transition(StateInvokingTool))
	assert.ErrorIs(t, s.transition(StateInvokingTool), ErrInvalidTransition)

	require.NoError(t, s.observe(Action{Tool: "DraftEmail"}, "OK"))
	assert.Equal(t, StateAwaitingDecision, s.State())
	require.Len(t, s.Steps, 1)
	assert.Equal(t, "OK", s.Steps[0].Observation)

	assert.ErrorIs(t, s.observe(Action{}, "again"), ErrInvalidTransition)

	require.NoError(t, s.transition(StateTerminated))
	assert.ErrorIs(t, s.transition(StateAwaitingDecision), ErrInvalidTransition)
	s.terminate()
	assert.Equal(t, StateTerminated, s.State())
}

func TestSessionsAreFresh(t *testing.T) {
	a, b := newSession("x"), newSession("x")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, b.Steps)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_decision", StateAwaitingDecision.String())
	assert.Equal(t, "invoking_tool", StateInvokingTool.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "state(9)", State(9).String())
}
