package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision(t *testing.T) {
	t.Run("action", func(t *testing.T) {
		text := " I should draft it.\nAction: DraftEmail\nAction Input: {\"context\": \"quarterly update\"}"
		action, finish, err := parseDecision(text)
		require.NoError(t, err)
		require.NotNil(t, action)
		assert.Nil(t, finish)
		assert.Equal(t, "DraftEmail", action.Tool)
		assert.Equal(t, `{"context": "quarterly update"}`, action.Input)
		assert.Equal(t, text, action.Log)
	})

	t.Run("numbered action", func(t *testing.T) {
		action, _, err := parseDecision("Action 1: KnowledgeQnA\nAction 1 Input: {}")
		require.NoError(t, err)
		assert.Equal(t, "KnowledgeQnA", action.Tool)
	})

	t.Run("final answer", func(t *testing.T) {
		action, finish, err := parseDecision(" I now know the final answer\nFinal Answer:  Here is your email. ")
		require.NoError(t, err)
		assert.Nil(t, action)
		assert.Equal(t, "Here is your email.", finish.Output)
	})

	cases := map[string]string{
		"both":           "Action: DraftEmail\nAction Input: {}\nFinal Answer: done",
		"missing action": "I am not sure what to do.",
		"missing input":  "Thought: hmm\nAction: DraftEmail",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseDecision(text)
			var parseErr *OutputParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, text, parseErr.Output)
		})
	}
}

func TestTruncateAtObservation(t *testing.T) {
	text := "Action: DraftEmail\nAction Input: {\"context\":\"x\"}\nObservation: made up\nThought: done"
	assert.Equal(t, "Action: DraftEmail\nAction Input: {\"context\":\"x\"}", truncateAtObservation(text))
	assert.Equal(t, "Final Answer: ok", truncateAtObservation("Final Answer: ok"))
}
