package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/llm/llmtest"
)

// answerFactory returns a model that immediately answers every question by echoing it.
func answerFactory(built *int32) llm.Factory {
	return func(context.Context, llm.Config) (llm.Model, error) {
		atomic.AddInt32(built, 1)
		return llm.ModelFunc(func(_ context.Context, prompt string) (string, error) {
			q := prompt[strings.LastIndex(prompt, "Question: ")+len("Question: "):]
			q = q[:strings.Index(q, "\n")]
			return "Final Answer: answered " + q, nil
		}), nil
	}
}

func scriptFactory(model llm.Model) llm.Factory {
	return func(context.Context, llm.Config) (llm.Model, error) {
		return model, nil
	}
}

func withCredential(t *testing.T, key string) string {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AGENT_API_KEY", "")
	t.Setenv("AGENT_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", key)
	return t.TempDir()
}

func execute(t *testing.T, factory llm.Factory, stdin string, args ...string) (string, error) {
	cmd := newRootCmd(factory)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		out, err := execute(t, nil, "", "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "taskagent version "+version)
	})

	t.Run("global flags", func(t *testing.T) {
		cmd := NewRootCmd()
		configFlag := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, configFlag)
		assert.Equal(t, ".", configFlag.DefValue)
		assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
		assert.NotNil(t, cmd.PersistentFlags().Lookup("metrics-addr"))
	})
}

func TestAskCommand(t *testing.T) {
	dir := withCredential(t, "dummy")
	var built int32

	out, err := execute(t, answerFactory(&built), "", "--config", dir, "ask", "what", "is", "Go?")
	require.NoError(t, err)
	assert.Equal(t, "answered what is Go?\n", out)
	assert.Equal(t, int32(1), built)
}

func TestAskCommandSteps(t *testing.T) {
	dir := withCredential(t, "dummy")
	model := llmtest.NewScript(
		"Action: ExtractActionItems\nAction Input: {\"notes\": \"Alice will file the report.\"}",
		"- Alice files the report",
		"Final Answer: - Alice files the report",
	)

	out, err := execute(t, scriptFactory(model), "", "--config", dir, "ask", "--steps", "list the action items")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1: ExtractActionItems")
	assert.Contains(t, out, "Observation: - Alice files the report\n")
	assert.True(t, strings.HasSuffix(out, "- Alice files the report\n"))
	assert.Contains(t, model.Prompts()[1], "Alice will file the report.")
}

func TestAskCommandMissingCredential(t *testing.T) {
	dir := withCredential(t, "")
	var built int32

	_, err := execute(t, answerFactory(&built), "", "--config", dir, "ask", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrConfiguration)
	assert.Zero(t, built)
}

func TestChatCommand(t *testing.T) {
	dir := withCredential(t, "dummy")
	var built int32

	out, err := execute(t, answerFactory(&built), "hello\n\nsecond question\nexit\nignored\n", "--config", dir, "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Agent> answered hello\n")
	assert.Contains(t, out, "Agent> answered second question\n")
	assert.NotContains(t, out, "ignored")
}

func TestBatchCommand(t *testing.T) {
	dir := withCredential(t, "dummy")
	input := filepath.Join(dir, "requests.txt")
	require.NoError(t, os.WriteFile(input, []byte("one\n\ntwo\nthree\nfour\nfive\n"), 0o644))
	var built int32

	out, err := execute(t, answerFactory(&built), "", "--config", dir, "batch", "--workers", "3", input)
	require.NoError(t, err)
	assert.Equal(t, "[1] answered one\n[2] answered two\n[3] answered three\n[4] answered four\n[5] answered five\n", out)
	assert.Equal(t, int32(1), built, "sessions share one model handle")
}

func TestBatchCommandReportsFailures(t *testing.T) {
	dir := withCredential(t, "dummy")
	input := filepath.Join(dir, "requests.txt")
	require.NoError(t, os.WriteFile(input, []byte("only\n"), 0o644))

	out, err := execute(t, scriptFactory(llmtest.NewRecorder("no format at all")), "", "--config", dir, "batch", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 requests failed")
	assert.Contains(t, out, "[1] error:")
}

func TestBatchCommandMissingFile(t *testing.T) {
	dir := withCredential(t, "dummy")
	_, err := execute(t, nil, "", "--config", dir, "batch", filepath.Join(dir, "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
