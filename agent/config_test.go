package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myproject/taskagent/agent/llm"
)

func clearCredentials(t *testing.T) {
	for _, key := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "AGENT_API_KEY", "AGENT_PROVIDER", "AGENT_MODEL", "AGENT_TEMPERATURE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadAgentConfigDefaults(t *testing.T) {
	clearCredentials(t)
	cfg, err := LoadAgentConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, llm.DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadAgentConfigGoogleKeyFromEnv(t *testing.T) {
	clearCredentials(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := LoadAgentConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.APIKey)
	assert.Equal(t, "google-key", cfg.LLMConfig().APIKey)
}

func TestLoadAgentConfigFileAndEnvOverride(t *testing.T) {
	clearCredentials(t)
	dir := t.TempDir()
	yaml := "provider: openai\nmodel: gpt-4o\ntemperature: 0.2\nmax_iterations: 4\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agent.yaml"), []byte(yaml), 0o644))
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("AGENT_MODEL", "gpt-4.1")

	cfg, err := LoadAgentConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-6)
	assert.Equal(t, 4, cfg.MaxIterations)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "openai-key", cfg.APIKey)
}

func TestLoadAgentConfigDotEnv(t *testing.T) {
	clearCredentials(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GOOGLE_API_KEY=from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("GOOGLE_API_KEY") })

	cfg, err := LoadAgentConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIKey)
}

func TestAgentConfigValidate(t *testing.T) {
	cases := map[string]func(*AgentConfig){
		"provider":       func(c *AgentConfig) { c.Provider = "bard" },
		"temperature":    func(c *AgentConfig) { c.Temperature = 3 },
		"max iterations": func(c *AgentConfig) { c.MaxIterations = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultAgentConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	cfg := DefaultAgentConfig()
	assert.NoError(t, cfg.Validate())
}
