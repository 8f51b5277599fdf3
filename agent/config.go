package agent

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/myproject/taskagent/agent/llm"
)

type AgentConfig struct {
	Provider      string    `mapstructure:"provider"`
	APIKey        string    `mapstructure:"api_key"`
	BaseURL       string    `mapstructure:"base_url"`
	Model         string    `mapstructure:"model"`
	Temperature   float32   `mapstructure:"temperature"`
	MaxIterations int       `mapstructure:"max_iterations"`
	Verbose       bool      `mapstructure:"verbose"`
	MetricsAddr   string    `mapstructure:"metrics_addr"`
	Log           LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Provider:      llm.DefaultProvider,
		Temperature:   llm.DefaultTemperature,
		MaxIterations: DefaultMaxIterations,
		Verbose:       true,
		Log:           LogConfig{Level: "info"},
	}
}

// LoadAgentConfig loads agent config from a directory containing agent.yaml
// and an optional .env file. Real environment variables win over both.
func LoadAgentConfig(path string) (*AgentConfig, error) {
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("agent")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("AGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees env-only keys that have been bound explicitly.
	for _, key := range []string{"provider", "api_key", "base_url", "model", "temperature", "max_iterations", "verbose", "metrics_addr", "log.level", "log.pretty"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if err := v.BindEnv("credentials.gemini", "GOOGLE_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("credentials.openai", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}

	cfg := DefaultAgentConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("agent config not found, relying on env vars")
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = v.GetString("credentials." + cfg.Provider)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that can be judged without contacting the provider.
// A missing credential is reported later by the model accessor.
func (c *AgentConfig) Validate() error {
	switch c.Provider {
	case llm.ProviderGemini, llm.ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported provider %q", c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature %.2f out of range [0, 2]", c.Temperature)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

func (c *AgentConfig) LLMConfig() llm.Config {
	return llm.Config{
		Provider:    c.Provider,
		Model:       c.Model,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Temperature: c.Temperature,
	}
}
