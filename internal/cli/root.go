package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/myproject/taskagent/agent"
	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/internal/logger"
	"github.com/myproject/taskagent/internal/metrics"
)

const version = "0.1.0"

// app carries the global flags and the model factory shared by all commands.
type app struct {
	configDir   string
	logLevel    string
	metricsAddr string
	factory     llm.Factory
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree using the configured provider.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(factory llm.Factory) *cobra.Command {
	a := &app{factory: factory}
	root := &cobra.Command{
		Use:   "taskagent",
		Short: "taskagent - a tool-using assistant for everyday writing and planning",
		Long: `taskagent answers free-form requests by choosing among four tools:
DraftEmail, GenerateStudyPlan, KnowledgeQnA and ExtractActionItems.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.configDir, "config", ".", "directory containing agent.yaml and .env")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	root.AddCommand(a.newChatCmd(), a.newAskCmd(), a.newBatchCmd())
	return root
}

// runEnv is everything a command needs to run the agent.
type runEnv struct {
	agent    *agent.Agent
	log      zerolog.Logger
	accessor *llm.Accessor
	server   *http.Server
}

func (s *runEnv) Close() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.server.Shutdown(ctx)
	}
	if err := s.accessor.Close(); err != nil {
		s.log.Warn().Err(err).Msg("close model client")
	}
}

func (a *app) setup(cmd *cobra.Command) (*runEnv, error) {
	cfg, err := agent.LoadAgentConfig(a.configDir)
	if err != nil {
		return nil, err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.metricsAddr != "" {
		cfg.MetricsAddr = a.metricsAddr
	}
	log := logger.New(logger.Config{
		Level:     cfg.Log.Level,
		Pretty:    cfg.Log.Pretty,
		Redaction: true,
		Output:    cmd.ErrOrStderr(),
	})

	s := &runEnv{log: log, accessor: llm.NewAccessor(cfg.LLMConfig(), a.factory)}
	m := metrics.New()
	if cfg.MetricsAddr != "" {
		s.server = &http.Server{Addr: cfg.MetricsAddr, Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server stopped")
			}
		}()
	}

	s.agent, err = agent.Build(cmd.Context(), s.accessor,
		agent.WithMaxIterations(cfg.MaxIterations),
		agent.WithVerbose(cfg.Verbose),
		agent.WithLogger(log.With().Str("component", "agent").Logger()),
		agent.WithMetrics(m),
	)
	if err != nil {
		s.Close()
		return nil, err
	}
	log.Debug().
		Str("provider", s.accessor.Config().Provider).
		Str("model", s.accessor.Config().Model).
		Msg("agent ready")
	return s, nil
}
