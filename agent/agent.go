package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myproject/taskagent/agent/llm"
	"github.com/myproject/taskagent/agent/tools"
	"github.com/myproject/taskagent/internal/metrics"
)

const (
	DefaultName          string = "task_agent"
	DefaultDescription   string = "Drafts emails, plans study, answers domain questions and extracts action items"
	DefaultMaxIterations int    = 15
)

var ErrIterationLimit = errors.New("agent stopped due to iteration limit")

// ToolResolutionError reports a decision naming a tool that is not registered.
type ToolResolutionError struct {
	Name      string
	Available []string
}

func (e *ToolResolutionError) Error() string {
	return fmt.Sprintf("%s is not a valid tool, try one of %v", e.Name, e.Available)
}

// Result is the final answer of one run together with the steps that led to it.
type Result struct {
	SessionID string
	Output    string
	Steps     []Step
}

type Agent struct {
	Name          string
	Description   string
	model         llm.Model
	tools         *tools.Registry
	promptWrapper PromptWrapper
	MaxIterations int
	Verbose       bool
	logger        zerolog.Logger
	metrics       *metrics.Metrics
}

type Option func(*Agent)

func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		a.MaxIterations = n
	}
}

func WithVerbose(verbose bool) Option {
	return func(a *Agent) {
		a.Verbose = verbose
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Agent) {
		a.metrics = m
	}
}

func WithPromptWrapper(wrapper PromptWrapper) Option {
	return func(a *Agent) {
		a.promptWrapper = wrapper
	}
}

// New creates an agent with no tools around the given model.
func New(model llm.Model, opts ...Option) *Agent {
	a := &Agent{
		Name:          DefaultName,
		Description:   DefaultDescription,
		model:         model,
		tools:         tools.NewRegistry(),
		promptWrapper: ReActPromptWrapper(),
		MaxIterations: DefaultMaxIterations,
		logger:        log.With().Str("component", "agent").Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.MaxIterations <= 0 {
		a.MaxIterations = DefaultMaxIterations
	}
	return a
}

func (a *Agent) AddPrefix(prompt string) {
	a.promptWrapper.AddPrefix(prompt)
}

func (a *Agent) AddToolUsage(toolUsage string) {
	a.promptWrapper.AddToolUsage(toolUsage)
}

func (a *Agent) ListTools() []tools.Tool {
	return a.tools.List()
}

func (a *Agent) RegisterTool(tool tools.Tool) error {
	return a.tools.Register(tool)
}

func (a *Agent) RegisterToolFunc(name string, handler tools.ToolHandler, opts ...tools.Option) error {
	return a.RegisterTool(tools.New(name, handler, opts...))
}

// Invoke runs one session and returns only the final answer.
func (a *Agent) Invoke(ctx context.Context, userQuery string) (string, error) {
	res, err := a.Run(ctx, userQuery)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Run drives a fresh session until the model gives a final answer. Any tool or
// model failure ends the session and is returned as is.
func (a *Agent) Run(ctx context.Context, userQuery string) (*Result, error) {
	session := newSession(userQuery)
	logger := a.logger.With().Str("session", session.ID).Logger()

	res, err := a.run(ctx, session, logger)
	session.terminate()
	a.metrics.RecordRun(err)
	if err != nil {
		logger.Error().Err(err).Int("steps", len(session.Steps)).Msg("agent run failed")
		return nil, err
	}
	return res, nil
}

func (a *Agent) run(ctx context.Context, session *Session, logger zerolog.Logger) (*Result, error) {
	items := a.tools.List()
	for i := 1; i <= a.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		prompt := a.promptWrapper.Wrap(items, session.Input, session.Steps)
		completion, err := a.model.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		action, finish, err := parseDecision(truncateAtObservation(completion))
		if err != nil {
			return nil, err
		}
		if finish != nil {
			if err := session.transition(StateTerminated); err != nil {
				return nil, err
			}
			a.trace(logger, "finish").Int("iteration", i).Str("output", finish.Output).Msg("agent finished")
			return &Result{SessionID: session.ID, Output: finish.Output, Steps: session.Steps}, nil
		}

		observation, err := a.invoke(ctx, session, *action, logger)
		if err != nil {
			return nil, err
		}
		if err := session.observe(*action, observation); err != nil {
			return nil, err
		}
		a.trace(logger, "observation").Int("iteration", i).Str("tool", action.Tool).Str("observation", observation).Msg("tool returned")
	}
	return nil, fmt.Errorf("%w: %d iterations", ErrIterationLimit, a.MaxIterations)
}

func (a *Agent) invoke(ctx context.Context, session *Session, action Action, logger zerolog.Logger) (string, error) {
	tool, ok := a.tools.Lookup(action.Tool)
	if !ok {
		return "", &ToolResolutionError{Name: action.Tool, Available: a.tools.Names()}
	}
	if err := session.transition(StateInvokingTool); err != nil {
		return "", err
	}
	args, err := tools.Coerce(tool, action.Input)
	if err != nil {
		return "", err
	}
	a.trace(logger, "action").Str("tool", tool.Name).Str("args", args).Msg("agent calling tool")

	start := time.Now()
	result, err := tool.Invoke(ctx, args)
	a.metrics.RecordToolCall(tool.Name, time.Since(start), err)
	return result, err
}

// trace logs loop steps at info when verbose and at debug otherwise.
func (a *Agent) trace(logger zerolog.Logger, step string) *zerolog.Event {
	if a.Verbose {
		return logger.Info().Str("step", step)
	}
	return logger.Debug().Str("step", step)
}
