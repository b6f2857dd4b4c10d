package agenda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work.
type Job func(context.Context) error

// DefaultParser accepts five or six field expressions and descriptors such
// as "@every 5s" or "@daily".
var DefaultParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// Engine runs a single job on a cron schedule. Overlapping runs are skipped.
type Engine struct {
	name       string
	cron       *cron.Cron
	expression string
	job        Job
	logger     *slog.Logger
	jobTimeout time.Duration

	mu      sync.Mutex
	started bool
	entryID cron.EntryID
}

type EngineOption func(*Engine)

func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEngineJobTimeout bounds each run of the job.
func WithEngineJobTimeout(timeout time.Duration) EngineOption {
	return func(e *Engine) {
		if timeout > 0 {
			e.jobTimeout = timeout
		}
	}
}

func WithEngineName(name string) EngineOption {
	return func(e *Engine) {
		if name != "" {
			e.name = name
		}
	}
}

func New(expression string, job Job, opts ...EngineOption) (*Engine, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	if _, err := DefaultParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expression, err)
	}

	engine := &Engine{
		name:       "agenda",
		expression: expression,
		job:        job,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.cron = cron.New(
		cron.WithParser(DefaultParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return engine, nil
}

// Start schedules the job. The engine stops on its own once ctx is done.
func (e *Engine) Start(ctx context.Context) error {
	if e == nil {
		return errors.New("engine is nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return errors.New("engine already started")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	entryID, err := e.cron.AddFunc(e.expression, func() {
		if err := e.Run(ctx); err != nil {
			e.logger.Error("scheduled job failed", "engine", e.name, "error", err)
		}
	})

	if err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}

	e.entryID = entryID
	e.cron.Start()
	e.started = true

	e.logger.Info("engine started", "engine", e.name, "schedule", e.expression)

	go func() {
		<-ctx.Done()
		e.Stop()
	}()

	return nil
}

// Stop halts the schedule and waits for a running job to return.
func (e *Engine) Stop() {
	if e == nil {
		return
	}

	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return
	}

	e.cron.Remove(e.entryID)
	done := e.cron.Stop()
	e.started = false
	e.mu.Unlock()

	<-done.Done()

	e.logger.Info("engine stopped", "engine", e.name)
}

// Run executes the job once, right now.
func (e *Engine) Run(ctx context.Context) error {
	if e == nil {
		return errors.New("engine is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if e.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.jobTimeout)
		defer cancel()
	}

	return e.job(ctx)
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.started
}

// Next reports when the job fires next; zero when the engine is stopped.
func (e *Engine) Next() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return time.Time{}
	}

	return e.cron.Entry(e.entryID).Next
}
