package htn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/htn/internal/runtime"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/dsl"
	"github.com/aretw0/htn/pkg/library"
	"github.com/aretw0/htn/pkg/ports"
)

// DefaultLockTTL bounds how long a world lock survives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// Engine is the high-level entry point for the HTN library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	library ports.ActionLibrary
	locker  ports.DistributedLocker
	lockTTL time.Duration
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Hooks from repeated options are chained in order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLibrary replaces the default action library.
func WithLibrary(lib ports.ActionLibrary) Option {
	return func(e *Engine) {
		e.library = lib
	}
}

// WithLocker serializes ExecuteOn and WithWorldLock calls that target the same world.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(e *Engine) {
		e.locker = locker
		e.lockTTL = ttl
	}
}

// New initializes a new Engine with the built-in library.
func New(opts ...Option) *Engine {
	eng := &Engine{
		library: library.Default(),
		lockTTL: DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng
}

// Execute runs the action against the world and returns its outcome.
func (e *Engine) Execute(ctx context.Context, action *domain.Action, inputs []any, world domain.World) domain.Result {
	res := e.runtime.Execute(ctx, action, inputs, world)
	if res.Success {
		e.logger.InfoContext(ctx, "action succeeded", "action", action.Name)
	} else {
		e.logger.WarnContext(ctx, "action failed", "action", res.Action, "reason", res.Reason)
	}
	return res
}

// WithWorldLock runs fn while holding the lock of worldID.
// Without a configured locker fn runs directly.
func (e *Engine) WithWorldLock(ctx context.Context, worldID string, fn func(ctx context.Context) error) error {
	if e.locker == nil {
		return fn(ctx)
	}

	unlock, err := e.locker.Lock(ctx, worldID, e.lockTTL)
	if err != nil {
		return fmt.Errorf("failed to lock world %s: %w", worldID, err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			e.logger.ErrorContext(ctx, "failed to unlock world", "world", worldID, "error", err)
		}
	}()

	return fn(ctx)
}

// ExecuteOn is Execute holding the lock of worldID for the duration of the run.
// Without a configured locker it is equivalent to Execute.
func (e *Engine) ExecuteOn(ctx context.Context, worldID string, action *domain.Action, inputs []any, world domain.World) (domain.Result, error) {
	var res domain.Result
	err := e.WithWorldLock(ctx, worldID, func(ctx context.Context) error {
		res = e.Execute(ctx, action, inputs, world)
		return nil
	})
	return res, err
}

// Lookup constructs a library action by name.
func (e *Engine) Lookup(name string) (*domain.Action, error) {
	return e.library.Lookup(name)
}

// Group builds the learned composite of the named actions, folded left to right.
func (e *Engine) Group(names ...string) (*domain.Action, error) {
	p := dsl.New(e.library).Group()
	for _, n := range names {
		p.Do(n)
	}
	return p.Build()
}

// Sequence builds a composite running the named actions on consecutive input slices.
func (e *Engine) Sequence(name string, names ...string) (*domain.Action, error) {
	p := dsl.New(e.library).Sequence(name)
	for _, n := range names {
		p.Do(n)
	}
	return p.Build()
}

// Library returns the action library used by the engine.
func (e *Engine) Library() ports.ActionLibrary {
	return e.library
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}
