package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/htn/pkg/domain"
)

// Engine interprets action trees against a World.
// Execution is synchronous: subtasks run strictly in declaration order and
// the first failure aborts the whole run. Nothing is compensated.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the action with the given input vector.
// The world is mutated only by primitives; a failure leaves in place
// whatever the already completed subtasks did.
func (e *Engine) Execute(ctx context.Context, action *domain.Action, inputs []any, world domain.World) domain.Result {
	if action == nil {
		return domain.Fail("no action to execute")
	}
	return e.run(ctx, action, inputs, world, 0)
}

func (e *Engine) run(ctx context.Context, action *domain.Action, inputs []any, world domain.World, depth int) domain.Result {
	started := e.now()
	e.emit(ctx, e.hooks.OnActionStart, &domain.ActionEvent{
		Timestamp: started,
		Type:      domain.EventActionStart,
		Action:    action.Name,
		Variant:   action.Variant,
		Depth:     depth,
		Inputs:    len(inputs),
	})

	var res domain.Result
	if action.IsPrimitive() {
		res = e.runPrimitive(ctx, action, inputs, world)
	} else {
		res = e.runComposite(ctx, action, inputs, world, depth)
	}
	if !res.Success && res.Action == "" {
		res.Action = action.Name
	}

	finished := e.now()
	e.emit(ctx, e.hooks.OnActionFinish, &domain.ActionEvent{
		Timestamp: finished,
		Type:      domain.EventActionFinish,
		Action:    action.Name,
		Variant:   action.Variant,
		Depth:     depth,
		Inputs:    len(inputs),
		Success:   res.Success,
		Reason:    res.Reason,
		Duration:  finished.Sub(started),
	})
	return res
}

func (e *Engine) runPrimitive(ctx context.Context, action *domain.Action, inputs []any, world domain.World) domain.Result {
	if action.Behavior == nil {
		return domain.Fail(fmt.Sprintf("primitive %q has no behavior", action.Name))
	}
	res := action.Behavior.Run(ctx, inputs, world)
	if res.Success {
		e.logger.DebugContext(ctx, "primitive succeeded", "action", action.Name)
	} else {
		e.logger.InfoContext(ctx, "primitive failed", "action", action.Name, "reason", res.Reason)
	}
	return res
}

func (e *Engine) runComposite(ctx context.Context, action *domain.Action, inputs []any, world domain.World, depth int) domain.Result {
	if len(action.Subtasks) == 0 {
		return domain.Fail(fmt.Sprintf("composite %q has no subtasks", action.Name))
	}

	e.logger.DebugContext(ctx, "running composite",
		"action", action.Name,
		"subtasks", len(action.Subtasks),
		"shared_inputs", action.SharedInputs,
	)

	cursor := 0
	var outputs []any
	for _, sub := range action.Subtasks {
		args := inputs
		if !action.SharedInputs {
			end := cursor + len(sub.Inputs)
			if end > len(inputs) {
				return domain.Fail(fmt.Sprintf("insufficient inputs for %s", sub.Name))
			}
			args = inputs[cursor:end:end]
			cursor = end
		}

		res := e.run(ctx, sub, args, world, depth+1)
		if !res.Success {
			return res
		}
		if res.Payload != nil {
			outputs = append(outputs, res.Payload)
		}
	}

	if len(action.Outputs) == 0 {
		return domain.Succeed(nil)
	}
	return domain.Succeed(collapse(outputs))
}

// collapse returns nil for no outputs, the element itself for one, the list otherwise.
func collapse(outputs []any) any {
	switch len(outputs) {
	case 0:
		return nil
	case 1:
		return outputs[0]
	}
	return outputs
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.ActionEvent), ev *domain.ActionEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}
