package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventActionStart  EventType = "action_start"
	EventActionFinish EventType = "action_finish"
)

// ActionEvent describes one action invocation.
type ActionEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Action    string        `json:"action"`
	Variant   Variant       `json:"variant"`
	Depth     int           `json:"depth"`
	Inputs    int           `json:"inputs"`
	Success   bool          `json:"success,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks never change the outcome of an execution.
type LifecycleHooks struct {
	OnActionStart  func(context.Context, *ActionEvent)
	OnActionFinish func(context.Context, *ActionEvent)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnActionStart:  chain(h.OnActionStart, other.OnActionStart),
		OnActionFinish: chain(h.OnActionFinish, other.OnActionFinish),
	}
}

func chain(a, b func(context.Context, *ActionEvent)) func(context.Context, *ActionEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *ActionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
