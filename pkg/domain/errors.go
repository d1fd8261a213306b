package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed selectors or configuration.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSlotMismatch is returned when bound values do not fit an action's declared inputs.
var ErrSlotMismatch = errors.New("slot mismatch")

// ErrPreconditionFailed classifies expected domain failures reported by primitives.
var ErrPreconditionFailed = errors.New("precondition failed")

// ErrActionNotFound is returned when a library has no action with the requested name.
var ErrActionNotFound = errors.New("action not found")

// SlotMismatchError names the first position at which matching failed.
type SlotMismatchError struct {
	Position int
	Expected *Slot // nil when the caller supplied more values than declared
	Got      *Slot // nil when the caller supplied fewer values than declared
}

func (e *SlotMismatchError) Error() string {
	switch {
	case e.Expected == nil:
		return fmt.Sprintf("slot mismatch at position %d: unexpected %s", e.Position, e.Got)
	case e.Got == nil:
		return fmt.Sprintf("slot mismatch at position %d: missing %s", e.Position, e.Expected)
	}
	return fmt.Sprintf("slot mismatch at position %d: expected %s, got %s", e.Position, e.Expected, e.Got)
}

func (e *SlotMismatchError) Unwrap() error { return ErrSlotMismatch }

// FailureError is the error form of a failed Result.
type FailureError struct {
	Action string
	Reason string
}

func (e *FailureError) Error() string {
	if e.Action == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

func (e *FailureError) Unwrap() error { return ErrPreconditionFailed }
