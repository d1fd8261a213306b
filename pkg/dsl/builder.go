package dsl

import (
	"fmt"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/ports"
)

// Mode selects how the parts of a plan are composed.
type Mode string

const (
	// ModeSequence composes parts with AddSubtask; inputs are partitioned.
	ModeSequence Mode = "sequence"
	// ModeGroup folds parts left to right with GroupWith; inputs are shared.
	ModeGroup Mode = "group"
)

// ParseMode accepts "sequence" and "group". The empty string means group.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeGroup:
		return ModeGroup, nil
	case ModeSequence:
		return ModeSequence, nil
	}
	return "", fmt.Errorf("%w: unknown plan mode %q", domain.ErrInvalidArgument, s)
}

// Builder manages plan construction against an action library.
type Builder struct {
	library ports.ActionLibrary
}

// New creates a new plan builder.
func New(library ports.ActionLibrary) *Builder {
	return &Builder{library: library}
}

// Sequence starts a named composite whose parts run on consecutive input slices.
func (b *Builder) Sequence(name string) *PlanBuilder {
	return &PlanBuilder{builder: b, name: name, mode: ModeSequence}
}

// Group starts a learned composite; its name is derived from the parts.
func (b *Builder) Group() *PlanBuilder {
	return &PlanBuilder{builder: b, mode: ModeGroup}
}

// Plan starts a plan in the given mode.
func (b *Builder) Plan(name string, mode Mode) *PlanBuilder {
	return &PlanBuilder{builder: b, name: name, mode: mode}
}

// Sequence composes already built actions with AddSubtask.
func Sequence(name string, parts ...*domain.Action) *domain.Action {
	c := domain.NewComposite(name)
	for _, p := range parts {
		c.AddSubtask(p)
	}
	return c
}

// Group folds already built actions with GroupWith: ((a∘b)∘c)...
// A single part is returned unchanged.
func Group(parts ...*domain.Action) (*domain.Action, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: nothing to group", domain.ErrInvalidArgument)
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = domain.GroupWith(acc, p)
	}
	return acc, nil
}
