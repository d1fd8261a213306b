package domain

import (
	"context"
	"fmt"
)

// Variant distinguishes directly executable actions from composed ones.
type Variant string

const (
	VariantPrimitive Variant = "primitive"
	VariantComposite Variant = "composite"
	// VariantLearned marks composites produced by GroupWith.
	VariantLearned Variant = "learned"
)

// Behavior is the executable logic of a primitive action.
// It is the extension point where physical actuation is triggered.
type Behavior interface {
	Run(ctx context.Context, inputs []any, world World) Result
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(ctx context.Context, inputs []any, world World) Result

func (f BehaviorFunc) Run(ctx context.Context, inputs []any, world World) Result {
	return f(ctx, inputs, world)
}

// Action is a unit of behavior in the task network.
// Once built, an action's slots and subtasks are treated as immutable during execution.
type Action struct {
	Name    string
	Variant Variant

	Inputs  []Slot
	Outputs []Slot

	// Subtasks is empty for primitives.
	Subtasks []*Action

	// SharedInputs makes every subtask receive the full input vector instead
	// of a contiguous slice. Only GroupWith sets it.
	SharedInputs bool

	// Behavior is required for primitives and ignored for composites.
	Behavior Behavior
}

// NewPrimitive creates a primitive action. The slot lists are copied.
func NewPrimitive(name string, behavior Behavior, inputs, outputs []Slot) *Action {
	return &Action{
		Name:     name,
		Variant:  VariantPrimitive,
		Inputs:   cloneSlots(inputs),
		Outputs:  cloneSlots(outputs),
		Subtasks: []*Action{},
		Behavior: behavior,
	}
}

// NewComposite creates an empty composite; populate it with AddSubtask.
func NewComposite(name string) *Action {
	return newComposite(name, VariantComposite)
}

// NewLearned creates an empty composite of the learned variant.
func NewLearned(name string) *Action {
	return newComposite(name, VariantLearned)
}

func newComposite(name string, v Variant) *Action {
	return &Action{
		Name:     name,
		Variant:  v,
		Inputs:   []Slot{},
		Outputs:  []Slot{},
		Subtasks: []*Action{},
	}
}

// IsPrimitive reports whether the action runs its own Behavior.
func (a *Action) IsPrimitive() bool {
	return a.Variant == VariantPrimitive
}

// AddSubtask appends copies of the subtask's inputs and outputs to the
// action's own lists and takes ownership of the subtask.
// No slot deduplication happens here.
func (a *Action) AddSubtask(subtask *Action) {
	if a.Variant == VariantPrimitive {
		a.Variant = VariantComposite
		a.Behavior = nil
	}
	a.Inputs = append(a.Inputs, cloneSlots(subtask.Inputs)...)
	a.Outputs = append(a.Outputs, cloneSlots(subtask.Outputs)...)
	a.Subtasks = append(a.Subtasks, subtask)
}

// SlotNames returns the identities bound to the action's inputs, skipping unbound slots.
func (a *Action) SlotNames() []string {
	names := make([]string, 0, len(a.Inputs))
	for _, in := range a.Inputs {
		if in.Bound() {
			names = append(names, identityOf(in.Binding()))
		}
	}
	return names
}

// Clone returns a deep copy of the action tree. Behaviors are shared.
func (a *Action) Clone() *Action {
	c := &Action{
		Name:         a.Name,
		Variant:      a.Variant,
		Inputs:       cloneSlots(a.Inputs),
		Outputs:      cloneSlots(a.Outputs),
		Subtasks:     make([]*Action, 0, len(a.Subtasks)),
		SharedInputs: a.SharedInputs,
		Behavior:     a.Behavior,
	}
	for _, sub := range a.Subtasks {
		c.Subtasks = append(c.Subtasks, sub.Clone())
	}
	return c
}

// Validate checks the structural invariants of the action tree.
func (a *Action) Validate() error {
	if a.IsPrimitive() {
		if len(a.Subtasks) > 0 {
			return fmt.Errorf("%w: primitive %q has subtasks", ErrInvalidArgument, a.Name)
		}
		if a.Behavior == nil {
			return fmt.Errorf("%w: primitive %q has no behavior", ErrInvalidArgument, a.Name)
		}
		return nil
	}
	if len(a.Subtasks) == 0 {
		return fmt.Errorf("%w: composite %q has no subtasks", ErrInvalidArgument, a.Name)
	}
	for _, sub := range a.Subtasks {
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Action) String() string {
	return fmt.Sprintf("%s(%s) in=%v out=%v", a.Name, a.Variant, a.Inputs, a.Outputs)
}
