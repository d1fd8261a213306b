package dto

import "github.com/aretw0/htn/pkg/domain"

// SlotView is the wire form of a Slot.
type SlotView struct {
	Name    string `json:"name" mapstructure:"name"`
	Kind    string `json:"kind" mapstructure:"kind"`
	Binding string `json:"binding,omitempty" mapstructure:"binding"`
}

// ActionView is the wire form of an action tree.
// Behaviors are not serialized.
type ActionView struct {
	Name         string       `json:"name" mapstructure:"name"`
	Variant      string       `json:"variant" mapstructure:"variant"`
	SharedInputs bool         `json:"shared_inputs,omitempty" mapstructure:"shared_inputs"`
	Inputs       []SlotView   `json:"inputs" mapstructure:"inputs"`
	Outputs      []SlotView   `json:"outputs" mapstructure:"outputs"`
	Subtasks     []ActionView `json:"subtasks,omitempty" mapstructure:"subtasks"`
}

// FromAction converts an action and its subtasks.
func FromAction(a *domain.Action) ActionView {
	v := ActionView{
		Name:         a.Name,
		Variant:      string(a.Variant),
		SharedInputs: a.SharedInputs,
		Inputs:       fromSlots(a.Inputs),
		Outputs:      fromSlots(a.Outputs),
	}
	for _, sub := range a.Subtasks {
		v.Subtasks = append(v.Subtasks, FromAction(sub))
	}
	return v
}

func fromSlots(slots []domain.Slot) []SlotView {
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = SlotView{Name: s.Name(), Kind: string(s.Kind())}
		if s.Bound() {
			if id, ok := s.Binding().(domain.Identifier); ok {
				out[i].Binding = id.Identity()
			}
		}
	}
	return out
}
