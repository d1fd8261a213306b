package domain

import "fmt"

// MatchSlots validates bound values against the declared inputs, position by
// position, at binding granularity. It does not execute anything.
func (a *Action) MatchSlots(bound []Slot) error {
	n := max(len(bound), len(a.Inputs))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a.Inputs):
			got := bound[i]
			return &SlotMismatchError{Position: i, Got: &got}
		case i >= len(bound):
			want := a.Inputs[i]
			return &SlotMismatchError{Position: i, Expected: &want}
		}
		ok, err := bound[i].Compare(a.Inputs[i], ByBinding)
		if err != nil {
			return err
		}
		if !ok {
			want, got := a.Inputs[i], bound[i]
			return &SlotMismatchError{Position: i, Expected: &want, Got: &got}
		}
	}
	return nil
}

// BindInputs returns a copy of the declared inputs with values bound positionally.
func (a *Action) BindInputs(values []any) ([]Slot, error) {
	if len(values) != len(a.Inputs) {
		return nil, fmt.Errorf("%w: %s expects %d inputs, got %d", ErrSlotMismatch, a.Name, len(a.Inputs), len(values))
	}
	bound := cloneSlots(a.Inputs)
	for i := range bound {
		bound[i].Bind(values[i])
	}
	return bound, nil
}

// Bind binds values to the action's own input slots in place.
func (a *Action) Bind(values []any) error {
	if len(values) != len(a.Inputs) {
		return fmt.Errorf("%w: %s expects %d inputs, got %d", ErrSlotMismatch, a.Name, len(a.Inputs), len(values))
	}
	for i := range a.Inputs {
		a.Inputs[i].Bind(values[i])
	}
	return nil
}

// CheckInputs verifies that values fit the declared inputs by count and kind.
// Unlike MatchSlots it does not require the declared slots to be bound.
func (a *Action) CheckInputs(values []any) error {
	for i, in := range a.Inputs {
		if i >= len(values) {
			want := in
			return &SlotMismatchError{Position: i, Expected: &want}
		}
		if KindOf(values[i]) != in.Kind() {
			want := in
			got := NewSlot(in.Name(), KindOf(values[i]))
			got.Bind(values[i])
			return &SlotMismatchError{Position: i, Expected: &want, Got: &got}
		}
	}
	if len(values) > len(a.Inputs) {
		got := NewSlot("", KindOf(values[len(a.Inputs)]))
		got.Bind(values[len(a.Inputs)])
		return &SlotMismatchError{Position: len(a.Inputs), Got: &got}
	}
	return nil
}

// KindOf infers the slot kind of a runtime value. Unknown values yield "".
func KindOf(v any) Kind {
	switch v.(type) {
	case *Item:
		return KindItem
	case Container:
		return KindContainer
	}
	return ""
}
