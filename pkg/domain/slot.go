package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind is the domain type tag of a Slot (e.g. Item, Container).
type Kind string

const (
	KindItem      Kind = "Item"
	KindContainer Kind = "Container"
)

// Granularity selects how strictly two slots are compared.
type Granularity string

const (
	// ByName compares labels only.
	ByName Granularity = "name"
	// ByType compares labels and kinds.
	ByType Granularity = "type"
	// ByBinding compares labels, kinds and bound values.
	ByBinding Granularity = "binding"
)

// ParseGranularity normalizes a selector such as " Type " or "slot name".
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return ByName, nil
	case "type":
		return ByType, nil
	case "binding", "slot name":
		return ByBinding, nil
	}
	return "", fmt.Errorf("%w: unknown comparison granularity %q", ErrInvalidArgument, s)
}

// Identifier is implemented by bound values that carry a stable identity.
type Identifier interface {
	Identity() string
}

// Slot is a typed, optionally bound placeholder used as an action input or output.
// Name and kind are fixed at construction; only the binding changes.
type Slot struct {
	name    string
	kind    Kind
	binding any
}

// NewSlot creates an unbound slot.
func NewSlot(name string, kind Kind) Slot {
	return Slot{name: name, kind: kind}
}

func (s Slot) Name() string { return s.name }
func (s Slot) Kind() Kind { return s.kind }
func (s Slot) Binding() any { return s.binding }

// Bound reports whether the slot carries a value.
func (s Slot) Bound() bool { return s.binding != nil }

// Bind sets the bound value.
func (s *Slot) Bind(v any) { s.binding = v }

// Unbind clears the bound value.
func (s *Slot) Unbind() { s.binding = nil }

// Clone returns an independent copy of the slot.
func (s Slot) Clone() Slot {
	return Slot{name: s.name, kind: s.kind, binding: s.binding}
}

// Compare reports whether two slots are equal at the given granularity.
// The selector is normalized, so "Type" and " type" are equivalent.
func (s Slot) Compare(other Slot, g Granularity) (bool, error) {
	level, err := ParseGranularity(string(g))
	if err != nil {
		return false, err
	}

	switch level {
	case ByName:
		return s.name == other.name, nil
	case ByType:
		return s.name == other.name && s.kind == other.kind, nil
	default:
		return s.name == other.name && s.kind == other.kind && sameBinding(s.binding, other.binding), nil
	}
}

func (s Slot) String() string {
	if s.binding == nil {
		return fmt.Sprintf("%s:%s", s.name, s.kind)
	}
	return fmt.Sprintf("%s:%s=%s", s.name, s.kind, identityOf(s.binding))
}

func cloneSlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = s.Clone()
	}
	return out
}

func sameBinding(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ai, aok := a.(Identifier)
	bi, bok := b.(Identifier)
	if aok && bok {
		return ai.Identity() == bi.Identity()
	}
	if aok != bok {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func identityOf(v any) string {
	if id, ok := v.(Identifier); ok {
		return id.Identity()
	}
	return fmt.Sprint(v)
}
