package domain

import "context"

// World is the caller-owned mutable state consulted and mutated by primitives.
// The core relies on nothing but the held-item reference.
// Implementations are not required to be safe for concurrent use.
type World interface {
	// Holding returns the identity of the held item, or "" when the hands are empty.
	Holding(ctx context.Context) (string, error)
	// SetHolding replaces the held reference. An empty id clears it.
	SetHolding(ctx context.Context, id string) error
}

// Container is a value able to accept items.
type Container interface {
	Identifier
	AddItem(ctx context.Context, item *Item) error
}

// Item is a physical object a robot can manipulate.
type Item struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Manipulable bool   `json:"manipulable" yaml:"manipulable" mapstructure:"manipulable"`
}

// Identity implements Identifier.
func (i *Item) Identity() string { return i.ID }
