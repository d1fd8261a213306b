package ports

import (
	"context"

	"github.com/aretw0/htn/pkg/domain"
)

// Inventory is a container whose contents can be listed back.
// Adapters return it so callers can report what ended up where.
type Inventory interface {
	domain.Container

	// Items returns the identities of the stored items, in insertion order.
	Items(ctx context.Context) ([]string, error)
}

// WorldBackend creates the world and containers for one execution.
type WorldBackend interface {
	World(ctx context.Context, id string) (domain.World, error)
	Container(ctx context.Context, id string) (Inventory, error)
}
