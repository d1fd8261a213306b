package ports

import (
	"context"

	"github.com/aretw0/htn/pkg/domain"
)

// Executor runs action trees against a world.
// This is the interface used by adapters (e.g., HTTP, MCP) that build worlds per request.
type Executor interface {
	Execute(ctx context.Context, action *domain.Action, inputs []any, world domain.World) domain.Result
}

// ActionLibrary resolves action names into freshly constructed actions.
type ActionLibrary interface {
	// Lookup returns a new action for the name.
	// Returns domain.ErrActionNotFound if the name is unknown.
	Lookup(name string) (*domain.Action, error)

	// Names lists the known actions.
	Names() []string
}
