package library

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/htn/pkg/domain"
)

// Constructor builds a fresh action. Every call must allocate new slot lists.
type Constructor func() *domain.Action

// Registry manages the available actions by name.
// Lookups are case-insensitive. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Constructor
	names   map[string]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Constructor),
		names:   make(map[string]string),
	}
}

// Default returns a registry holding the built-in primitives.
func Default() *Registry {
	r := NewRegistry()
	r.Register(PickupName, Pickup)
	r.Register(StoreName, Store)
	return r
}

// Register adds an action constructor to the registry.
// If an action with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalize(name)
	r.actions[key] = fn
	r.names[key] = name
}

// Lookup constructs the named action.
func (r *Registry) Lookup(name string) (*domain.Action, error) {
	r.mu.RLock()
	fn, ok := r.actions[normalize(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActionNotFound, name)
	}
	return fn(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
