package memory

import (
	"context"
	"sync"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/ports"
)

// Backend implements ports.WorldBackend in memory.
// Worlds and bins are created on first use and reused afterwards.
type Backend struct {
	mu     sync.Mutex
	worlds map[string]*World
	bins   map[string]*Bin
}

// NewBackend creates an empty backend.
func NewBackend() *Backend {
	return &Backend{
		worlds: make(map[string]*World),
		bins:   make(map[string]*Bin),
	}
}

// World returns the world with the given id.
func (b *Backend) World(ctx context.Context, id string) (domain.World, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.worlds[id]
	if !ok {
		w = NewWorld()
		b.worlds[id] = w
	}
	return w, nil
}

// Container returns the bin with the given id.
func (b *Backend) Container(ctx context.Context, id string) (ports.Inventory, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	bin, ok := b.bins[id]
	if !ok {
		bin = NewBin(id)
		b.bins[id] = bin
	}
	return bin, nil
}
