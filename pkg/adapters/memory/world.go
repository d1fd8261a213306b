package memory

import (
	"context"
	"sync"

	"github.com/aretw0/htn/pkg/domain"
)

// World implements domain.World in memory.
// Safe for concurrent use, although the engine never calls it concurrently.
type World struct {
	mu      sync.RWMutex
	holding string
}

// NewWorld creates a world with empty hands.
func NewWorld() *World {
	return &World{}
}

// Holding returns the held item identity, or "".
func (w *World) Holding(ctx context.Context) (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.holding, nil
}

// SetHolding replaces the held item identity.
func (w *World) SetHolding(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.holding = id
	return nil
}

// Bin implements domain.Container in memory.
type Bin struct {
	id    string
	mu    sync.RWMutex
	items []*domain.Item
}

// NewBin creates an empty container.
func NewBin(id string) *Bin {
	return &Bin{id: id, items: []*domain.Item{}}
}

// Identity implements domain.Identifier.
func (b *Bin) Identity() string { return b.id }

// AddItem stores the item.
func (b *Bin) AddItem(ctx context.Context, item *domain.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, item)
	return nil
}

// Items returns the identities of the stored items, in insertion order.
func (b *Bin) Items(ctx context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.items))
	for _, it := range b.items {
		ids = append(ids, it.ID)
	}
	return ids, nil
}

// Contains reports whether an item with the given identity was stored.
func (b *Bin) Contains(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, it := range b.items {
		if it.ID == id {
			return true
		}
	}
	return false
}
