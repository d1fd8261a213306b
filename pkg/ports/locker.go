package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker defines the interface for concurrency control around a world.
// The execution engine assumes a single writer per world; callers that may
// run several executions against the same world serialize them with a locker.
type DistributedLocker interface {
	// Lock attempts to acquire a lock for the given key (e.g., world ID).
	// It blocks until the lock is acquired, the context is canceled, or the TTL expires (implementation specific).
	// Returns an UnlockFunc that MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
