// Package tests provides reusable contract suites for implementations of the ports interfaces.
package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunWorldContract verifies that a World implementation adheres to the interface contract.
// The world must start with empty hands.
func RunWorldContract(t *testing.T, world domain.World) {
	ctx := context.Background()

	t.Run("Starts Empty", func(t *testing.T) {
		held, err := world.Holding(ctx)
		require.NoError(t, err)
		assert.Empty(t, held)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, world.SetHolding(ctx, "cup"))
		held, err := world.Holding(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cup", held)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, world.SetHolding(ctx, "cup"))
		require.NoError(t, world.SetHolding(ctx, ""))
		held, err := world.Holding(ctx)
		require.NoError(t, err)
		assert.Empty(t, held)
	})
}

// RunInventoryContract verifies that an Inventory implementation adheres to the interface contract.
// The inventory must start empty and be identified by wantID.
func RunInventoryContract(t *testing.T, inv ports.Inventory, wantID string) {
	ctx := context.Background()

	t.Run("Identity", func(t *testing.T) {
		assert.Equal(t, wantID, inv.Identity())
	})

	t.Run("Add Preserves Order", func(t *testing.T) {
		items, err := inv.Items(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		require.NoError(t, inv.AddItem(ctx, &domain.Item{ID: "cup"}))
		require.NoError(t, inv.AddItem(ctx, &domain.Item{ID: "mug"}))

		items, err = inv.Items(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"cup", "mug"}, items)
	})
}

// RunLockerContract verifies mutual exclusion and context cancellation.
func RunLockerContract(t *testing.T, locker ports.DistributedLocker) {
	ctx := context.Background()

	t.Run("Exclusive", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, "world-1", time.Minute)
		require.NoError(t, err)

		waitCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(waitCtx, "world-1", time.Minute)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		require.NoError(t, unlock(ctx))
	})

	t.Run("Release Lets Next In", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, "world-2", time.Minute)
		require.NoError(t, err)

		var wg sync.WaitGroup
		acquired := make(chan struct{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			next, err := locker.Lock(ctx, "world-2", time.Minute)
			if err == nil {
				close(acquired)
				_ = next(ctx)
			}
		}()

		require.NoError(t, unlock(ctx))
		select {
		case <-acquired:
		case <-time.After(2 * time.Second):
			t.Fatal("second Lock did not acquire after release")
		}
		wg.Wait()
	})

	t.Run("Independent Keys", func(t *testing.T) {
		a, err := locker.Lock(ctx, "world-a", time.Minute)
		require.NoError(t, err)
		b, err := locker.Lock(ctx, "world-b", time.Minute)
		require.NoError(t, err)
		require.NoError(t, b(ctx))
		require.NoError(t, a(ctx))
	})
}
