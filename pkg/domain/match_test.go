package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bin struct{ id string }

func (b *bin) Identity() string { return b.id }
func (b *bin) AddItem(context.Context, *domain.Item) error { return nil }

func TestMatchSlots(t *testing.T) {
	cup := &domain.Item{ID: "cup"}
	box := &bin{id: "box"}

	store := prim("Store", slots("store-item", "Item", "store-container", "Container"), nil)
	require.NoError(t, store.Bind([]any{cup, box}))

	bound, err := store.BindInputs([]any{&domain.Item{ID: "cup"}, &bin{id: "box"}})
	require.NoError(t, err)
	assert.NoError(t, store.MatchSlots(bound))

	t.Run("different binding", func(t *testing.T) {
		other, err := store.BindInputs([]any{cup, &bin{id: "crate"}})
		require.NoError(t, err)

		err = store.MatchSlots(other)
		require.ErrorIs(t, err, domain.ErrSlotMismatch)
		var mismatch *domain.SlotMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 1, mismatch.Position)
	})

	t.Run("too few values", func(t *testing.T) {
		err := store.MatchSlots(bound[:1])
		var mismatch *domain.SlotMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 1, mismatch.Position)
		assert.Nil(t, mismatch.Got)
	})

	t.Run("too many values", func(t *testing.T) {
		extra := append(append([]domain.Slot{}, bound...), domain.NewSlot("extra", domain.KindItem))
		err := store.MatchSlots(extra)
		var mismatch *domain.SlotMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 2, mismatch.Position)
		assert.Nil(t, mismatch.Expected)
	})

	t.Run("unbound declaration rejects bound value", func(t *testing.T) {
		fresh := prim("Store", slots("store-item", "Item", "store-container", "Container"), nil)
		err := fresh.MatchSlots(bound)
		assert.ErrorIs(t, err, domain.ErrSlotMismatch)
	})
}

func TestBind_WrongCount(t *testing.T) {
	a := prim("a", slots("a1", "Item"), nil)
	assert.ErrorIs(t, a.Bind(nil), domain.ErrSlotMismatch)
	_, err := a.BindInputs([]any{1, 2})
	assert.ErrorIs(t, err, domain.ErrSlotMismatch)
}

func TestCheckInputs(t *testing.T) {
	a := prim("a", slots("item", "Item", "container", "Container"), nil)
	cup := &domain.Item{ID: "cup"}
	box := &bin{id: "box"}

	assert.NoError(t, a.CheckInputs([]any{cup, box}))

	var mismatch *domain.SlotMismatchError
	require.ErrorAs(t, a.CheckInputs([]any{box, cup}), &mismatch)
	assert.Equal(t, 0, mismatch.Position)

	require.ErrorAs(t, a.CheckInputs([]any{cup}), &mismatch)
	assert.Equal(t, 1, mismatch.Position)

	require.ErrorAs(t, a.CheckInputs([]any{cup, box, cup}), &mismatch)
	assert.Equal(t, 2, mismatch.Position)
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, domain.Succeed("x").Err())

	r := domain.Fail("already holding")
	r.Action = "Pick up"
	err := r.Err()
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Equal(t, "Pick up: already holding", err.Error())
}
