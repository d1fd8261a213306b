package library_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/htn/internal/runtime"
	"github.com/aretw0/htn/pkg/adapters/memory"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenWorld struct{}

func (brokenWorld) Holding(context.Context) (string, error) { return "", errors.New("offline") }
func (brokenWorld) SetHolding(context.Context, string) error { return errors.New("offline") }

func TestPickup_Succeeds(t *testing.T) {
	ctx := context.Background()
	world := memory.NewWorld()
	cup := &domain.Item{ID: "cup", Manipulable: true}

	res := runtime.NewEngine().Execute(ctx, library.Pickup(), []any{cup}, world)

	require.True(t, res.Success, res.Reason)
	assert.Same(t, cup, res.Payload)
	assert.False(t, cup.Manipulable)
	held, _ := world.Holding(ctx)
	assert.Equal(t, "cup", held)
}

func TestPickup_AlreadyHolding(t *testing.T) {
	ctx := context.Background()
	world := memory.NewWorld()
	require.NoError(t, world.SetHolding(ctx, "cup"))
	mug := &domain.Item{ID: "mug", Manipulable: true}

	res := runtime.NewEngine().Execute(ctx, library.Pickup(), []any{mug}, world)

	assert.False(t, res.Success)
	assert.Equal(t, library.ReasonAlreadyHolding, res.Reason)
	assert.True(t, mug.Manipulable)
	held, _ := world.Holding(ctx)
	assert.Equal(t, "cup", held)
}

func TestPickup_NotManipulable(t *testing.T) {
	ctx := context.Background()
	world := memory.NewWorld()
	anvil := &domain.Item{ID: "anvil"}

	res := runtime.NewEngine().Execute(ctx, library.Pickup(), []any{anvil}, world)

	assert.False(t, res.Success)
	assert.Equal(t, library.ReasonNotManipulable, res.Reason)
	held, _ := world.Holding(ctx)
	assert.Empty(t, held)
}

func TestPickup_ItemWithoutID(t *testing.T) {
	ctx := context.Background()
	world := memory.NewWorld()
	e := runtime.NewEngine()
	anonymous := &domain.Item{Manipulable: true}

	res := e.Execute(ctx, library.Pickup(), []any{anonymous}, world)
	assert.False(t, res.Success)
	assert.Equal(t, "invalid input: item without id", res.Reason)
	assert.True(t, anonymous.Manipulable)

	held, err := world.Holding(ctx)
	require.NoError(t, err)
	assert.Empty(t, held)

	res = e.Execute(ctx, library.Store(), []any{anonymous, memory.NewBin("box")}, world)
	assert.Equal(t, "invalid input: item without id", res.Reason)
}

func TestPickup_Interface(t *testing.T) {
	p := library.Pickup()
	require.Len(t, p.Inputs, 1)
	require.Len(t, p.Outputs, 1)
	assert.Equal(t, "pickup-target", p.Inputs[0].Name())
	assert.Equal(t, domain.KindItem, p.Outputs[0].Kind())

	p.Inputs[0].Bind("x")
	assert.False(t, p.Outputs[0].Bound(), "input and output slots are independent")
	assert.False(t, library.Pickup().Inputs[0].Bound(), "each construction is fresh")
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	cup := &domain.Item{ID: "cup"}

	t.Run("holding the item", func(t *testing.T) {
		world := memory.NewWorld()
		require.NoError(t, world.SetHolding(ctx, "cup"))
		box := memory.NewBin("box")

		res := runtime.NewEngine().Execute(ctx, library.Store(), []any{cup, box}, world)

		require.True(t, res.Success, res.Reason)
		assert.Nil(t, res.Payload)
		assert.True(t, box.Contains("cup"))
		held, _ := world.Holding(ctx)
		assert.Empty(t, held)
	})

	t.Run("holding something else", func(t *testing.T) {
		world := memory.NewWorld()
		require.NoError(t, world.SetHolding(ctx, "mug"))
		box := memory.NewBin("box")

		res := runtime.NewEngine().Execute(ctx, library.Store(), []any{cup, box}, world)

		assert.False(t, res.Success)
		assert.Equal(t, library.ReasonNotHolding, res.Reason)
		assert.False(t, box.Contains("cup"))
	})

	t.Run("empty hands", func(t *testing.T) {
		res := runtime.NewEngine().Execute(ctx, library.Store(), []any{cup, memory.NewBin("box")}, memory.NewWorld())
		assert.Equal(t, library.ReasonNotHolding, res.Reason)
	})
}

func TestPrimitives_MalformedInputs(t *testing.T) {
	ctx := context.Background()
	e := runtime.NewEngine()
	cup := &domain.Item{ID: "cup", Manipulable: true}

	assert.Contains(t, e.Execute(ctx, library.Pickup(), nil, memory.NewWorld()).Reason, "invalid input")
	assert.Contains(t, e.Execute(ctx, library.Pickup(), []any{"cup"}, memory.NewWorld()).Reason, "invalid input")
	assert.Contains(t, e.Execute(ctx, library.Store(), []any{cup}, memory.NewWorld()).Reason, "invalid input")
	assert.Contains(t, e.Execute(ctx, library.Store(), []any{cup, "box"}, memory.NewWorld()).Reason, "invalid input")
	assert.Contains(t, e.Execute(ctx, library.Pickup(), []any{cup}, brokenWorld{}).Reason, "world error")
}

func TestGroupedPickupStore(t *testing.T) {
	ctx := context.Background()
	world := memory.NewWorld()
	cup := &domain.Item{ID: "cup", Manipulable: true}
	box := memory.NewBin("box")

	grouped := domain.GroupWith(library.Pickup(), library.Store())
	require.NoError(t, grouped.CheckInputs([]any{cup, box}))

	res := runtime.NewEngine().Execute(ctx, grouped, []any{cup, box}, world)

	require.True(t, res.Success, res.Reason)
	assert.Nil(t, res.Payload)
	held, _ := world.Holding(ctx)
	assert.Empty(t, held)
	assert.True(t, box.Contains("cup"))
	assert.False(t, cup.Manipulable)
}

func TestGroupedPickupStore_FailureDoesNotRollBack(t *testing.T) {
	ctx := context.Background()
	world := memory.NewWorld()
	cup := &domain.Item{ID: "cup", Manipulable: true}

	// Store receives the same vector, but the container is not a container.
	grouped := domain.GroupWith(library.Pickup(), library.Store())
	res := runtime.NewEngine().Execute(ctx, grouped, []any{cup, "not-a-box"}, world)

	assert.False(t, res.Success)
	assert.Equal(t, library.StoreName, res.Action)
	held, _ := world.Holding(ctx)
	assert.Equal(t, "cup", held, "pickup side effect stays in place")
}
