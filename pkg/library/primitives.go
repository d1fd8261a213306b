package library

import (
	"context"
	"fmt"

	"github.com/aretw0/htn/pkg/domain"
)

const (
	PickupName = "Pick up"
	StoreName  = "Store"
)

// Failure reasons reported by the built-in primitives.
const (
	ReasonAlreadyHolding = "already holding"
	ReasonNotManipulable = "not manipulable"
	ReasonNotHolding     = "not holding that object"
)

// Pickup moves an item into the robot's hands and outputs it.
func Pickup() *domain.Action {
	target := domain.NewSlot("pickup-target", domain.KindItem)
	return domain.NewPrimitive(PickupName, domain.BehaviorFunc(pickup),
		[]domain.Slot{target},
		[]domain.Slot{target},
	)
}

func pickup(ctx context.Context, inputs []any, world domain.World) domain.Result {
	item, err := itemAt(inputs, 0)
	if err != nil {
		return domain.Fail(err.Error())
	}
	if world == nil {
		return domain.Fail("world error: no world")
	}

	held, err := world.Holding(ctx)
	if err != nil {
		return domain.Fail("world error: " + err.Error())
	}
	if held != "" {
		return domain.Fail(ReasonAlreadyHolding)
	}
	if !item.Manipulable {
		return domain.Fail(ReasonNotManipulable)
	}

	if err := world.SetHolding(ctx, item.ID); err != nil {
		return domain.Fail("world error: " + err.Error())
	}
	item.Manipulable = false
	return domain.Succeed(item)
}

// Store puts the held item into a container. It has no output.
func Store() *domain.Action {
	return domain.NewPrimitive(StoreName, domain.BehaviorFunc(store),
		[]domain.Slot{
			domain.NewSlot("store-item", domain.KindItem),
			domain.NewSlot("store-container", domain.KindContainer),
		},
		nil,
	)
}

func store(ctx context.Context, inputs []any, world domain.World) domain.Result {
	item, err := itemAt(inputs, 0)
	if err != nil {
		return domain.Fail(err.Error())
	}
	if len(inputs) < 2 {
		return domain.Fail("invalid input: missing container")
	}
	container, ok := inputs[1].(domain.Container)
	if !ok {
		return domain.Fail(fmt.Sprintf("invalid input: expected container, got %T", inputs[1]))
	}
	if world == nil {
		return domain.Fail("world error: no world")
	}

	held, err := world.Holding(ctx)
	if err != nil {
		return domain.Fail("world error: " + err.Error())
	}
	if held == "" || held != item.ID {
		return domain.Fail(ReasonNotHolding)
	}

	if err := world.SetHolding(ctx, ""); err != nil {
		return domain.Fail("world error: " + err.Error())
	}
	if err := container.AddItem(ctx, item); err != nil {
		return domain.Fail("world error: " + err.Error())
	}
	return domain.Succeed(nil)
}

func itemAt(inputs []any, i int) (*domain.Item, error) {
	if i >= len(inputs) {
		return nil, fmt.Errorf("invalid input: missing item")
	}
	item, ok := inputs[i].(*domain.Item)
	if !ok || item == nil {
		return nil, fmt.Errorf("invalid input: expected item, got %T", inputs[i])
	}
	if item.ID == "" {
		return nil, fmt.Errorf("invalid input: item without id")
	}
	return item, nil
}
