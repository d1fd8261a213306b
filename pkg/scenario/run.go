package scenario

import (
	"context"
	"fmt"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/dsl"
	"github.com/aretw0/htn/pkg/ports"
)

// DefaultWorldID is used when the scenario does not name its world.
const DefaultWorldID = "default"

// Runner is what a scenario needs from the engine.
type Runner interface {
	Execute(ctx context.Context, action *domain.Action, inputs []any, world domain.World) domain.Result
	// WithWorldLock serializes fn against every other user of worldID.
	WithWorldLock(ctx context.Context, worldID string, fn func(ctx context.Context) error) error
	Library() ports.ActionLibrary
}

// Build composes the plan from the library.
func (s *Scenario) Build(lib ports.ActionLibrary) (*domain.Action, error) {
	mode, err := dsl.ParseMode(s.Plan.Mode)
	if err != nil {
		return nil, err
	}
	name := s.Plan.Name
	if name == "" && mode == dsl.ModeSequence {
		name = s.Name
	}

	p := dsl.New(lib).Plan(name, mode)
	for _, st := range s.Plan.Steps {
		p.Do(st)
	}
	return p.Build()
}

// Run prepares the world in backend, executes the plan and reports the final state.
// The three steps happen under one world lock, so concurrent runs on the same
// world never observe each other's setup.
// Configuration problems are returned as errors; execution failures are part of the report.
func Run(ctx context.Context, r Runner, backend ports.WorldBackend, s *Scenario) (*Report, error) {
	action, err := s.Build(r.Library())
	if err != nil {
		return nil, err
	}

	worldID := s.World.ID
	if worldID == "" {
		worldID = DefaultWorldID
	}
	world, err := backend.World(ctx, worldID)
	if err != nil {
		return nil, fmt.Errorf("failed to open world %s: %w", worldID, err)
	}

	refs := make(map[string]any, len(s.World.Items)+len(s.World.Containers))
	for i := range s.World.Items {
		item := s.World.Items[i]
		refs[item.ID] = &item
	}
	containers := make(map[string]ports.Inventory, len(s.World.Containers))
	for _, id := range s.World.Containers {
		inv, err := backend.Container(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to open container %s: %w", id, err)
		}
		containers[id] = inv
		refs[id] = inv
	}

	inputs := make([]any, len(s.Inputs))
	for i, ref := range s.Inputs {
		v, ok := refs[ref]
		if !ok {
			return nil, fmt.Errorf("%w: unknown input %q", domain.ErrInvalidArgument, ref)
		}
		inputs[i] = v
	}
	if err := action.CheckInputs(inputs); err != nil {
		return nil, fmt.Errorf("inputs do not fit %s: %w", action.Name, err)
	}

	report := &Report{
		Scenario:   s.Name,
		Action:     action.Name,
		Containers: make(map[string][]string, len(containers)),
	}
	for _, in := range action.Inputs {
		report.Interface = append(report.Interface, in.String())
	}

	err = r.WithWorldLock(ctx, worldID, func(ctx context.Context) error {
		if err := world.SetHolding(ctx, s.World.Holding); err != nil {
			return fmt.Errorf("failed to prepare world %s: %w", worldID, err)
		}

		report.Result = r.Execute(ctx, action, inputs, world)

		held, err := world.Holding(ctx)
		if err != nil {
			return fmt.Errorf("failed to read world %s: %w", worldID, err)
		}
		report.Holding = held
		for id, inv := range containers {
			items, err := inv.Items(ctx)
			if err != nil {
				return fmt.Errorf("failed to read container %s: %w", id, err)
			}
			report.Containers[id] = items
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := report.Result
	if s.Expect != nil {
		met := res.Success == s.Expect.Success && (s.Expect.Reason == "" || s.Expect.Reason == res.Reason)
		report.Met = &met
	}
	return report, nil
}
