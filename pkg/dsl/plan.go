package dsl

import (
	"fmt"

	"github.com/aretw0/htn/pkg/domain"
)

// PlanBuilder provides a fluent API for listing the parts of a plan.
type PlanBuilder struct {
	builder *Builder
	name    string
	mode    Mode
	steps   []step
}

type step struct {
	name   string
	action *domain.Action
}

// Do appends a library action by name. It is resolved at Build time.
func (p *PlanBuilder) Do(name string) *PlanBuilder {
	p.steps = append(p.steps, step{name: name})
	return p
}

// Then appends an already constructed action (primitive or composite).
func (p *PlanBuilder) Then(action *domain.Action) *PlanBuilder {
	p.steps = append(p.steps, step{name: action.Name, action: action})
	return p
}

// Build resolves the steps and composes them.
func (p *PlanBuilder) Build() (*domain.Action, error) {
	if len(p.steps) == 0 {
		return nil, fmt.Errorf("%w: plan %q has no steps", domain.ErrInvalidArgument, p.name)
	}

	parts := make([]*domain.Action, 0, len(p.steps))
	for i, s := range p.steps {
		if s.action != nil {
			parts = append(parts, s.action)
			continue
		}
		if p.builder.library == nil {
			return nil, fmt.Errorf("%w: step %d (%s): no library", domain.ErrActionNotFound, i, s.name)
		}
		a, err := p.builder.library.Lookup(s.name)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		parts = append(parts, a)
	}

	if p.mode == ModeSequence {
		name := p.name
		if name == "" {
			name = "sequence"
		}
		return Sequence(name, parts...), nil
	}

	grouped, err := Group(parts...)
	if err != nil {
		return nil, err
	}
	if p.name != "" && len(parts) > 1 {
		grouped.Name = p.name
	}
	return grouped, nil
}
