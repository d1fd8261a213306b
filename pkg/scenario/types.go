package scenario

import "github.com/aretw0/htn/pkg/domain"

// Scenario describes a world, a plan and the inputs to run it with.
type Scenario struct {
	Name   string       `json:"name" mapstructure:"name"`
	World  WorldSpec    `json:"world" mapstructure:"world"`
	Plan   PlanSpec     `json:"plan" mapstructure:"plan"`
	Inputs []string     `json:"inputs" mapstructure:"inputs"`
	Expect *Expectation `json:"expect,omitempty" mapstructure:"expect"`
}

// WorldSpec is the initial state of the world.
type WorldSpec struct {
	ID         string        `json:"id" mapstructure:"id"`
	Holding    string        `json:"holding" mapstructure:"holding"`
	Items      []domain.Item `json:"items" mapstructure:"items"`
	Containers []string      `json:"containers" mapstructure:"containers"`
}

// PlanSpec names the library actions to compose.
type PlanSpec struct {
	Name  string   `json:"name" mapstructure:"name"`
	Mode  string   `json:"mode" mapstructure:"mode"`
	Steps []string `json:"steps" mapstructure:"steps"`
}

// Expectation is an optional assertion on the outcome.
type Expectation struct {
	Success bool   `json:"success" mapstructure:"success"`
	Reason  string `json:"reason" mapstructure:"reason"`
}

// Report is the outcome of a run together with the final world state.
type Report struct {
	Scenario   string              `json:"scenario"`
	Action     string              `json:"action"`
	Interface  []string            `json:"interface"`
	Result     domain.Result       `json:"result"`
	Holding    string              `json:"holding"`
	Containers map[string][]string `json:"containers"`

	// Met is nil when the scenario declares no expectation.
	Met *bool `json:"met,omitempty"`
}
