package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a scenario file (YAML or JSON, by extension).
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	defer f.Close()

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	return Decode(f, format)
}

// Decode parses a scenario document. Unknown keys are rejected.
func Decode(r io.Reader, format string) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	raw := map[string]any{}
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse scenario json: %v", domain.ErrInvalidArgument, err)
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse scenario yaml: %v", domain.ErrInvalidArgument, err)
		}
	default:
		return nil, fmt.Errorf("%w: scenario format %q", domain.ErrInvalidArgument, format)
	}

	return FromMap(raw)
}

// FromMap decodes an already parsed document.
func FromMap(raw map[string]any) (*Scenario, error) {
	var sc Scenario
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &sc,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks references between sections.
func (s *Scenario) Validate() error {
	if len(s.Plan.Steps) == 0 {
		return fmt.Errorf("%w: scenario %q has no plan steps", domain.ErrInvalidArgument, s.Name)
	}

	seen := map[string]bool{}
	for _, it := range s.World.Items {
		if it.ID == "" {
			return fmt.Errorf("%w: item without id", domain.ErrInvalidArgument)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidArgument, it.ID)
		}
		seen[it.ID] = true
	}
	for _, c := range s.World.Containers {
		if c == "" {
			return fmt.Errorf("%w: container without id", domain.ErrInvalidArgument)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidArgument, c)
		}
		seen[c] = true
	}
	for _, ref := range s.Inputs {
		if !seen[ref] {
			return fmt.Errorf("%w: input %q is neither an item nor a container", domain.ErrInvalidArgument, ref)
		}
	}
	return nil
}
