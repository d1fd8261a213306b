package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/htn/pkg/domain"
)

// Overlay carries run state to paint on the graph.
type Overlay struct {
	// Failed is the name of the action that reported the failure, if any.
	Failed string
	// Succeeded marks the root as completed.
	Succeeded bool
}

// GenerateMermaid renders an action tree as a Mermaid flowchart.
// Shapes follow the variant:
// - Primitive: [[Subroutine]]
// - Learned (grouped): ([Stadium])
// - Composite: [Rectangle]
// Children of a shared-input composite are linked with dotted edges.
func GenerateMermaid(root *domain.Action, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		return sb.String()
	}

	var failed []string
	var walk func(a *domain.Action, id string)
	walk = func(a *domain.Action, id string) {
		opener, closer := "[", "]"
		switch a.Variant {
		case domain.VariantPrimitive:
			opener, closer = "[[", "]]"
		case domain.VariantLearned:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label(a), closer)

		if overlay != nil && overlay.Failed != "" && a.Name == overlay.Failed {
			failed = append(failed, id)
		}

		for i, sub := range a.Subtasks {
			childID := fmt.Sprintf("%s_%d", id, i)
			walk(sub, childID)
			if a.SharedInputs {
				fmt.Fprintf(&sb, "    %s -. \"%d\" .-> %s\n", id, i+1, childID)
			} else {
				fmt.Fprintf(&sb, "    %s -- \"%d\" --> %s\n", id, i+1, childID)
			}
		}
	}
	walk(root, "a0")

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef succeeded fill:#e8f5e9,stroke:#1b5e20,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#b71c1c,stroke-width:4px,color:#000;\n")
		if overlay.Succeeded {
			sb.WriteString("    class a0 succeeded;\n")
		}
		for _, id := range failed {
			fmt.Fprintf(&sb, "    class %s failed;\n", id)
		}
	}

	return sb.String()
}

func label(a *domain.Action) string {
	parts := []string{escape(a.Name)}
	if len(a.Inputs) > 0 {
		parts = append(parts, "in: "+slotList(a.Inputs))
	}
	if len(a.Outputs) > 0 {
		parts = append(parts, "out: "+slotList(a.Outputs))
	}
	return strings.Join(parts, " <br/> ")
}

func slotList(slots []domain.Slot) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = escape(s.String())
	}
	return strings.Join(names, ", ")
}

// Mermaid labels cannot hold raw double quotes or ampersands.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "&", "#amp;")
}
