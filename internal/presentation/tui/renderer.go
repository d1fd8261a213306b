package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/htn/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Describe produces a markdown summary of an action and its subtasks.
func Describe(a *domain.Action) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", a.Name)
	fmt.Fprintf(&sb, "*%s*", a.Variant)
	if a.SharedInputs {
		sb.WriteString(", shared inputs")
	}
	sb.WriteString("\n\n")

	writeSlots(&sb, "Inputs", a.Inputs)
	writeSlots(&sb, "Outputs", a.Outputs)

	if len(a.Subtasks) > 0 {
		sb.WriteString("## Subtasks\n\n")
		for i, sub := range a.Subtasks {
			fmt.Fprintf(&sb, "%d. **%s** (%s)\n", i+1, sub.Name, sub.Variant)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeSlots(sb *strings.Builder, title string, slots []domain.Slot) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	if len(slots) == 0 {
		sb.WriteString("_none_\n\n")
		return
	}
	sb.WriteString("| # | Name | Kind |\n|---|---|---|\n")
	for i, s := range slots {
		fmt.Fprintf(sb, "| %d | `%s` | %s |\n", i+1, s.Name(), s.Kind())
	}
	sb.WriteString("\n")
}
