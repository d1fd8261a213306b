package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/htn/internal/presentation/graph"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/library"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	grouped := domain.GroupWith(library.Pickup(), library.Store())

	seq := domain.NewComposite("tidy")
	seq.AddSubtask(library.Pickup())
	seq.AddSubtask(library.Store())

	tests := []struct {
		name     string
		root     *domain.Action
		overlay  *graph.Overlay
		contains []string
		absent   []string
	}{
		{
			name: "Primitive Shape",
			root: library.Pickup(),
			contains: []string{
				`a0[["Pick up <br/> in: pickup-target:Item <br/> out: pickup-target:Item"]]`,
			},
		},
		{
			name: "Grouped Shape And Shared Edges",
			root: grouped,
			contains: []string{
				`a0(["Pick up #amp; Store <br/> in: pickup-target:Item, store-container:Container"])`,
				`a0 -. "1" .-> a0_0`,
				`a0 -. "2" .-> a0_1`,
				`a0_1[["Store <br/> in: store-item:Item, store-container:Container"]]`,
			},
			absent: []string{"Overlay"},
		},
		{
			name: "Composite Partitioned Edges",
			root: seq,
			contains: []string{
				`a0["tidy <br/> in: `,
				`a0 -- "1" --> a0_0`,
				`a0 -- "2" --> a0_1`,
			},
		},
		{
			name:    "Failure Overlay",
			root:    grouped,
			overlay: &graph.Overlay{Failed: library.StoreName},
			contains: []string{
				"classDef failed",
				"class a0_1 failed;",
			},
			absent: []string{"class a0 succeeded;"},
		},
		{
			name:     "Success Overlay",
			root:     grouped,
			overlay:  &graph.Overlay{Succeeded: true},
			contains: []string{"class a0 succeeded;"},
			absent:   []string{"failed;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.root, tt.overlay)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, bad := range tt.absent {
				assert.NotContains(t, got, bad)
			}
		})
	}
}

func TestGenerateMermaid_Nil(t *testing.T) {
	assert.Equal(t, "graph TD\n", graph.GenerateMermaid(nil, nil))
}
