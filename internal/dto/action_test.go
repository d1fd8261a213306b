package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/htn/internal/dto"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAction_Grouped(t *testing.T) {
	v := dto.FromAction(domain.GroupWith(library.Pickup(), library.Store()))

	assert.Equal(t, "Pick up & Store", v.Name)
	assert.Equal(t, "learned", v.Variant)
	assert.True(t, v.SharedInputs)
	assert.Equal(t, []dto.SlotView{
		{Name: "pickup-target", Kind: "Item"},
		{Name: "store-container", Kind: "Container"},
	}, v.Inputs)
	assert.Empty(t, v.Outputs)
	require.Len(t, v.Subtasks, 2)
	assert.Equal(t, "primitive", v.Subtasks[1].Variant)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"outputs":[]`)
}

func TestFromAction_Binding(t *testing.T) {
	a := library.Pickup()
	require.NoError(t, a.Bind([]any{&domain.Item{ID: "cup"}}))

	v := dto.FromAction(a)
	assert.Equal(t, "cup", v.Inputs[0].Binding)
	assert.Empty(t, v.Subtasks)
}
