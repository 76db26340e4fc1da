//go:build unit

package item_test

import (
	"testing"

	"lendit/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		description string
		errIs       error
	}{
		{name: "valid item", itemName: "Drill", description: "Cordless drill"},
		{name: "blank name", itemName: "  ", description: "Cordless drill", errIs: item.ErrEmptyName},
		{name: "blank description", itemName: "Drill", description: "", errIs: item.ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := item.NewItem(tt.itemName, tt.description, true, 1)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.itemName, it.Name())
			assert.True(t, it.Available())
			assert.True(t, it.IsOwnedBy(1))
			assert.False(t, it.IsOwnedBy(2))
		})
	}
}

func TestItemApplyPatch(t *testing.T) {
	newName := "Impact driver"
	blank := "   "
	unavailable := false

	t.Run("patches only provided fields", func(t *testing.T) {
		it := item.ReconstructItem(1, "Drill", "Cordless drill", true, 1)

		err := it.ApplyPatch(&newName, nil, &unavailable)
		require.NoError(t, err)

		assert.Equal(t, newName, it.Name())
		assert.Equal(t, "Cordless drill", it.Description())
		assert.False(t, it.Available())
	})

	t.Run("rejects blank patch values", func(t *testing.T) {
		it := item.ReconstructItem(1, "Drill", "Cordless drill", true, 1)

		err := it.ApplyPatch(&blank, nil, nil)
		require.ErrorIs(t, err, item.ErrEmptyName)
		assert.Equal(t, "Drill", it.Name())
	})
}
