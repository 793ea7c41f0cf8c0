package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

func invItems(n int) []scene.InventoryItem {
	items := make([]scene.InventoryItem, n)
	for i := range items {
		items[i] = scene.InventoryItem{ID: "item", Name: "Item"}
	}
	return items
}

func TestInventorySlotCount(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		expected int
	}{
		{"empty grid keeps the minimum", 0, 48},
		{"few items keep the minimum", 10, 48},
		{"fits exactly with padding", 40, 48},
		{"grows past the minimum", 50, 64},
		{"rounds up to full rows", 41, 56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &inventoryState{items: invItems(tt.items)}
			assert.Equal(t, tt.expected, inv.slotCount())
		})
	}
}

func TestInventoryOpensOnEcho(t *testing.T) {
	m := newTestModel(t)

	m.updateInventoryForScene(&scene.Payload{
		Inventory:        []scene.InventoryItem{{ID: "torch", Name: "Torch"}},
		AutoEquipEnabled: true,
	}, "inventory")

	require.True(t, m.modalKindIs(ModalInventory))
	require.NotNil(t, m.modal.inv)
	assert.Len(t, m.modal.inv.items, 1)
	assert.True(t, m.modal.inv.autoEquip)
}

func TestInventoryDoesNotOpenOnOtherEchoes(t *testing.T) {
	m := newTestModel(t)

	m.updateInventoryForScene(&scene.Payload{
		Inventory: []scene.InventoryItem{{ID: "torch", Name: "Torch"}},
	}, "look")

	assert.Nil(t, m.modal)
}

func TestInventorySortRefreshesOpenModal(t *testing.T) {
	m := newTestModel(t)
	m.present(&Modal{Kind: ModalInventory, Title: "Backpack", inv: &inventoryState{
		items: []scene.InventoryItem{{ID: "b"}, {ID: "a"}},
	}})

	m.updateInventoryForScene(&scene.Payload{
		Inventory: []scene.InventoryItem{{ID: "a"}, {ID: "b"}},
	}, "sort_inventory_by_id_action")

	require.True(t, m.modalKindIs(ModalInventory), "sort refreshes in place, no reopen")
	assert.Equal(t, "a", m.modal.inv.items[0].ID)
}

func TestInventorySortEchoIgnoredWhenClosed(t *testing.T) {
	m := newTestModel(t)

	m.updateInventoryForScene(&scene.Payload{
		Inventory: []scene.InventoryItem{{ID: "a"}},
	}, "sort_inventory_by_id_action")

	assert.Nil(t, m.modal)
}

func TestInventoryKeepsGridWhenPayloadOmitsList(t *testing.T) {
	m := newTestModel(t)
	m.updateInventoryForScene(&scene.Payload{
		Inventory: []scene.InventoryItem{{ID: "torch", Name: "Torch"}},
	}, "inventory")
	require.True(t, m.modalKindIs(ModalInventory))

	// A preference acknowledgement carries no inventory list; it must
	// not wipe the open grid.
	m.applyScene(&scene.Payload{Message: "Preference updated."},
		"set_player_preference auto_equip_from_inventory_panel_enabled true")

	require.True(t, m.modalKindIs(ModalInventory))
	require.Len(t, m.modal.inv.items, 1)
	assert.Equal(t, "torch", m.modal.inv.items[0].ID)
}

func TestInventoryRefreshesFromAnyScene(t *testing.T) {
	m := newTestModel(t)
	m.present(&Modal{Kind: ModalInventory, Title: "Backpack", inv: &inventoryState{
		items: []scene.InventoryItem{{ID: "torch"}, {ID: "rope"}},
	}})

	// A turn consumed an item while the backpack was open.
	m.updateInventoryForScene(&scene.Payload{
		Inventory: []scene.InventoryItem{{ID: "rope"}},
	}, "use torch")

	require.True(t, m.modalKindIs(ModalInventory))
	assert.Len(t, m.modal.inv.items, 1)
}
