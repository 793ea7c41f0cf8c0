package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquippedItemID(t *testing.T) {
	p := &Payload{
		Equipment: map[string]string{
			"head":         "Iron Helm",
			"head_id":      "iron_helm",
			"chest":        "Empty",
			"main_hand":    "Short Sword",
			"main_hand_id": "short_sword",
		},
	}

	assert.Equal(t, "iron_helm", p.EquippedItemID("head"))
	assert.Equal(t, "short_sword", p.EquippedItemID("main_hand"))
	assert.Empty(t, p.EquippedItemID("chest"), "slot without an id key is vacant")
	assert.Empty(t, p.EquippedItemID("legs"))

	var empty Payload
	assert.Empty(t, empty.EquippedItemID("head"), "nil equipment map")
}

func TestSlotItemName(t *testing.T) {
	p := &Payload{
		Equipment: map[string]string{
			"head":  "Iron Helm",
			"chest": "Empty",
		},
	}

	assert.Equal(t, "Iron Helm", p.SlotItemName("head"))
	assert.Equal(t, "Empty", p.SlotItemName("chest"))
	assert.Equal(t, "Empty", p.SlotItemName("legs"))

	var empty Payload
	assert.Equal(t, "Empty", empty.SlotItemName("head"))
}

func TestSlotPrefix(t *testing.T) {
	assert.Equal(t, "MH", SlotPrefix("main_hand"))
	assert.Equal(t, "T2", SlotPrefix("trinket2"))
	assert.Equal(t, "W", SlotPrefix("wrist"), "unknown slot falls back to first letter")
	assert.Equal(t, "?", SlotPrefix(""))
}

func TestHasExitAndAction(t *testing.T) {
	p := &Payload{
		Exits:   []string{"North", "east"},
		Actions: []string{"enter city", "rest"},
	}

	assert.True(t, p.HasExit("north"), "exit matching is case-insensitive")
	assert.True(t, p.HasExit("EAST"))
	assert.False(t, p.HasExit("south"))

	assert.True(t, p.HasAction("Enter City"))
	assert.False(t, p.HasAction("fly"))
}

func TestPayloadOptionalNumericFields(t *testing.T) {
	// Absent numeric fields must stay distinguishable from zero values.
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{"message":"hi","player_hp":0}`), &p))

	require.NotNil(t, p.PlayerHP)
	assert.Equal(t, 0, *p.PlayerHP)
	assert.Nil(t, p.PlayerMaxHP)
	assert.Nil(t, p.PlayerCoins)
}

func TestCharacterSummaryLabel(t *testing.T) {
	c := CharacterSummary{DisplayName: "Mira", Level: 3, Species: "Elf", Class: "Ranger"}
	assert.Equal(t, "Mira (Lvl 3 Elf Ranger)", c.Label())
}

func TestOptionLabel(t *testing.T) {
	o := Option{ID: "warrior", Name: "Warrior", Description: "Front-line fighter"}
	assert.Equal(t, "Warrior - Front-line fighter", o.Label())
}
