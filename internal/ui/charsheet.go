package ui

import (
	"fmt"
	"strings"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

// equipSlot is one of the twelve equipment displays on the character
// panel.
type equipSlot struct {
	Slot     string
	Label    string
	ItemID   string // empty when the slot is vacant
	Occupied bool
}

// rebuildCharSheet derives the character panel from the payload.
func (m *Model) rebuildCharSheet(p *scene.Payload) {
	name := p.PlayerName
	if name == "" {
		name = "N/A"
	}
	class := p.PlayerClassName
	if class == "" {
		class = "N/A"
	}
	species := p.PlayerSpeciesName
	if species == "" {
		species = "N/A"
	}

	m.charLines = []string{
		"Name: " + name,
		"Class: " + class,
		"Species: " + species,
		"Level: " + fmtOptInt(p.PlayerLevel),
		fmt.Sprintf("XP: %s / %s", fmtOptInt(p.PlayerXP), fmtOptInt(p.PlayerXPToNext)),
		fmt.Sprintf("HP: %s / %s", fmtOptInt(p.PlayerHP), fmtOptInt(p.PlayerMaxHP)),
		"Attack: " + fmtOptInt(p.PlayerAttack),
		"Coins: " + scene.FormatCoinsPtr(p.PlayerCoins),
	}

	m.equipSlots = m.equipSlots[:0]
	for _, slot := range scene.EquipmentSlots {
		id := p.EquippedItemID(slot)
		m.equipSlots = append(m.equipSlots, equipSlot{
			Slot:     slot,
			Label:    scene.SlotPrefix(slot) + ": " + p.SlotItemName(slot),
			ItemID:   id,
			Occupied: id != "",
		})
	}
}

// renderCharSheet draws the character panel for the side column.
func (m *Model) renderCharSheet() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("CHARACTER") + "\n")
	for _, line := range m.charLines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	for i := 0; i < len(m.equipSlots); i += 2 {
		left := m.renderEquipSlot(m.equipSlots[i])
		right := ""
		if i+1 < len(m.equipSlots) {
			right = m.renderEquipSlot(m.equipSlots[i+1])
		}
		b.WriteString(left + " " + right + "\n")
	}
	return b.String()
}

func (m *Model) renderEquipSlot(slot equipSlot) string {
	// Pad before styling; ANSI codes would defeat width formatting.
	label := fmt.Sprintf("%-20.20s", slotMarker(slot.Occupied)+" "+slot.Label)
	if slot.Occupied {
		return equipOccupiedStyle.Render(label)
	}
	return equipEmptyStyle.Render(label)
}

func slotMarker(occupied bool) string {
	if occupied {
		return "▣"
	}
	return "□"
}
