package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

const (
	invColumns  = 8
	invMinSlots = 48
	invPadding  = 8
)

// autoEquipPreference is the server-side preference key behind the
// auto-equip checkbox.
const autoEquipPreference = "auto_equip_from_inventory_panel_enabled"

// inventoryState is the grid state of the backpack modal.
type inventoryState struct {
	items     []scene.InventoryItem
	cursor    int
	autoEquip bool
}

// slotCount returns the grid size: at least the fixed minimum, at least
// item count plus padding, rounded up to full rows.
func (inv *inventoryState) slotCount() int {
	n := len(inv.items) + invPadding
	if n < invMinSlots {
		n = invMinSlots
	}
	if rem := n % invColumns; rem != 0 {
		n += invColumns - rem
	}
	return n
}

// updateInventoryForScene applies the inventory rules of one render:
// "inventory" opens the modal, the sort echo refreshes the grid in
// place, and any scene arriving while the modal is open refreshes the
// grid from the new payload.
func (m *Model) updateInventoryForScene(p *scene.Payload, echo string) {
	switch {
	case echo == "inventory":
		m.present(&Modal{
			Kind:  ModalInventory,
			Title: "Backpack",
			inv: &inventoryState{
				items:     p.Inventory,
				autoEquip: p.AutoEquipEnabled,
			},
		})
	case echo == "sort_inventory_by_id_action":
		if m.modalKindIs(ModalInventory) && p.Inventory != nil {
			m.modal.inv.items = p.Inventory
		}
	default:
		// Most replies omit the inventory list; only overwrite the grid
		// when the payload actually carries one.
		if m.modalKindIs(ModalInventory) && p.Inventory != nil {
			m.modal.inv.items = p.Inventory
		}
	}
}

func (m *Model) updateInventoryModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inv := m.modal.inv

	switch msg.Type {
	case tea.KeyEsc:
		m.dismiss()
		return m, nil
	case tea.KeyLeft:
		if inv.cursor > 0 {
			inv.cursor--
		}
	case tea.KeyRight:
		if inv.cursor < inv.slotCount()-1 {
			inv.cursor++
		}
	case tea.KeyUp:
		if inv.cursor >= invColumns {
			inv.cursor -= invColumns
		}
	case tea.KeyDown:
		if inv.cursor+invColumns < inv.slotCount() {
			inv.cursor += invColumns
		}
	case tea.KeyEnter:
		if inv.cursor < len(inv.items) {
			item := inv.items[inv.cursor]
			m.dismiss()
			return m, m.performAction("equip " + item.ID)
		}
	}

	switch msg.String() {
	case "q":
		m.dismiss()
	case "s":
		return m, m.performAction("sort_inventory_by_id_action")
	case "a":
		inv.autoEquip = !inv.autoEquip
		cmds := []tea.Cmd{
			m.performAction(fmt.Sprintf("set_player_preference %s %s",
				autoEquipPreference, strconv.FormatBool(inv.autoEquip))),
		}
		if inv.autoEquip {
			cmds = append(cmds, m.performAction("auto_equip_inventory"))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// renderInventoryBody draws the sort control, the auto-equip checkbox
// and the slot grid.
func (m *Model) renderInventoryBody(inv *inventoryState) string {
	var b strings.Builder

	check := "[ ]"
	if inv.autoEquip {
		check = "[x]"
	}
	b.WriteString(promptStyle.Render("s: sort by id   a: "+check+" auto-equip from backpack") + "\n\n")

	if len(inv.items) == 0 {
		b.WriteString("Your inventory is empty.\n")
		return b.String()
	}

	total := inv.slotCount()
	for i := 0; i < total; i++ {
		var cell string
		if i < len(inv.items) {
			item := inv.items[i]
			label := fmt.Sprintf("%-12.12s", item.Name)
			switch {
			case i == inv.cursor:
				cell = buttonSelectedStyle.Render(label)
			case item.EquipSlot != "":
				cell = equipOccupiedStyle.Render(label)
			default:
				cell = buttonStyle.Render(label)
			}
		} else {
			label := fmt.Sprintf("%-12.12s", "·")
			if i == inv.cursor {
				cell = buttonSelectedStyle.Render(label)
			} else {
				cell = equipEmptyStyle.Render(label)
			}
		}
		b.WriteString(cell)
		if (i+1)%invColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n" + promptStyle.Render("Enter: equip selected   Esc: close"))
	return b.String()
}
