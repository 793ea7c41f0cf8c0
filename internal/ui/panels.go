package ui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

var verbTitler = cases.Title(language.English)

// actionButton is one selectable entry built from the latest payload.
// Activating it dispatches its composed action string; save goes straight
// to the save endpoint instead of through the dispatcher.
type actionButton struct {
	Label  string
	Action string
	direct bool
}

// panel groups the buttons of one payload list. A panel with no buttons
// is not rendered at all.
type panel struct {
	Title   string
	Buttons []actionButton
}

// rebuildPanels derives every button panel from the payload. Panel
// visibility is a pure function of the latest payload: an empty list
// hides its panel even if the previous turn had entries.
func (m *Model) rebuildPanels(p *scene.Payload) {
	var panels []panel

	if len(p.Features) > 0 {
		pn := panel{Title: "Features"}
		for _, f := range p.Features {
			pn.Buttons = append(pn.Buttons, actionButton{
				Label:  verbTitler.String(f.Action) + " " + f.Name,
				Action: f.Action + " " + f.ID,
			})
		}
		panels = append(panels, pn)
	}

	if len(p.RoomItems) > 0 {
		pn := panel{Title: "Items Here"}
		for _, it := range p.RoomItems {
			pn.Buttons = append(pn.Buttons, actionButton{
				Label:  "Take " + it.Name,
				Action: "take " + it.ID,
			})
		}
		panels = append(panels, pn)
	}

	if len(p.NPCs) > 0 {
		pn := panel{Title: "People Here"}
		for _, npc := range p.NPCs {
			pn.Buttons = append(pn.Buttons, actionButton{
				Label:  "Talk to " + npc.Name,
				Action: "talk " + npc.ID,
			})
		}
		panels = append(panels, pn)
	}

	if len(p.Exits) > 0 {
		pn := panel{Title: "Exits"}
		for _, dir := range p.Exits {
			pn.Buttons = append(pn.Buttons, actionButton{
				Label:  "Go " + dir,
				Action: "go " + dir,
			})
		}
		panels = append(panels, pn)
	}

	if len(p.Actions) > 0 {
		pn := panel{Title: "Actions"}
		for _, action := range p.Actions {
			pn.Buttons = append(pn.Buttons, actionButton{
				Label:  verbTitler.String(action),
				Action: action,
			})
		}
		panels = append(panels, pn)
	}

	if p.CanSaveInCity {
		panels = append(panels, panel{
			Title: "Game Actions",
			Buttons: []actionButton{
				{Label: "Save Game", Action: "", direct: true},
			},
		})
	}

	// Occupied equipment slots are unequip targets.
	var equipButtons []actionButton
	for _, slot := range scene.EquipmentSlots {
		if id := p.EquippedItemID(slot); id != "" {
			equipButtons = append(equipButtons, actionButton{
				Label:  "Unequip " + p.SlotItemName(slot),
				Action: "unequip " + id,
			})
		}
	}
	if len(equipButtons) > 0 {
		panels = append(panels, panel{Title: "Equipped", Buttons: equipButtons})
	}

	m.panels = panels
	m.buttons = m.buttons[:0]
	for _, pn := range panels {
		m.buttons = append(m.buttons, pn.Buttons...)
	}
	if m.buttonCursor >= len(m.buttons) {
		m.buttonCursor = 0
	}
}

func (m *Model) moveButtonCursor(delta int) {
	if len(m.buttons) == 0 {
		return
	}
	m.buttonCursor += delta
	if m.buttonCursor < 0 {
		m.buttonCursor = len(m.buttons) - 1
	}
	if m.buttonCursor >= len(m.buttons) {
		m.buttonCursor = 0
	}
}

func (m *Model) activateButton() tea.Cmd {
	if m.buttonCursor < 0 || m.buttonCursor >= len(m.buttons) {
		return nil
	}
	btn := m.buttons[m.buttonCursor]
	if btn.direct {
		return m.saveGameCmd()
	}
	return m.performAction(btn.Action)
}
