package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
	"github.com/akinizer/adventure-of-textland/pkg/worldmap"
)

// vpadCenterAction is the designated action behind the vpad's center
// button.
const vpadCenterAction = "enter city"

// vpadState mirrors the currently valid exits; each direction key
// dispatches its fixed action only while enabled.
type vpadState struct {
	north, east, south, west bool
	center                   bool
}

func (m *Model) rebuildVPad(p *scene.Payload) {
	m.vpad = vpadState{
		north:  p.HasExit(worldmap.North),
		east:   p.HasExit(worldmap.East),
		south:  p.HasExit(worldmap.South),
		west:   p.HasExit(worldmap.West),
		center: p.HasAction(vpadCenterAction),
	}
}

// vpadDispatch maps an arrow key to its movement action. Disabled
// directions are inert.
func (m *Model) vpadDispatch(key tea.KeyType) tea.Cmd {
	var direction string
	var enabled bool
	switch key {
	case tea.KeyUp:
		direction, enabled = worldmap.North, m.vpad.north
	case tea.KeyRight:
		direction, enabled = worldmap.East, m.vpad.east
	case tea.KeyDown:
		direction, enabled = worldmap.South, m.vpad.south
	case tea.KeyLeft:
		direction, enabled = worldmap.West, m.vpad.west
	}
	if !enabled {
		return nil
	}
	return m.performAction("go " + direction)
}

// vpadCenterDispatch fires the center button's fixed action.
func (m *Model) vpadCenterDispatch() tea.Cmd {
	if !m.vpad.center {
		return nil
	}
	return m.performAction(vpadCenterAction)
}

// renderVPad draws the directional pad with enabled directions lit.
func (m *Model) renderVPad() string {
	cell := func(glyph string, enabled bool) string {
		if enabled {
			return vpadEnabledStyle.Render(glyph)
		}
		return vpadDisabledStyle.Render(glyph)
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("MOVE") + "\n")
	b.WriteString("   " + cell("↑", m.vpad.north) + "\n")
	b.WriteString(" " + cell("←", m.vpad.west) + " " + cell("●", m.vpad.center) + " " + cell("→", m.vpad.east) + "\n")
	b.WriteString("   " + cell("↓", m.vpad.south) + "\n")
	if m.vpad.center {
		b.WriteString(promptStyle.Render("e: enter city") + "\n")
	}
	return b.String()
}
