package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
	"github.com/akinizer/adventure-of-textland/pkg/worldmap"
)

// toggleWorldMap opens the world-map modal, or closes it when it is
// already open. It refuses to open while no session is active.
func (m *Model) toggleWorldMap() tea.Cmd {
	if m.modalKindIs(ModalWorldMap) {
		m.dismiss()
		return nil
	}
	if !m.sess.ActiveForInput {
		m.logger.Debug("game not active, cannot show world map")
		return nil
	}
	client := m.client
	return func() tea.Msg {
		wm, err := client.GetWorldMap()
		return worldMapMsg{worldMap: wm, err: err}
	}
}

func (m *Model) updateWorldMap(msg worldMapMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.present(&Modal{
			Kind:        ModalAlert,
			Title:       "Error",
			Body:        "Could not load world map: " + msg.err.Error(),
			Buttons:     []ModalButton{{Label: "Close"}},
			CancelIndex: 0,
		})
		return m, nil
	}

	grid := worldmap.Build(msg.worldMap.Locations, msg.worldMap.CurrentLocationID, m.sess.IsDeadEnd)
	body := renderMapGrid(grid) + "\n" + promptStyle.Render(worldmap.Legend())
	m.present(&Modal{
		Kind:        ModalWorldMap,
		Title:       "World Map",
		Body:        body,
		Buttons:     []ModalButton{{Label: "Close"}},
		CancelIndex: 0,
	})
	return m, nil
}

// rebuildZonePanel redraws the always-visible side map. A "city" payload
// switches to the dense city grid; otherwise the current zone's location
// subset goes through the shared grid algorithm.
func (m *Model) rebuildZonePanel(p *scene.Payload) {
	switch {
	case p.MapType == "city" && p.CityMap != nil:
		m.zonePanel = renderCityMap(p.CityMap)
	case p.ZoneMap != nil && len(p.ZoneMap.Locations) > 0:
		title := p.ZoneMap.Title
		if title == "" {
			title = "ZONE"
		}
		grid := worldmap.Build(p.ZoneMap.Locations, p.CurrentLocationID, m.sess.IsDeadEnd)
		m.zonePanel = panelTitleStyle.Render(strings.ToUpper(title)) + "\n" + renderMapGrid(grid)
	default:
		m.zonePanel = ""
	}
}

// renderMapGrid draws a grid as three text rows per cell row. A visited
// or current cell shows a border edge only toward recorded dead ends;
// empty cells get a faint full border.
func renderMapGrid(g *worldmap.Grid) string {
	if g.Width == 0 || g.Height == 0 {
		return promptStyle.Render("(nothing charted yet)")
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		var top, mid, bot strings.Builder
		for x := 0; x < g.Width; x++ {
			cell := g.At(x, y)
			edge := func(s string) string { return mapBorderStyle.Render(s) }
			if cell.Faint {
				edge = func(s string) string { return mapFaintBorderStyle.Render(s) }
			}

			if cell.Faint || cell.Borders.North {
				top.WriteString(" " + edge("▔▔") + " ")
			} else {
				top.WriteString("    ")
			}

			west, east := " ", " "
			if cell.Faint || cell.Borders.West {
				west = edge("▏")
			}
			if cell.Faint || cell.Borders.East {
				east = edge("▕")
			}
			mid.WriteString(west + cell.Glyph + east)

			if cell.Faint || cell.Borders.South {
				bot.WriteString(" " + edge("▁▁") + " ")
			} else {
				bot.WriteString("    ")
			}
		}
		b.WriteString(top.String() + "\n")
		b.WriteString(mid.String() + "\n")
		b.WriteString(bot.String() + "\n")
	}
	return b.String()
}

// renderCityMap draws the explicit city grid with the player's city-local
// coordinate highlighted and a legend underneath.
func renderCityMap(cm *scene.CityMap) string {
	title := cm.Title
	if title == "" {
		title = "CITY"
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(strings.ToUpper(title)) + "\n")
	for y, row := range cm.Rows {
		for x, r := range []rune(row) {
			if x == cm.PlayerX && y == cm.PlayerY {
				b.WriteString(cityPlayerStyle.Render(string(r)))
			} else {
				b.WriteString(string(r))
			}
		}
		b.WriteString("\n")
	}

	if len(cm.Legend) > 0 {
		keys := make([]string, 0, len(cm.Legend))
		for k := range cm.Legend {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+" "+cm.Legend[k])
		}
		b.WriteString(promptStyle.Render("Legend: "+strings.Join(parts, ", ")) + "\n")
	}
	return b.String()
}
