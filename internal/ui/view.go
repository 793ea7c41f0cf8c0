package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewGame lays out the main screen: output log and command line on the
// left, character sheet, zone map, movement pad and action panels on the
// right.
func (m *Model) viewGame() string {
	left := m.renderLeftColumn()
	right := m.renderSideColumn()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderLeftColumn() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header) + "\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", m.output.Width)) + "\n")
	b.WriteString(m.output.View() + "\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", m.output.Width)) + "\n")
	b.WriteString(m.command.View() + "\n")
	b.WriteString(promptStyle.Render(m.helpLine()))
	return outputPanelStyle.Render(b.String())
}

func (m *Model) helpLine() string {
	if m.focus == focusCommand {
		return "Enter send, Esc back to browsing"
	}
	return "arrows move, j/k+Enter act, i inventory, m map, p pause, / command, c copy log, Esc menu"
}

func (m *Model) renderSideColumn() string {
	sections := []string{m.renderCharSheet()}

	if m.zonePanel != "" {
		sections = append(sections, m.zonePanel)
	}
	sections = append(sections, m.renderVPad())

	if pn := m.renderPanels(); pn != "" {
		sections = append(sections, pn)
	}

	return sidePanelStyle.Render(strings.Join(sections, "\n"))
}

// renderPanels draws every visible button panel with the shared cursor.
func (m *Model) renderPanels() string {
	if len(m.panels) == 0 {
		return ""
	}
	var b strings.Builder
	idx := 0
	for _, pn := range m.panels {
		b.WriteString(panelTitleStyle.Render(pn.Title) + "\n")
		for _, btn := range pn.Buttons {
			if idx == m.buttonCursor && m.focus == focusBrowse {
				b.WriteString(buttonSelectedStyle.Render("▶ "+btn.Label) + "\n")
			} else {
				b.WriteString(buttonStyle.Render("  "+btn.Label) + "\n")
			}
			idx++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
