package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalKind identifies what a modal is for. The kind is carried on the
// open call so state checks never sniff visible title text.
type ModalKind int

const (
	ModalMenu ModalKind = iota
	ModalPause
	ModalWorldMap
	ModalInventory
	ModalConfirmDelete
	ModalConnError
	ModalAlert
)

// ModalButton is one action choice at the bottom of a modal. The action
// runs first; the modal then closes unless the action presented a new one.
type ModalButton struct {
	Label  string
	Action func(m *Model) tea.Cmd
}

// Modal is a single overlay dialog. At most one modal is live at a time;
// presenting a new one supersedes the old.
type Modal struct {
	Kind    ModalKind
	Title   string
	Body    string
	Buttons []ModalButton

	// Selected is the highlighted button index.
	Selected int
	// CancelIndex is the button Esc activates, -1 to ignore Esc.
	CancelIndex int

	// inv carries grid state while Kind == ModalInventory.
	inv *inventoryState
}

// present replaces any live modal with this one.
func (m *Model) present(modal *Modal) {
	m.modal = modal
}

// dismiss removes the live modal, if any.
func (m *Model) dismiss() {
	m.modal = nil
}

// modalKindIs reports whether the live modal has the given kind.
func (m *Model) modalKindIs(kind ModalKind) bool {
	return m.modal != nil && m.modal.Kind == kind
}

// updateModal routes a key press to the live modal. The pause toggle and
// world-map toggle keys are handled before this is reached.
func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal := m.modal

	if modal.Kind == ModalInventory {
		return m.updateInventoryModal(msg)
	}

	switch msg.Type {
	case tea.KeyLeft:
		if modal.Selected > 0 {
			modal.Selected--
		}
	case tea.KeyRight:
		if modal.Selected < len(modal.Buttons)-1 {
			modal.Selected++
		}
	case tea.KeyEsc:
		if modal.CancelIndex >= 0 && modal.CancelIndex < len(modal.Buttons) {
			return m.activateModalButton(modal.CancelIndex)
		}
	case tea.KeyEnter:
		if len(modal.Buttons) > 0 {
			return m.activateModalButton(modal.Selected)
		}
		m.dismiss()
	}
	return m, nil
}

func (m *Model) activateModalButton(index int) (tea.Model, tea.Cmd) {
	modal := m.modal
	btn := modal.Buttons[index]
	m.dismiss()
	if btn.Action == nil {
		return m, nil
	}
	return m, btn.Action(m)
}

// alert shows a blocking notice with a single OK button.
func (m *Model) alert(title, body string) {
	m.present(&Modal{
		Kind:        ModalAlert,
		Title:       title,
		Body:        body,
		Buttons:     []ModalButton{{Label: "OK"}},
		CancelIndex: 0,
	})
}

func (m *Model) renderModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	modal := m.modal

	body := modal.Body
	if modal.Kind == ModalInventory && modal.inv != nil {
		body = m.renderInventoryBody(modal.inv)
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(modal.Title))
	if body != "" {
		content.WriteString("\n\n")
		content.WriteString(body)
	}
	if len(modal.Buttons) > 0 {
		content.WriteString("\n\n")
		labels := make([]string, len(modal.Buttons))
		for i, btn := range modal.Buttons {
			if i == modal.Selected {
				labels[i] = modalSelectedItemStyle.Render("[ " + btn.Label + " ]")
			} else {
				labels[i] = modalItemStyle.Render("  " + btn.Label + "  ")
			}
		}
		content.WriteString(strings.Join(labels, " "))
		content.WriteString("\n")
		content.WriteString(promptStyle.Render("←/→ select, Enter confirm"))
	}

	width := 60
	if modal.Kind == ModalWorldMap || modal.Kind == ModalInventory {
		width = m.width - 8
		if width > 100 {
			width = 100
		}
	}
	box := modalStyle.Width(width).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}
