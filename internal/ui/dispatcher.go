package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/akinizer/adventure-of-textland/internal/api"
)

// performAction forwards a player intent to the server. While paused it
// is a silent no-op: no network call, no log line. The "Attempting
// action" line is appended before the call resolves and is removed again
// if a connectivity-error modal supersedes it.
func (m *Model) performAction(action string) tea.Cmd {
	if m.sess.Paused {
		m.logger.Debug("game is paused, action not sent", "action", action)
		return nil
	}

	m.appendLine(lineAttempt, "Attempting action: "+action)

	token := uuid.New()
	m.latestToken = token
	m.lastAction = action

	client := m.client
	return func() tea.Msg {
		payload, err := client.ProcessAction(action)
		return sceneTurnMsg{payload: payload, action: action, token: token, err: err}
	}
}

// updateSceneTurn applies one dispatched action's outcome. Responses are
// applied in arrival order; a stale token is only worth a log line.
func (m *Model) updateSceneTurn(msg sceneTurnMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsConnectivityError(msg.err) {
			m.removeAttemptLine()
			m.present(m.connectivityModal(msg.action, msg.err))
			return m, nil
		}
		m.appendLine(lineError, "Error: "+msg.err.Error())
		return m, nil
	}

	if msg.token != m.latestToken {
		m.logger.Warn("applying out-of-order response", "action", msg.action)
	}
	m.applyScene(msg.payload, msg.action)
	return m, nil
}

// connectivityModal offers a single user-triggered retry; there is no
// automatic backoff.
func (m *Model) connectivityModal(action string, err error) *Modal {
	return &Modal{
		Kind:  ModalConnError,
		Title: "Connection Problem",
		Body:  "Could not reach the game server.\n" + err.Error(),
		Buttons: []ModalButton{
			{Label: "Retry Last Action", Action: func(m *Model) tea.Cmd {
				return m.performAction(action)
			}},
			{Label: "Main Menu", Action: func(m *Model) tea.Cmd {
				return m.goToMainMenu()
			}},
			{Label: "Close"},
		},
		CancelIndex: 2,
	}
}

// removeAttemptLine drops the most recent "Attempting action" line.
func (m *Model) removeAttemptLine() {
	for i := len(m.outputLines) - 1; i >= 0; i-- {
		if m.outputLines[i].kind == lineAttempt {
			m.outputLines = append(m.outputLines[:i], m.outputLines[i+1:]...)
			m.refreshOutput()
			return
		}
	}
}

// saveGameCmd posts the save request directly, outside the action
// dispatcher; the server's message lands in the output log.
func (m *Model) saveGameCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		message, err := client.SaveGameState()
		return saveMsg{message: message, err: err}
	}
}
