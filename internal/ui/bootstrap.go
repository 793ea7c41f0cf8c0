package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akinizer/adventure-of-textland/internal/session"
	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

func (m *Model) bootstrapCmd() tea.Cmd {
	ids, err := m.store.Load()
	if err != nil {
		m.logger.Warn("failed to read session identifiers", "error", err)
	}
	if ids.Active && ids.CharacterName != "" {
		m.statusLine = "Resuming session for " + ids.CharacterName + "..."
		return m.resumeSessionCmd(ids.CharacterName)
	}
	m.screen = screenCharSelect
	m.listLoading = true
	return m.fetchCharactersCmd()
}

func (m *Model) resumeSessionCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		payload, err := client.ResumeSession(name)
		return gameStartMsg{
			payload: payload,
			intro:   "Session resumed for " + name + ".",
			name:    name,
			origin:  originResume,
			err:     err,
		}
	}
}

func (m *Model) loadCharacterCmd(name string, origin startOrigin) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		payload, err := client.LoadCharacter(name)
		return gameStartMsg{
			payload: payload,
			intro:   "Loaded character: " + name + ".",
			name:    name,
			origin:  origin,
			err:     err,
		}
	}
}

func (m *Model) updateGameStart(msg gameStartMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.gameStartFailed(msg)
	}
	m.enterGame(msg.payload, msg.intro, msg.name)
	return m, nil
}

// gameStartFailed picks the fallback for a failed session start. A failed
// resume degrades to a plain load; a failed fallback load clears the saved
// identifiers and returns to selection so a stale save file cannot wedge
// startup.
func (m *Model) gameStartFailed(msg gameStartMsg) (tea.Model, tea.Cmd) {
	m.logger.Warn("session start failed", "origin", int(msg.origin), "character", msg.name, "error", msg.err)

	switch msg.origin {
	case originResume:
		m.statusLine = "Resume failed, loading saved character..."
		return m, m.loadCharacterCmd(msg.name, originLoadFallback)

	case originLoadFallback:
		if err := m.store.Clear(); err != nil {
			m.logger.Warn("failed to clear session identifiers", "error", err)
		}
		m.sess.ResetToMenu()
		m.screen = screenCharSelect
		m.statusLine = "Could not restore previous session: " + msg.err.Error()
		m.listLoading = true
		return m, m.fetchCharactersCmd()

	case originLoad:
		m.statusLine = "Error loading character " + msg.name + ": " + msg.err.Error()
		return m, nil

	case originAutoCreate:
		m.screen = screenCharSelect
		m.statusLine = "Auto-create failed: " + msg.err.Error()
		m.listLoading = true
		return m, m.fetchCharactersCmd()

	default: // originCreate
		m.statusLine = ""
		m.alert("Creation Failed", "Error creating character: "+msg.err.Error())
		return m, m.nameInput.Focus()
	}
}

// enterGame switches to the game screen with a fresh per-character
// session and persists the identifiers for the next launch.
func (m *Model) enterGame(payload *scene.Payload, intro, name string) {
	m.screen = screenGame
	m.focus = focusBrowse
	m.statusLine = ""
	m.command.Blur()
	m.nameInput.Blur()
	m.dismiss()

	m.sess.ResetForCharacter()
	m.sess.ActiveForInput = true

	if err := m.store.Save(session.Identifiers{Active: true, CharacterName: name}); err != nil {
		m.logger.Warn("failed to persist session identifiers", "error", err)
	}

	if !m.sess.NexusReady() {
		m.logger.Debug("command nexus ready")
	}
	if !m.sess.VPadReady() {
		m.logger.Debug("virtual movement pad ready")
	}

	m.outputLines = nil
	if payload != nil {
		m.applyScene(payload, "")
	}
	if intro != "" {
		m.appendLine(lineMessage, intro)
	}
}
