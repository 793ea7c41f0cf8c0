// Package ui is the bubbletea front end: it renders server scene payloads
// into terminal panels and forwards player intents to the dispatcher. All
// state transitions run on the single event loop.
package ui

import (
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/akinizer/adventure-of-textland/internal/api"
	"github.com/akinizer/adventure-of-textland/internal/config"
	"github.com/akinizer/adventure-of-textland/internal/session"
	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

type screen int

const (
	screenBootstrap screen = iota
	screenCharSelect
	screenSpecies
	screenClass
	screenNameGender
	screenGame
)

type focusArea int

const (
	focusBrowse focusArea = iota
	focusCommand
)

// lineKind selects the style of one output-log line.
type lineKind int

const (
	lineEcho lineKind = iota
	lineSummary
	lineDescription
	lineMessage
	lineMap
	lineAttempt
	lineError
	lineInfo
)

type logLine struct {
	kind lineKind
	text string
}

// Model is the whole client UI.
type Model struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	sess   *session.Session
	logger *slog.Logger
	rng    *rand.Rand

	screen screen
	width  int
	height int
	ready  bool
	modal  *Modal

	// game view
	output      viewport.Model
	outputLines []logLine
	header      string
	command     textinput.Model
	focus       focusArea

	scenePayload *scene.Payload
	lastAction   string // last dispatched action, for Retry Last Action
	latestToken  uuid.UUID

	// view-model derived from the latest payload
	charLines    []string
	equipSlots   []equipSlot
	panels       []panel
	buttons      []actionButton
	buttonCursor int
	zonePanel    string
	vpad         vpadState
	saveVisible  bool

	// selection and creation state
	characters  []scene.CharacterSummary
	charCursor  int
	listError   string
	listLoading bool
	options     []scene.Option
	optsCursor  int
	optsLoading bool
	optsError   string
	draft       creationDraft
	nameInput   textinput.Model
	genderIdx   int
	statusLine  string
}

// creationDraft holds the transient selections of the stepwise creation
// flow; discarded on submission or abandonment.
type creationDraft struct {
	speciesID string
	classID   string
}

func New(cfg *config.Config, client *api.Client, store *session.Store, logger *slog.Logger) *Model {
	cmd := textinput.New()
	cmd.Placeholder = "type a command, e.g. go north"
	cmd.Prompt = promptStyle.Render(":: ")
	cmd.CharLimit = 200

	name := textinput.New()
	name.Placeholder = "character name"
	name.Prompt = promptStyle.Render("> ")
	name.CharLimit = 40

	vp := viewport.New(60, 20)
	vp.MouseWheelEnabled = true

	return &Model{
		cfg:       cfg,
		client:    client,
		store:     store,
		sess:      session.New(),
		logger:    logger,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		screen:    screenBootstrap,
		output:    vp,
		command:   cmd,
		nameInput: name,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.bootstrapCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeGameView()
		return m, nil

	case tea.MouseMsg:
		var vpCmd tea.Cmd
		m.output, vpCmd = m.output.Update(msg)
		return m, vpCmd

	case tea.KeyMsg:
		return m.updateKey(msg)

	case charactersMsg:
		return m.updateCharacters(msg)
	case optionsMsg:
		return m.updateOptions(msg)
	case gameStartMsg:
		return m.updateGameStart(msg)
	case sceneTurnMsg:
		return m.updateSceneTurn(msg)
	case worldMapMsg:
		return m.updateWorldMap(msg)
	case saveMsg:
		if msg.err != nil {
			m.appendLine(lineError, "Error: "+msg.err.Error())
		} else {
			m.appendLine(lineMessage, msg.message)
		}
		return m, nil
	case deleteMsg:
		if msg.err != nil {
			m.alert("Error", "Error deleting character "+msg.name+": "+msg.err.Error())
			return m, nil
		}
		return m, m.fetchCharactersCmd()
	case clipboardMsg:
		if msg.err != nil {
			m.appendLine(lineError, "Could not copy log: "+msg.err.Error())
		} else {
			m.appendLine(lineInfo, "Output log copied to clipboard.")
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Pause and world-map toggles stay live even over their own modals,
	// so a second press closes what the first one opened.
	switch msg.String() {
	case "p", "P":
		if m.focus != focusCommand && m.screen == screenGame {
			m.togglePause()
			return m, nil
		}
	case "m", "M":
		if m.focus != focusCommand && (m.screen == screenGame || m.modalKindIs(ModalWorldMap)) {
			return m, m.toggleWorldMap()
		}
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}

	switch m.screen {
	case screenCharSelect:
		return m.updateCharSelect(msg)
	case screenSpecies, screenClass:
		return m.updateOptionPick(msg)
	case screenNameGender:
		return m.updateNameGender(msg)
	case screenGame:
		return m.updateGame(msg)
	}
	return m, nil
}

// updateGame handles keys on the main game screen.
func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusCommand {
		switch msg.Type {
		case tea.KeyEsc:
			m.command.Blur()
			m.focus = focusBrowse
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.command.Value())
			if input == "" {
				return m, nil
			}
			m.command.Reset()
			if hint := m.suggestCommand(input); hint != "" {
				m.appendLine(lineInfo, hint)
			}
			return m, m.performAction(input)
		}
		var cmd tea.Cmd
		m.command, cmd = m.command.Update(msg)
		return m, cmd
	}

	// Browse mode.
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		return m, m.vpadDispatch(msg.Type)
	case tea.KeyEnter:
		return m, m.activateButton()
	case tea.KeyEsc:
		m.present(m.gameMenuModal())
		return m, nil
	}

	switch msg.String() {
	case "/", "tab":
		m.focus = focusCommand
		return m, m.command.Focus()
	case "j":
		m.moveButtonCursor(1)
	case "k":
		m.moveButtonCursor(-1)
	case "i":
		return m, m.performAction("inventory")
	case "e":
		return m, m.vpadCenterDispatch()
	case "c":
		return m, m.copyLogCmd()
	}
	return m, nil
}

// gameMenuModal is the settings-gear menu.
func (m *Model) gameMenuModal() *Modal {
	return &Modal{
		Kind:  ModalMenu,
		Title: "Game Menu",
		Buttons: []ModalButton{
			{Label: "Main Menu", Action: func(m *Model) tea.Cmd { return m.goToMainMenu() }},
			{Label: "Cancel"},
		},
		CancelIndex: 1,
	}
}

// goToMainMenu clears the persisted identifiers and returns to the
// character-selection screen.
func (m *Model) goToMainMenu() tea.Cmd {
	m.dismiss()
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("failed to clear session identifiers", "error", err)
	}
	m.sess.ResetToMenu()
	m.screen = screenCharSelect
	m.statusLine = ""
	m.listLoading = true
	return m.fetchCharactersCmd()
}

// togglePause flips between Running and Paused. Pausing requires an
// active session; resuming requires the live modal to actually be the
// pause modal.
func (m *Model) togglePause() {
	if m.sess.Paused && m.modalKindIs(ModalPause) {
		m.sess.Paused = false
		m.logger.Debug("game resumed")
		m.dismiss()
		return
	}
	if !m.sess.Paused && m.sess.ActiveForInput {
		m.sess.Paused = true
		m.logger.Debug("game paused")
		m.present(&Modal{
			Kind:  ModalPause,
			Title: "Game Paused",
			Body:  "The game is currently paused.",
			Buttons: []ModalButton{
				{Label: "Resume Game (P)", Action: func(m *Model) tea.Cmd {
					// Re-present so togglePause sees the pause modal live.
					m.present(&Modal{Kind: ModalPause, Title: "Game Paused"})
					m.togglePause()
					return nil
				}},
			},
			CancelIndex: -1,
		})
	}
}

func (m *Model) copyLogCmd() tea.Cmd {
	var b strings.Builder
	for _, line := range m.outputLines {
		b.WriteString(line.text)
		b.WriteString("\n")
	}
	text := b.String()
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}

func (m *Model) resizeGameView() {
	if m.width == 0 || m.height == 0 {
		return
	}
	outputWidth := int(float64(m.width)*0.62) - 2
	m.output.Width = outputWidth
	m.output.Height = m.height - 10
	if m.output.Height < 5 {
		m.output.Height = 5
	}
	m.command.Width = outputWidth - 4
	m.refreshOutput()
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.modal != nil {
		return m.renderModal()
	}

	switch m.screen {
	case screenBootstrap:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			titleStyle.Render("ADVENTURE OF TEXTLAND")+"\n\n"+m.statusLine)
	case screenCharSelect:
		return m.viewCharSelect()
	case screenSpecies, screenClass:
		return m.viewOptionPick()
	case screenNameGender:
		return m.viewNameGender()
	case screenGame:
		return m.viewGame()
	}
	return ""
}
