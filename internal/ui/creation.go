package ui

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akinizer/adventure-of-textland/internal/api"
	"github.com/akinizer/adventure-of-textland/pkg/names"
	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

// --- character selection screen ---

func (m *Model) fetchCharactersCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		characters, err := client.GetCharacters()
		return charactersMsg{characters: characters, err: err}
	}
}

func (m *Model) updateCharacters(msg charactersMsg) (tea.Model, tea.Cmd) {
	m.listLoading = false
	if msg.err != nil {
		m.listError = msg.err.Error()
		m.characters = nil
	} else {
		m.listError = ""
		m.characters = msg.characters
	}
	m.charCursor = 0
	return m, nil
}

// selection entries beyond the character list itself.
const (
	entryCreateNew = iota
	entryAutoCreate
	entryRetry
)

func (m *Model) selectEntries() []string {
	entries := make([]string, 0, len(m.characters)+3)
	for _, c := range m.characters {
		entries = append(entries, c.Label())
	}
	entries = append(entries, "Create New Character", "Auto-Create Character")
	if m.listError != "" {
		entries = append(entries, "Retry Loading Characters")
	}
	return entries
}

func (m *Model) updateCharSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.selectEntries()

	switch msg.Type {
	case tea.KeyUp:
		if m.charCursor > 0 {
			m.charCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.charCursor < len(entries)-1 {
			m.charCursor++
		}
		return m, nil
	case tea.KeyEnter:
		return m.activateCharSelect()
	}

	switch msg.String() {
	case "x", "X":
		if m.charCursor < len(m.characters) {
			m.confirmDeleteCharacter(m.characters[m.charCursor].DisplayName)
		}
	case "r", "R":
		m.statusLine = "Auto-creating a character..."
		return m, m.autoCreateCmd()
	}
	return m, nil
}

func (m *Model) activateCharSelect() (tea.Model, tea.Cmd) {
	special := m.charCursor - len(m.characters)
	switch {
	case special < 0:
		name := m.characters[m.charCursor].DisplayName
		m.statusLine = "Loading character: " + name + "..."
		return m, m.loadCharacterCmd(name, originLoad)
	case special == entryCreateNew:
		m.screen = screenSpecies
		m.optsLoading = true
		m.optsError = ""
		m.optsCursor = 0
		m.draft = creationDraft{}
		return m, m.fetchOptionsCmd(speciesList)
	case special == entryAutoCreate:
		m.statusLine = "Auto-creating a character..."
		return m, m.autoCreateCmd()
	default:
		m.listLoading = true
		m.listError = ""
		return m, m.fetchCharactersCmd()
	}
}

func (m *Model) confirmDeleteCharacter(name string) {
	m.present(&Modal{
		Kind:  ModalConfirmDelete,
		Title: "Confirm Deletion",
		Body:  fmt.Sprintf("This operation is permanent for character '%s', proceed cautiously.", name),
		Buttons: []ModalButton{
			{Label: "Do it", Action: func(m *Model) tea.Cmd {
				client := m.client
				return func() tea.Msg {
					return deleteMsg{name: name, err: client.DeleteCharacter(name)}
				}
			}},
			{Label: "Cancel"},
		},
		CancelIndex: 1,
	})
}

func (m *Model) viewCharSelect() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ADVENTURE OF TEXTLAND") + "\n\n")
	b.WriteString("Load Character or Create New:\n\n")

	if m.listLoading {
		b.WriteString(attemptStyle.Render("Loading character list...") + "\n")
	} else {
		if m.listError != "" {
			b.WriteString(errorStyle.Render("Error loading character list: "+m.listError) + "\n\n")
		}
		for i, entry := range m.selectEntries() {
			if i == m.charCursor {
				b.WriteString(modalSelectedItemStyle.Render("▶ "+entry) + "\n")
			} else {
				b.WriteString(modalItemStyle.Render("  "+entry) + "\n")
			}
		}
	}

	if m.statusLine != "" {
		b.WriteString("\n" + attemptStyle.Render(m.statusLine) + "\n")
	}
	b.WriteString("\n" + promptStyle.Render("↑/↓ select, Enter confirm, x delete, r auto-create, Ctrl+C quit"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// --- stepwise creation: species, class ---

func (m *Model) fetchOptionsCmd(kind optionListKind) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var options []scene.Option
		var err error
		if kind == speciesList {
			options, err = client.GetSpecies()
		} else {
			options, err = client.GetClasses()
		}
		return optionsMsg{kind: kind, options: options, err: err}
	}
}

func (m *Model) updateOptions(msg optionsMsg) (tea.Model, tea.Cmd) {
	// Ignore stale list replies after leaving the stepwise flow.
	if m.screen != screenSpecies && m.screen != screenClass {
		return m, nil
	}
	m.optsLoading = false
	if msg.err != nil {
		m.optsError = msg.err.Error()
		m.options = nil
		return m, nil
	}
	m.optsError = ""
	m.options = msg.options
	m.optsCursor = 0
	return m, nil
}

func (m *Model) updateOptionPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.optsCursor > 0 {
			m.optsCursor--
		}
	case tea.KeyDown:
		if m.optsCursor < len(m.options)-1 {
			m.optsCursor++
		}
	case tea.KeyEsc:
		m.screen = screenCharSelect
		m.statusLine = ""
		m.listLoading = true
		return m, m.fetchCharactersCmd()
	case tea.KeyEnter:
		if m.optsError != "" {
			// Retry the failed list fetch.
			m.optsLoading = true
			m.optsError = ""
			if m.screen == screenSpecies {
				return m, m.fetchOptionsCmd(speciesList)
			}
			return m, m.fetchOptionsCmd(classList)
		}
		if len(m.options) == 0 {
			return m, nil
		}
		picked := m.options[m.optsCursor]
		if m.screen == screenSpecies {
			m.draft.speciesID = picked.ID
			m.screen = screenClass
			m.optsLoading = true
			m.optsCursor = 0
			return m, m.fetchOptionsCmd(classList)
		}
		m.draft.classID = picked.ID
		m.screen = screenNameGender
		m.genderIdx = 0
		m.nameInput.Reset()
		return m, m.nameInput.Focus()
	}
	return m, nil
}

func (m *Model) viewOptionPick() string {
	title := "Choose your Species:"
	loading := "Loading species..."
	if m.screen == screenClass {
		title = "Choose your Class:"
		loading = "Loading classes..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	switch {
	case m.optsLoading:
		b.WriteString(attemptStyle.Render(loading) + "\n")
	case m.optsError != "":
		b.WriteString(errorStyle.Render("Error loading options: "+m.optsError) + "\n")
		b.WriteString(promptStyle.Render("Enter to retry, Esc to go back") + "\n")
	default:
		for i, opt := range m.options {
			if i == m.optsCursor {
				b.WriteString(modalSelectedItemStyle.Render("▶ "+opt.Label()) + "\n")
			} else {
				b.WriteString(modalItemStyle.Render("  "+opt.Label()) + "\n")
			}
		}
		b.WriteString("\n" + promptStyle.Render("↑/↓ select, Enter confirm, Esc back"))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// --- name and gender form ---

func (m *Model) updateNameGender(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenClass
		m.nameInput.Blur()
		return m, nil
	case tea.KeyLeft, tea.KeyRight, tea.KeyTab:
		m.genderIdx = (m.genderIdx + 1) % len(names.Genders)
		return m, nil
	case tea.KeyEnter:
		return m.submitCreation()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	// Real-time input filtering, as on the original form.
	filtered := names.FilterInput(m.nameInput.Value())
	if filtered != m.nameInput.Value() {
		m.nameInput.SetValue(filtered)
		m.nameInput.CursorEnd()
	}
	return m, cmd
}

func (m *Model) submitCreation() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nameInput.Value())
	if err := names.Validate(name); err != nil {
		// Validation failures never reach the server.
		m.alert("Invalid Name", sentence(err.Error())+". Please try again.")
		return m, m.nameInput.Focus()
	}

	req := api.CreateCharacterRequest{
		SpeciesID:    m.draft.speciesID,
		ClassID:      m.draft.classID,
		PlayerName:   name,
		PlayerGender: names.Genders[m.genderIdx],
	}
	m.statusLine = "Creating character on server..."
	client := m.client
	return m, func() tea.Msg {
		payload, err := client.CreateCharacter(req)
		return gameStartMsg{
			payload: payload,
			intro:   "Character created! Your adventure begins.",
			name:    name,
			origin:  originCreate,
			err:     err,
		}
	}
}

func (m *Model) viewNameGender() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter Name and Choose Gender:") + "\n\n")
	b.WriteString(m.nameInput.View() + "\n\n")
	for i, g := range names.Genders {
		marker := "( )"
		if i == m.genderIdx {
			marker = "(•)"
		}
		b.WriteString(marker + " " + g + "   ")
	}
	b.WriteString("\n\n" + promptStyle.Render("Tab toggles gender, Enter starts the adventure, Esc back"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// sentence uppercases only the first rune, leaving the rest of the
// message as written.
func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// --- auto-create shortcut ---

// autoCreateCmd fetches species and classes concurrently, picks a random
// entry from each plus a generated name and gender, and submits directly,
// bypassing the stepwise screens.
func (m *Model) autoCreateCmd() tea.Cmd {
	client := m.client
	name := names.Random(m.rng)
	gender := names.RandomGender(m.rng)
	speciesIdx := m.rng.Int()
	classIdx := m.rng.Int()

	return func() tea.Msg {
		var (
			wg       sync.WaitGroup
			species  []scene.Option
			classes  []scene.Option
			errSpec  error
			errClass error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			species, errSpec = client.GetSpecies()
		}()
		go func() {
			defer wg.Done()
			classes, errClass = client.GetClasses()
		}()
		wg.Wait()

		fail := func(err error) tea.Msg {
			return gameStartMsg{origin: originAutoCreate, err: err}
		}
		if errSpec != nil {
			return fail(errSpec)
		}
		if errClass != nil {
			return fail(errClass)
		}
		if len(species) == 0 || len(classes) == 0 {
			return fail(fmt.Errorf("server offered no species or classes"))
		}

		payload, err := client.CreateCharacter(api.CreateCharacterRequest{
			SpeciesID:    species[speciesIdx%len(species)].ID,
			ClassID:      classes[classIdx%len(classes)].ID,
			PlayerName:   name,
			PlayerGender: gender,
		})
		return gameStartMsg{
			payload: payload,
			intro:   "Character created! Your adventure begins.",
			name:    name,
			origin:  originAutoCreate,
			err:     err,
		}
	}
}
