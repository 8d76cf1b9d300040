package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/henri123lemoine/rhymer/internal/config"
	"github.com/henri123lemoine/rhymer/internal/datamuse"
	"github.com/henri123lemoine/rhymer/internal/debug"
	"github.com/henri123lemoine/rhymer/internal/results"
	"github.com/henri123lemoine/rhymer/internal/saved"
	"github.com/henri123lemoine/rhymer/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateMain State = iota
	StateFilter
	StateHelp
)

// Focus is the region receiving key presses in StateMain.
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

// Fetcher performs word-service requests.
type Fetcher interface {
	URL(rel datamuse.Relation, word string) string
	Fetch(ctx context.Context, reqURL string) ([]datamuse.Word, error)
}

// Model is the main application model.
type Model struct {
	// Collaborators
	config *config.Config
	client Fetcher
	saved  *saved.List

	// Data
	view     results.View
	shown    results.View
	shownAny bool
	relation datamuse.Relation
	query    string
	cursor   int

	// State
	state   State
	focus   Focus
	loading bool
	status  string
	err     error

	// Inputs
	input       textinput.Model
	filterInput textinput.Model
	spinner     spinner.Model

	// UI
	width  int
	height int
	keys   KeyMap

	// Startup lookup, issued from Init
	initialWord string

	shouldQuit bool
}

// New creates a new Model. A non-empty word is looked up for rhymes on start.
func New(cfg *config.Config, client Fetcher, word string) Model {
	input := textinput.New()
	input.Placeholder = cfg.UI.Placeholder
	input.CharLimit = 100
	input.Focus()

	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		config:      cfg,
		client:      client,
		saved:       saved.New(),
		keys:        KeyMapFromConfig(&cfg.Keys),
		input:       input,
		filterInput: filterInput,
		spinner:     sp,
		state:       StateMain,
		focus:       FocusInput,
	}

	if word != "" {
		m.input.SetValue(word)
		m.initialWord = word
		m.loading = true
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.initialWord == "" {
		return textinput.Blink
	}
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		fetchWords(m.client, datamuse.RelationRhymes, m.initialWord),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case WordsLoadedMsg:
		if msg.Err != nil {
			// The failure is already in the debug log. The display keeps
			// whatever it showed, usually the loading indicator.
			return m, nil
		}
		m.showWords(msg.Relation, msg.Query, msg.Words)
		return m, nil

	case SavedExportedMsg:
		if msg.Err != nil {
			debug.Error("export saved", msg.Err)
			m.err = msg.Err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Exported %d words to %s", msg.Count, msg.Path)
		return m, nil
	}

	// Cursor blinks and the like go to whichever input is focused.
	var cmd tea.Cmd
	switch {
	case m.state == StateFilter:
		m.filterInput, cmd = m.filterInput.Update(msg)
	case m.state == StateMain && m.focus == FocusInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// showWords replaces the results display with a fresh view of words.
func (m *Model) showWords(rel datamuse.Relation, query string, words []datamuse.Word) {
	m.loading = false
	m.shownAny = true
	m.relation = rel
	m.query = query
	if rel == datamuse.RelationRhymes {
		m.view = results.Grouped(words)
	} else {
		m.view = results.Flat(words)
	}
	m.cursor = 0
	// A new response is shown in full; any earlier filter is dropped.
	m.filterInput.Reset()
	if m.state == StateFilter {
		m.filterInput.Blur()
		m.state = StateMain
	}
	m.applyFilter()
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}

	// Lookups fire from either focus.
	switch {
	case key.Matches(msg, m.keys.Rhymes):
		return m.lookup(datamuse.RelationRhymes)
	case key.Matches(msg, m.keys.Synonyms):
		return m.lookup(datamuse.RelationSimilar)
	case key.Matches(msg, m.keys.Focus):
		return m.toggleFocus()
	}

	if m.focus == FocusInput {
		return m.handleInputKeys(msg)
	}
	return m.handleResultsKeys(msg)
}

// handleInputKeys handles key presses while the word input is focused.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		return m.lookup(datamuse.RelationRhymes)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResultsKeys handles key presses while the results list is focused.
func (m Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.shown.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = max(m.shown.Len()-1, 0)
	case key.Matches(msg, m.keys.Save):
		m.saveSelected()
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Cancel):
		if m.filterInput.Value() != "" {
			m.filterInput.Reset()
			m.applyFilter()
		}
	case key.Matches(msg, m.keys.Export):
		m.status = ""
		return m, exportSaved(m.saved.Clone(), m.config.ExportPath())
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateMain
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateMain
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.state = StateMain
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// toggleFocus moves key focus between the input and the results list.
func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == FocusInput {
		m.focus = FocusResults
		m.input.Blur()
		return m, nil
	}
	m.focus = FocusInput
	m.input.Focus()
	return m, textinput.Blink
}

// lookup shows the loading indicator and requests words related to the
// current input.
func (m Model) lookup(rel datamuse.Relation) (tea.Model, tea.Cmd) {
	word := m.input.Value()
	m.status = ""
	m.err = nil

	fetch := fetchWords(m.client, rel, word)
	if m.loading {
		// Spinner is already ticking.
		return m, fetch
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, fetch)
}

// saveSelected saves the word under the cursor.
func (m *Model) saveSelected() {
	e, ok := m.shown.At(m.cursor)
	if !ok {
		return
	}
	m.saved.Add(e.Word.Word)
	m.status = ""
	debug.Log("saved %q (%d saved)", e.Word.Word, m.saved.Len())
}

// applyFilter narrows the displayed view to the current filter.
func (m *Model) applyFilter() {
	m.shown = m.view.Filter(m.filterInput.Value())

	// Ensure cursor is in bounds
	if m.cursor >= m.shown.Len() {
		m.cursor = m.shown.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// helpSections builds the help screen from the active key map.
func (m Model) helpSections() []ui.HelpSection {
	section := func(title string, bindings ...key.Binding) ui.HelpSection {
		s := ui.HelpSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Bindings = append(s.Bindings, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
		}
		return s
	}
	return []ui.HelpSection{
		section("Lookup", m.keys.Submit, m.keys.Rhymes, m.keys.Synonyms),
		section("Results", m.keys.Up, m.keys.Down, m.keys.Home, m.keys.End, m.keys.Save, m.keys.Filter, m.keys.Cancel),
		section("General", m.keys.Focus, m.keys.Export, m.keys.Help, m.keys.Quit, m.keys.ForceQuit),
	}
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(ui.RenderParams{
		State:        int(m.state),
		Width:        m.width,
		Height:       m.height,
		Config:       m.config,
		Input:        m.input.View(),
		InputFocused: m.focus == FocusInput,
		FilterInput:  m.filterInput.View(),
		FilterValue:  m.filterInput.Value(),
		Loading:      m.loading,
		SpinnerFrame: m.spinner.View(),
		HasResults:   m.shownAny,
		Relation:     m.relation,
		Query:        m.query,
		Results:      m.shown,
		Cursor:       m.cursor,
		Saved:        m.saved.String(),
		SavedCount:   m.saved.Len(),
		Status:       m.status,
		Err:          m.err,
		HelpSections: m.helpSections(),
	})
}

// Saved returns the saved-words list.
func (m Model) Saved() *saved.List {
	return m.saved
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func fetchWords(client Fetcher, rel datamuse.Relation, word string) tea.Cmd {
	id := uuid.NewString()
	reqURL := client.URL(rel, word)
	label := fmt.Sprintf("%s %q [%s]", rel, word, id)

	return func() tea.Msg {
		req := debug.StartRequest(label, reqURL)
		words, err := client.Fetch(context.Background(), reqURL)
		req.Done(len(words), err)
		return WordsLoadedMsg{RequestID: id, Relation: rel, Query: word, Words: words, Err: err}
	}
}

func exportSaved(list *saved.List, path string) tea.Cmd {
	return func() tea.Msg {
		err := list.Export(path)
		return SavedExportedMsg{Path: path, Count: list.Len(), Err: err}
	}
}
