package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/config"
	"github.com/streambingo/streambingo/internal/game"
	"github.com/streambingo/streambingo/internal/generator"
	"github.com/streambingo/streambingo/internal/logger"
	"github.com/streambingo/streambingo/internal/store"
)

// GeneratorFactory builds the item generator on first use so a missing
// credential only fails the generate operation, never startup.
type GeneratorFactory func() (generator.Generator, error)

// Model is the top-level application model. It owns the current screen and
// the in-memory card list; all state mutation happens on the bubbletea
// update loop in response to key presses or completed async generation.
type Model struct {
	store        *store.Store
	newGenerator GeneratorFactory
	log          *logger.Logger
	cfg          config.Config

	viewMode ViewMode

	// Library state
	cards  []card.Card
	cursor int

	// Player state
	active        card.Card
	session       *game.Session
	playCursor    int
	showWinBanner bool

	// Editor state. genSeq numbers generation requests monotonically
	// across all editor sessions; it lives on the model, not the editor,
	// so a request abandoned in one session can never collide with a
	// fresh session's sequence.
	editor editorState
	genSeq int

	// Confirmation state
	confirmWhat confirmAction
	confirmID   string
	confirmMsg  string

	// Error banner
	showError bool
	errorMsg  string

	// Screen to restore when the help overlay closes
	helpReturn ViewMode

	spinner spinner.Model

	width  int
	height int
}

// NewModel creates the application model. The card list is loaded from the
// store immediately, which also triggers first-run seeding.
func NewModel(st *store.Store, newGen GeneratorFactory, cfg config.Config, log *logger.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		store:        st,
		newGenerator: newGen,
		log:          log,
		cfg:          cfg,
		viewMode:     ViewLibrary,
		spinner:      s,
		width:        80,
		height:       24,
	}
	m.reloadCards()
	return m
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// reloadCards refreshes the in-memory list from the store, sorted by last
// update descending, and clamps the cursor.
func (m *Model) reloadCards() {
	cards := m.store.ListCards()
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].UpdatedAt.After(cards[j].UpdatedAt)
	})
	m.cards = cards
	if m.cursor >= len(m.cards) {
		m.cursor = len(m.cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedCard returns the card under the library cursor.
func (m *Model) selectedCard() (card.Card, bool) {
	if len(m.cards) == 0 || m.cursor >= len(m.cards) {
		return card.Card{}, false
	}
	return m.cards[m.cursor], true
}

// openPlayer starts or resumes a play session for the given card. A card
// that disappeared from the store falls back to the library silently.
func (m *Model) openPlayer(id string) {
	c, ok := m.store.GetCard(id)
	if !ok {
		m.log.Warn("card vanished before play, returning to library")
		m.reloadCards()
		m.viewMode = ViewLibrary
		return
	}

	m.active = c
	if progress, ok := m.store.GetProgress(c.ID); ok {
		m.session = game.Restore(progress)
	} else {
		m.session = game.NewSession(c.ID)
	}
	m.playCursor = 0
	m.showWinBanner = false
	m.viewMode = ViewPlayer
}

// openEditor starts the editor, either blank or pre-populated.
func (m *Model) openEditor(existing *card.Card) {
	m.editor = newEditorState(existing)
	m.viewMode = ViewEditor
}

// leaveEditor abandons the editor. Bumping the generation sequence makes
// any in-flight generator result stale.
func (m *Model) leaveEditor() {
	m.genSeq++
	m.editor.generating = false
	m.reloadCards()
	m.viewMode = ViewLibrary
}

// askConfirm switches to the blocking yes/no dialog.
func (m *Model) askConfirm(what confirmAction, id, message string) {
	m.confirmWhat = what
	m.confirmID = id
	m.confirmMsg = message
	m.viewMode = ViewConfirm
}

// reportError shows the error banner.
func (m *Model) reportError(msg string) {
	m.showError = true
	m.errorMsg = msg
}

// clearError hides the error banner.
func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}
