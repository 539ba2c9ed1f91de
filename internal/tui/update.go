package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/theme"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ItemsGeneratedMsg:
		// A result from an abandoned editor session is simply dropped.
		if m.viewMode != ViewEditor || msg.Seq != m.genSeq {
			m.log.Debug("discarding stale generation result")
			return m, nil
		}
		m.editor.generating = false
		m.editor.draft.SetItems(msg.Items)
		if m.editor.focus == focusGrid {
			m.editor.cellInput.SetValue(m.editor.draft.Item(0))
		}
		m.log.Info("generated items applied to draft")
		return m, nil

	case GenerateFailedMsg:
		if msg.Seq != m.genSeq {
			return m, nil
		}
		m.editor.generating = false
		m.log.Error(msg.Err, "item generation failed")
		m.reportError(fmt.Sprintf("Generation failed: %s", msg.Err))
		return m, nil

	case WinBannerClearMsg:
		m.showWinBanner = false
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewLibrary:
		return m.handleLibraryKeys(msg)
	case ViewPlayer:
		return m.handlePlayerKeys(msg)
	case ViewEditor:
		return m.handleEditorKeys(msg)
	case ViewConfirm:
		return m.handleConfirmKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleLibraryKeys handles keys on the card list screen.
func (m Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		if c, ok := m.selectedCard(); ok {
			m.openPlayer(c.ID)
		}
		return m, nil

	case "n":
		m.clearError()
		m.openEditor(nil)
		return m, nil

	case "e":
		if c, ok := m.selectedCard(); ok {
			m.clearError()
			m.openEditor(&c)
		}
		return m, nil

	case "d":
		if c, ok := m.selectedCard(); ok {
			m.askConfirm(confirmDeleteCard, c.ID,
				fmt.Sprintf("Delete %q? This cannot be undone.", c.Title))
		}
		return m, nil

	case "?":
		m.helpReturn = ViewLibrary
		m.viewMode = ViewHelp
		return m, nil

	case "esc":
		m.clearError()
		return m, nil
	}

	return m, nil
}

// handlePlayerKeys handles keys while a card is being played.
func (m Model) handlePlayerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "backspace":
		m.showWinBanner = false
		m.reloadCards()
		m.viewMode = ViewLibrary
		return m, nil

	case "up", "k":
		m.movePlayCursor(-1, 0)
		return m, nil
	case "down", "j":
		m.movePlayCursor(1, 0)
		return m, nil
	case "left", "h":
		m.movePlayCursor(0, -1)
		return m, nil
	case "right", "l":
		m.movePlayCursor(0, 1)
		return m, nil

	case "enter", " ":
		return m.toggleCell(m.playCursor)

	case "r":
		m.askConfirm(confirmResetProgress, m.active.ID, "Clear this card's progress?")
		return m, nil

	case "?":
		m.helpReturn = ViewPlayer
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// toggleCell flips a mark, persists progress write-through, and fires the
// celebration on a fresh win. Pressing the free center changes nothing, so
// it must not touch the stored record either.
func (m Model) toggleCell(index int) (tea.Model, tea.Cmd) {
	if !board.ValidCell(index) || index == board.CenterIndex {
		return m, nil
	}

	newlyWon := m.session.Toggle(index)

	// Persist unconditionally after every toggle. Write failures are
	// logged, never surfaced: play continues on the in-memory state.
	if err := m.store.SaveProgress(m.session.Snapshot()); err != nil {
		m.log.Error(err, "failed to persist progress")
	}

	if newlyWon {
		m.showWinBanner = true
		return m, clearWinBannerCmd()
	}
	if !m.session.Won() {
		m.showWinBanner = false
	}
	return m, nil
}

// movePlayCursor moves the player's cell cursor by one row/column.
func (m *Model) movePlayCursor(dRow, dCol int) {
	row := clamp(m.playCursor/5+dRow, 0, 4)
	col := clamp(m.playCursor%5+dCol, 0, 4)
	m.playCursor = row*5 + col
}

// handleEditorKeys handles keys on the editor screen.
func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.showError {
			m.clearError()
			return m, nil
		}
		m.leaveEditor()
		return m, nil

	case "tab":
		m.editor.nextFocus(false)
		return m, nil

	case "shift+tab":
		m.editor.nextFocus(true)
		return m, nil

	case "ctrl+s":
		return m.saveDraft()

	case "ctrl+k":
		m.editor.draft.ClearItems()
		m.editor.cellInput.SetValue("")
		return m, nil

	case "ctrl+g":
		return m.startGeneration()
	}

	switch m.editor.focus {
	case focusTheme:
		switch msg.String() {
		case "left", "h":
			m.editor.draft.SetTheme(theme.Prev(m.editor.draft.Theme()))
			return m, nil
		case "right", "l", "enter", " ":
			m.editor.draft.SetTheme(theme.Next(m.editor.draft.Theme()))
			return m, nil
		}
		return m, nil

	case focusGrid:
		switch msg.String() {
		case "up":
			m.editor.moveCell(-1, 0)
			return m, nil
		case "down":
			m.editor.moveCell(1, 0)
			return m, nil
		case "left":
			m.editor.moveCell(0, -1)
			return m, nil
		case "right":
			m.editor.moveCell(0, 1)
			return m, nil
		case "enter":
			// Commit and step to the next square, reading order.
			if m.editor.cell%5 == 4 {
				m.editor.moveCell(1, -4)
			} else {
				m.editor.moveCell(0, 1)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.editor.cellInput, cmd = m.editor.cellInput.Update(msg)
		m.editor.commitCell()
		return m, cmd

	case focusTitle:
		var cmd tea.Cmd
		m.editor.title, cmd = m.editor.title.Update(msg)
		return m, cmd

	case focusDescription:
		var cmd tea.Cmd
		m.editor.description, cmd = m.editor.description.Update(msg)
		return m, cmd

	case focusTopic:
		if msg.String() == "enter" {
			return m.startGeneration()
		}
		var cmd tea.Cmd
		m.editor.topic, cmd = m.editor.topic.Update(msg)
		return m, cmd
	}

	return m, nil
}

// startGeneration kicks off the async item generation unless one is
// already in flight or the topic is blank.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if m.editor.generating {
		return m, nil
	}
	topic := strings.TrimSpace(m.editor.topic.Value())
	if topic == "" {
		m.reportError("Enter a topic before generating.")
		return m, nil
	}

	m.clearError()
	m.genSeq++
	m.editor.generating = true
	m.log.Info("starting item generation")
	return m, tea.Batch(m.spinner.Tick, m.generateCmd(m.genSeq, topic))
}

// saveDraft validates and persists the draft, returning to the library on
// success. Validation failures keep the draft intact for correction.
func (m Model) saveDraft() (tea.Model, tea.Cmd) {
	m.editor.syncDraft()

	c, err := m.editor.draft.Build()
	if err != nil {
		m.reportError(err.Error())
		return m, nil
	}

	if err := m.store.UpsertCard(c); err != nil {
		m.log.Error(err, "failed to save card")
		m.reportError("Failed to save card.")
		return m, nil
	}

	m.log.WithFields(map[string]any{"card_id": c.ID}).Info("card saved")
	m.leaveEditor()
	return m, nil
}

// handleConfirmKeys handles the blocking yes/no dialog.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.confirmAccepted()

	case "n", "N", "esc", "q":
		return m.confirmDeclined()
	}
	return m, nil
}

func (m Model) confirmAccepted() (tea.Model, tea.Cmd) {
	what, id := m.confirmWhat, m.confirmID
	m.confirmWhat = confirmNone
	m.confirmID = ""
	m.confirmMsg = ""

	switch what {
	case confirmDeleteCard:
		// Optimistic local removal first, then the store delete.
		kept := m.cards[:0]
		for _, c := range m.cards {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		m.cards = kept
		if m.cursor >= len(m.cards) && m.cursor > 0 {
			m.cursor--
		}
		if err := m.store.DeleteCard(id); err != nil {
			m.log.Error(err, "failed to delete card")
		}
		m.viewMode = ViewLibrary
		return m, nil

	case confirmResetProgress:
		m.session.Reset()
		m.showWinBanner = false
		if err := m.store.ClearProgress(id); err != nil {
			m.log.Error(err, "failed to clear progress")
		}
		m.viewMode = ViewPlayer
		return m, nil
	}

	m.viewMode = ViewLibrary
	return m, nil
}

func (m Model) confirmDeclined() (tea.Model, tea.Cmd) {
	what := m.confirmWhat
	m.confirmWhat = confirmNone
	m.confirmID = ""
	m.confirmMsg = ""

	if what == confirmResetProgress {
		m.viewMode = ViewPlayer
	} else {
		m.viewMode = ViewLibrary
	}
	return m, nil
}

// handleHelpKeys dismisses the help overlay.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "?", "enter":
		m.viewMode = m.helpReturn
		return m, nil
	}
	return m, nil
}
