package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/card"
)

// editorFocus identifies which control of the editor receives input.
type editorFocus int

const (
	focusTitle editorFocus = iota
	focusDescription
	focusTopic
	focusTheme
	focusGrid
)

// editorState holds the draft being edited plus the input widgets around
// it. The draft is purely local; nothing is persisted until save.
type editorState struct {
	draft *card.Draft

	title       textinput.Model
	description textinput.Model
	topic       textinput.Model
	cellInput   textinput.Model

	focus editorFocus
	cell  int // grid cell index under the cursor, never the center

	generating bool
}

func newEditorState(existing *card.Card) editorState {
	title := textinput.New()
	title.Placeholder = "e.g. Game Awards 2025"
	title.CharLimit = 80
	title.Width = 38

	description := textinput.New()
	description.Placeholder = "A short description..."
	description.CharLimit = 160
	description.Width = 38

	topic := textinput.New()
	topic.Placeholder = "e.g. Elden Ring DLC"
	topic.CharLimit = 80
	topic.Width = 38

	cellInput := textinput.New()
	cellInput.Placeholder = "Enter text..."
	cellInput.CharLimit = 80
	cellInput.Width = 38

	var draft *card.Draft
	if existing != nil {
		draft = card.DraftFrom(*existing)
		title.SetValue(existing.Title)
		description.SetValue(existing.Description)
	} else {
		draft = card.NewDraft()
	}

	e := editorState{
		draft:       draft,
		title:       title,
		description: description,
		topic:       topic,
		cellInput:   cellInput,
		focus:       focusTitle,
		cell:        0,
	}
	e.title.Focus()
	e.cellInput.SetValue(draft.Item(0))
	return e
}

// syncDraft copies the text widgets back into the draft.
func (e *editorState) syncDraft() {
	e.draft.SetTitle(e.title.Value())
	e.draft.SetDescription(e.description.Value())
	e.commitCell()
}

// commitCell stores the cell input's text into the draft square under the
// cursor.
func (e *editorState) commitCell() {
	e.draft.SetItem(board.DataIndex(e.cell), e.cellInput.Value())
}

// moveCell commits the current square and moves the grid cursor by the
// given row/column delta, skipping the free center.
func (e *editorState) moveCell(dRow, dCol int) {
	e.commitCell()

	row := e.cell / board.GridSize
	col := e.cell % board.GridSize
	row = clamp(row+dRow, 0, board.GridSize-1)
	col = clamp(col+dCol, 0, board.GridSize-1)
	next := row*board.GridSize + col

	if next == board.CenterIndex {
		// Step across the free cell in the direction of travel, or stay
		// put when that would leave the grid.
		stepped := next + dRow*board.GridSize + dCol
		if board.ValidCell(stepped) {
			next = stepped
		} else {
			next = e.cell
		}
	}

	e.cell = next
	e.cellInput.SetValue(e.draft.Item(board.DataIndex(e.cell)))
	e.cellInput.CursorEnd()
}

// setFocus moves input focus between editor controls.
func (e *editorState) setFocus(f editorFocus) {
	e.syncDraft()
	e.focus = f

	e.title.Blur()
	e.description.Blur()
	e.topic.Blur()
	e.cellInput.Blur()

	switch f {
	case focusTitle:
		e.title.Focus()
	case focusDescription:
		e.description.Focus()
	case focusTopic:
		e.topic.Focus()
	case focusGrid:
		e.cellInput.SetValue(e.draft.Item(board.DataIndex(e.cell)))
		e.cellInput.CursorEnd()
		e.cellInput.Focus()
	}
}

// nextFocus cycles focus forward or backward through the editor controls.
func (e *editorState) nextFocus(backward bool) {
	order := []editorFocus{focusTitle, focusDescription, focusTopic, focusTheme, focusGrid}
	for i, f := range order {
		if f == e.focus {
			if backward {
				e.setFocus(order[(i+len(order)-1)%len(order)])
			} else {
				e.setFocus(order[(i+1)%len(order)])
			}
			return
		}
	}
	e.setFocus(focusTitle)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
