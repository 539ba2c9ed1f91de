package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/theme"
)

const (
	cellWidth  = 14
	cellHeight = 3
)

// gridCell describes one rendered square.
type gridCell struct {
	text     string
	marked   bool
	center   bool
	cursored bool
}

// renderGrid draws the 5×5 board with the given theme. Both the editor
// preview and the player share this renderer; only the cell states differ.
func renderGrid(cells [board.TotalCells]gridCell, cfg theme.Config) string {
	base := lipgloss.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		MaxHeight(cellHeight + 2).
		Align(lipgloss.Center, lipgloss.Center).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cfg.TileBg)

	rows := make([]string, 0, board.GridSize)
	for row := 0; row < board.GridSize; row++ {
		rendered := make([]string, 0, board.GridSize)
		for col := 0; col < board.GridSize; col++ {
			cell := cells[row*board.GridSize+col]
			style := base

			switch {
			case cell.center:
				style = style.
					Foreground(lipgloss.Color("220")).
					BorderForeground(lipgloss.Color("220")).
					Bold(true)
			case cell.marked:
				style = style.
					Background(cfg.TileMarked).
					Foreground(lipgloss.Color("255")).
					Bold(true)
			default:
				style = style.Foreground(cfg.Secondary)
			}

			if cell.cursored {
				style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(cfg.Accent)
			}

			rendered = append(rendered, style.Render(truncateCell(cell.text)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncateCell keeps cell text inside the fixed tile, leaving lipgloss to
// wrap what remains.
func truncateCell(text string) string {
	const max = cellWidth * cellHeight
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

// playerCells assembles the cell states for the player screen.
func (m Model) playerCells() [board.TotalCells]gridCell {
	var cells [board.TotalCells]gridCell
	for i := 0; i < board.TotalCells; i++ {
		if i == board.CenterIndex {
			cells[i] = gridCell{text: "FREE", center: true, marked: true}
		} else {
			cells[i] = gridCell{text: m.active.Item(i), marked: m.session.Marked(i)}
		}
		if i == m.playCursor {
			cells[i].cursored = true
		}
	}
	return cells
}

// editorCells assembles the cell states for the editor preview. Squares are
// numbered so empty ones remain addressable.
func (m Model) editorCells() [board.TotalCells]gridCell {
	var cells [board.TotalCells]gridCell
	for i := 0; i < board.TotalCells; i++ {
		if i == board.CenterIndex {
			cells[i] = gridCell{text: "FREE", center: true}
			continue
		}
		text := m.editor.draft.Item(board.DataIndex(i))
		if text == "" {
			text = fmt.Sprintf("#%d", board.DataIndex(i)+1)
		}
		cells[i] = gridCell{
			text:     text,
			cursored: m.editor.focus == focusGrid && i == m.editor.cell,
		}
	}
	return cells
}
