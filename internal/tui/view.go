package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/streambingo/streambingo/internal/theme"
)

// View renders the current model state.
func (m Model) View() string {
	switch m.viewMode {
	case ViewLibrary:
		return m.renderLibraryView()
	case ViewEditor:
		return m.renderEditorView()
	case ViewPlayer:
		return m.renderPlayerView()
	case ViewConfirm:
		return m.renderConfirmView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderLibraryView()
	}
}

// renderLibraryView renders the card list screen.
func (m Model) renderLibraryView() string {
	var content strings.Builder

	title := titleStyle.Render("🎲 StreamBingo")
	subtitle := lipgloss.NewStyle().Foreground(mutedColor).
		Render("Design bingo cards for streams, award shows, and watch parties.")
	content.WriteString(headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle)))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if len(m.cards) == 0 {
		content.WriteString(emptyStateStyle.Render("No cards yet. Press 'n' to create your first bingo card."))
	} else {
		for i, c := range m.cards {
			cfg := theme.Lookup(c.Theme)
			marker := lipgloss.NewStyle().Foreground(cfg.Primary).Render("▍")
			line := fmt.Sprintf("%s %s", marker, c.Title)
			meta := lipgloss.NewStyle().Foreground(mutedColor).
				Render(fmt.Sprintf("  %s · %s", cfg.Name, c.UpdatedAt.Local().Format("Jan 2, 2006")))

			if i == m.cursor {
				content.WriteString(selectedItemStyle.Render(line + meta))
			} else {
				content.WriteString(itemStyle.Render(line + meta))
			}
			content.WriteString("\n")
		}
	}

	content.WriteString(footerStyle.Render("↑/↓ move · enter play · n new · e edit · d delete · ? help · q quit"))
	return content.String()
}

// renderPlayerView renders the interactive board.
func (m Model) renderPlayerView() string {
	cfg := theme.Lookup(m.active.Theme)

	var content strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(cfg.Primary).Render(m.active.Title)
	if m.active.Description != "" {
		header += "\n" + lipgloss.NewStyle().Foreground(mutedColor).Render(m.active.Description)
	}
	content.WriteString(header)
	content.WriteString("\n\n")

	if m.showWinBanner {
		content.WriteString(winBannerStyle.Render("🎉  B I N G O !  🎉"))
		content.WriteString("\n")
	}

	status := notWonStatusStyle.Render("Keep watching...")
	if m.session.Won() {
		status = wonStatusStyle.Render("🏆 BINGO ACHIEVED!")
	}
	content.WriteString(status)
	content.WriteString("\n\n")

	content.WriteString(renderGrid(m.playerCells(), cfg))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("%d squares marked\n", m.session.MarkedCount()))

	content.WriteString(footerStyle.Render("arrows move · space toggle · r reset · esc exit · ? help"))
	return content.String()
}

// renderEditorView renders the card editor: a sidebar of fields next to the
// live grid preview.
func (m Model) renderEditorView() string {
	cfg := theme.Lookup(m.editor.draft.Theme())

	heading := "Create New Card"
	if !m.editor.draft.IsNew() {
		heading = "Edit Bingo Card"
	}

	var sidebar strings.Builder
	sidebar.WriteString(m.renderField("Title", m.editor.title.View(), focusTitle))
	sidebar.WriteString("\n")
	sidebar.WriteString(m.renderField("Description", m.editor.description.View(), focusDescription))
	sidebar.WriteString("\n")

	topicView := m.editor.topic.View()
	if m.editor.generating {
		topicView += " " + m.spinner.View() + " generating..."
	}
	sidebar.WriteString(m.renderField("AI Auto-Fill Topic", topicView, focusTopic))
	sidebar.WriteString("\n")

	sidebar.WriteString(m.renderThemePicker(cfg))

	var content strings.Builder
	content.WriteString(headerStyle.Render(titleStyle.Render(heading)))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		renderGrid(m.editorCells(), cfg),
	)
	content.WriteString(body)
	content.WriteString("\n")

	content.WriteString(footerStyle.Render(
		"tab next field · ctrl+g generate · ctrl+k clear grid · ctrl+s save · esc cancel"))
	return content.String()
}

// renderField renders a labelled editor input, highlighting the focused one.
func (m Model) renderField(label, input string, f editorFocus) string {
	style := fieldLabelStyle
	if m.editor.focus == f {
		style = fieldLabelFocusedStyle
	}
	return style.Render(label) + "\n" + input + "\n"
}

// renderThemePicker renders the theme selector row.
func (m Model) renderThemePicker(active theme.Config) string {
	label := fieldLabelStyle
	if m.editor.focus == focusTheme {
		label = fieldLabelFocusedStyle
	}

	var swatches []string
	for _, cfg := range theme.All() {
		swatch := lipgloss.NewStyle().Foreground(cfg.Primary).Render("●")
		if cfg.ID == active.ID {
			swatch = lipgloss.NewStyle().Foreground(cfg.Primary).Bold(true).Render("◉")
		}
		swatches = append(swatches, swatch)
	}

	return label.Render("Color Theme") + "\n" +
		strings.Join(swatches, " ") + "  " +
		lipgloss.NewStyle().Foreground(active.Primary).Render(active.Name) + "\n"
}

// renderConfirmView renders the blocking yes/no dialog.
func (m Model) renderConfirmView() string {
	box := confirmBoxStyle.Render(
		confirmTitleStyle.Render("Are you sure?") + "\n" +
			m.confirmMsg + "\n\n" +
			lipgloss.NewStyle().Foreground(mutedColor).Render("y confirm · n cancel"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpView renders the key binding overlay.
func (m Model) renderHelpView() string {
	type binding struct {
		key  string
		desc string
	}

	sections := []struct {
		title    string
		bindings []binding
	}{
		{"Library", []binding{
			{"↑/↓, j/k", "move selection"},
			{"enter", "play selected card"},
			{"n", "create a new card"},
			{"e", "edit selected card"},
			{"d", "delete selected card"},
		}},
		{"Player", []binding{
			{"arrows", "move between squares"},
			{"space", "mark / unmark square"},
			{"r", "reset progress"},
			{"esc", "back to library"},
		}},
		{"Editor", []binding{
			{"tab", "next field"},
			{"ctrl+g", "generate items from topic"},
			{"ctrl+k", "clear all squares"},
			{"ctrl+s", "save card"},
			{"esc", "discard and go back"},
		}},
	}

	var content strings.Builder
	content.WriteString(helpTitleStyle.Render("Key Bindings"))
	content.WriteString("\n")
	for _, section := range sections {
		content.WriteString(fieldLabelStyle.Render(section.title))
		content.WriteString("\n")
		for _, b := range section.bindings {
			content.WriteString(helpKeyStyle.Render(b.key))
			content.WriteString(helpDescStyle.Render(b.desc))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}
	content.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render("esc close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		helpBoxStyle.Render(content.String()))
}
