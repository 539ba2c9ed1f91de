package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// winBannerDuration is how long the celebratory banner stays on screen.
const winBannerDuration = 5 * time.Second

// generateCmd runs item generation asynchronously. The UI stays interactive
// while it runs; only the generation trigger is disabled. The sequence
// number lets the update loop drop results that arrive after the user
// navigated away.
func (m Model) generateCmd(seq int, topic string) tea.Cmd {
	return func() tea.Msg {
		gen, err := m.newGenerator()
		if err != nil {
			return GenerateFailedMsg{Seq: seq, Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.GeneratorTimeout())
		defer cancel()

		items, err := gen.Generate(ctx, topic)
		if err != nil {
			return GenerateFailedMsg{Seq: seq, Err: err}
		}
		return ItemsGeneratedMsg{Seq: seq, Items: items}
	}
}

// clearWinBannerCmd schedules the banner dismissal.
func clearWinBannerCmd() tea.Cmd {
	return tea.Tick(winBannerDuration, func(time.Time) tea.Msg {
		return WinBannerClearMsg{}
	})
}
