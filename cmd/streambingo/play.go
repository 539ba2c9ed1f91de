package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/streambingo/streambingo/internal/config"
	"github.com/streambingo/streambingo/internal/generator"
	"github.com/streambingo/streambingo/internal/tui"
)

// newGeneratorFactory defers generator construction until the user actually
// asks for items, so a missing credential never blocks startup.
func newGeneratorFactory(cfg config.Config) tui.GeneratorFactory {
	return func() (generator.Generator, error) {
		return generator.NewGeminiClientFromEnv(generator.GeminiConfig{
			Model: cfg.Generator.Model,
		})
	}
}

func runPlay(flags *rootFlags) error {
	app, err := openAppEnv(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	app.log.WithFields(map[string]any{"state_dir": app.stateDir}).Info("starting interactive session")

	m := tui.NewModel(app.store, newGeneratorFactory(app.cfg), app.cfg, app.log)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "interactive session failed")
		return fmt.Errorf("failed to run interactive session: %w", err)
	}

	app.log.Info("interactive session closed")
	return nil
}
