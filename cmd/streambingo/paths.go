package main

import (
	"os"
	"path/filepath"

	"github.com/streambingo/streambingo/internal/config"
	"github.com/streambingo/streambingo/internal/logger"
	"github.com/streambingo/streambingo/internal/store"
)

func resolveStateDir(flags *rootFlags) (string, error) {
	if flags.stateDir != "" {
		return flags.stateDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".streambingo"), nil
}

// appEnv bundles the pieces every command needs: resolved state directory,
// loaded configuration, file logger, and the card store.
type appEnv struct {
	stateDir string
	cfg      config.Config
	log      *logger.Logger
	store    *store.Store
}

func (a *appEnv) Close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

func openAppEnv(flags *rootFlags) (*appEnv, error) {
	stateDir, err := resolveStateDir(flags)
	if err != nil {
		return nil, newCommandError("start", "determining state directory", err, "Ensure your HOME directory is set correctly.")
	}

	cfg, err := config.Load(stateDir)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix or remove the config file in the state directory.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	// The TUI owns the terminal, so logs go to a file in the state
	// directory instead of stderr.
	log, err := logger.NewFile(filepath.Join(stateDir, "streambingo.log"), level)
	if err != nil {
		return nil, newCommandError("start", "opening log file", err, "Check state directory permissions and try again.")
	}

	st, err := store.New(stateDir, log)
	if err != nil {
		_ = log.Close()
		return nil, newCommandError("start", "opening card store", err, "Check state directory permissions and try again.")
	}

	return &appEnv{stateDir: stateDir, cfg: cfg, log: log, store: st}, nil
}
