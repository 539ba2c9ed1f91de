package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_MissingCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	stateDir := t.TempDir()

	_, err := executeCommand(t, stateDir, "generate", "award show moments")
	require.Error(t, err)
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestGenerateCommand_RejectsUnknownTheme(t *testing.T) {
	stateDir := t.TempDir()

	_, err := executeCommand(t, stateDir, "generate", "award show moments", "--theme", "hot-magenta")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}
