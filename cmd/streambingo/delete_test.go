package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/streambingo/streambingo/internal/game"
	"github.com/streambingo/streambingo/internal/store"
)

func TestDeleteCommand_ForceRemovesCardAndProgress(t *testing.T) {
	stateDir := t.TempDir()
	seedTestCard(t, stateDir, "awards-night", "Awards Night")
	seedTestProgress(t, stateDir, game.Progress{
		CardID:        "awards-night",
		MarkedIndices: []int{3},
		LastPlayed:    time.Now().UTC(),
	})

	stdout, err := executeCommand(t, stateDir, "delete", "awards-night", "--force")
	require.NoError(t, err)
	require.Contains(t, stdout, "Deleted card 'awards-night'")

	st, err := store.New(stateDir, nil)
	require.NoError(t, err)

	_, ok := st.GetCard("awards-night")
	require.False(t, ok)

	_, ok = st.GetProgress("awards-night")
	require.False(t, ok)
}

func TestDeleteCommand_UnknownCard(t *testing.T) {
	stateDir := t.TempDir()

	_, err := executeCommand(t, stateDir, "delete", "no-such-card", "--force")
	require.Error(t, err)
	require.Contains(t, err.Error(), "card not found")
}

func TestDeleteCommand_RequiresTerminalWithoutForce(t *testing.T) {
	stateDir := t.TempDir()
	seedTestCard(t, stateDir, "awards-night", "Awards Night")

	_, err := executeCommand(t, stateDir, "delete", "awards-night")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--force")
}

func TestResetCommand_ForceClearsProgress(t *testing.T) {
	stateDir := t.TempDir()
	seedTestCard(t, stateDir, "awards-night", "Awards Night")
	seedTestProgress(t, stateDir, game.Progress{
		CardID:        "awards-night",
		MarkedIndices: []int{0, 1},
		LastPlayed:    time.Now().UTC(),
	})

	stdout, err := executeCommand(t, stateDir, "reset", "awards-night", "--force")
	require.NoError(t, err)
	require.Contains(t, stdout, "Cleared progress for card 'awards-night'")

	st, err := store.New(stateDir, nil)
	require.NoError(t, err)

	_, ok := st.GetProgress("awards-night")
	require.False(t, ok)

	// The card itself survives.
	_, ok = st.GetCard("awards-night")
	require.True(t, ok)
}

func TestResetCommand_UnknownCard(t *testing.T) {
	stateDir := t.TempDir()

	_, err := executeCommand(t, stateDir, "reset", "no-such-card", "--force")
	require.Error(t, err)
	require.Contains(t, err.Error(), "card not found")
}
