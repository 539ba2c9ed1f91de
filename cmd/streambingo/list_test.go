package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/game"
	"github.com/streambingo/streambingo/internal/store"
	"github.com/streambingo/streambingo/internal/theme"
)

// executeCommand runs the root command against an isolated state directory
// and captures its output.
func executeCommand(t *testing.T, stateDir string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append(args, "--state-dir", stateDir))

	err := root.Execute()
	return buf.String(), err
}

func seedTestCard(t *testing.T, stateDir, id, title string) card.Card {
	t.Helper()

	st, err := store.New(stateDir, nil)
	require.NoError(t, err)

	items := make([]string, 24)
	for i := range items {
		items[i] = "Square"
	}

	now := time.Now().UTC()
	c := card.Card{
		ID:        id,
		Title:     title,
		Items:     items,
		Theme:     theme.CyberBlue,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.UpsertCard(c))
	return c
}

func seedTestProgress(t *testing.T, stateDir string, p game.Progress) {
	t.Helper()

	st, err := store.New(stateDir, nil)
	require.NoError(t, err)
	require.NoError(t, st.SaveProgress(p))
}

func TestListCommand_TableOutput(t *testing.T) {
	stateDir := t.TempDir()
	seedTestCard(t, stateDir, "awards-night", "Awards Night")
	seedTestProgress(t, stateDir, game.Progress{
		CardID:        "awards-night",
		MarkedIndices: []int{0, 1, 2},
		LastPlayed:    time.Now().UTC(),
	})

	stdout, err := executeCommand(t, stateDir, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "TITLE")
	require.Contains(t, stdout, "awards-night")
	require.Contains(t, stdout, "Awards Night")
	require.Contains(t, stdout, "Cyber Blue")
	// Buffer capture is non-TTY, expect the ASCII status fallback.
	require.Contains(t, stdout, "[ ] playing")
}

func TestListCommand_ShowsWonStatus(t *testing.T) {
	stateDir := t.TempDir()
	seedTestCard(t, stateDir, "awards-night", "Awards Night")
	seedTestProgress(t, stateDir, game.Progress{
		CardID:        "awards-night",
		MarkedIndices: []int{0, 1, 2, 3, 4},
		IsWon:         true,
		LastPlayed:    time.Now().UTC(),
	})

	stdout, err := executeCommand(t, stateDir, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "[x] bingo")
}

func TestListCommand_JSONOutput(t *testing.T) {
	stateDir := t.TempDir()
	seedTestCard(t, stateDir, "awards-night", "Awards Night")

	stdout, err := executeCommand(t, stateDir, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.GreaterOrEqual(t, payload.Count, 1)

	found := false
	for _, c := range payload.Cards {
		if c.ID == "awards-night" {
			found = true
			require.Equal(t, "Awards Night", c.Title)
			require.Equal(t, theme.CyberBlue, c.Theme)
		}
	}
	require.True(t, found)
}

func TestListCommand_SeedsSampleOnFirstRun(t *testing.T) {
	stateDir := t.TempDir()

	stdout, err := executeCommand(t, stateDir, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "The Game Awards 2025")
}
