package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/config"
	"github.com/streambingo/streambingo/internal/generator"
	"github.com/streambingo/streambingo/internal/store"
	"github.com/streambingo/streambingo/internal/theme"
)

// stubGenerator returns canned items or an error.
type stubGenerator struct {
	items []string
	err   error
}

func (g stubGenerator) Generate(_ context.Context, _ string) ([]string, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.items, nil
}

func stubFactory(g generator.Generator) GeneratorFactory {
	return func() (generator.Generator, error) { return g, nil }
}

func testItems() []string {
	items := make([]string, 24)
	for i := range items {
		items[i] = fmt.Sprintf("Item %d", i+1)
	}
	return items
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)

	gen := stubGenerator{items: testItems()}
	return NewModel(st, stubFactory(gen), config.Default(), nil)
}

func newTestCard(id, title string) card.Card {
	now := time.Now().UTC()
	return card.Card{
		ID:        id,
		Title:     title,
		Items:     testItems(),
		Theme:     theme.Default,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// asModel unwraps the tea.Model returned by Update.
func asModel(t *testing.T, tm tea.Model) Model {
	t.Helper()
	m, ok := tm.(Model)
	require.True(t, ok)
	return m
}

func TestNewModel_SeedsLibraryOnFirstRun(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, ViewLibrary, m.viewMode)
	require.Len(t, m.cards, 1)
	assert.Equal(t, "The Game Awards 2025", m.cards[0].Title)
}

func TestNewModel_SortsCardsByLastUpdate(t *testing.T) {
	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)

	older := newTestCard("card-old", "Older")
	older.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newTestCard("card-new", "Newer")

	require.NoError(t, st.UpsertCard(older))
	require.NoError(t, st.UpsertCard(newer))

	m := NewModel(st, stubFactory(stubGenerator{}), config.Default(), nil)

	require.GreaterOrEqual(t, len(m.cards), 2)
	assert.Equal(t, "card-new", m.cards[0].ID)
}

func TestOpenPlayer_RestoresSavedProgress(t *testing.T) {
	m := newTestModel(t)
	id := m.cards[0].ID

	m.openPlayer(id)
	require.Equal(t, ViewPlayer, m.viewMode)

	m.session.Toggle(0)
	m.session.Toggle(7)
	require.NoError(t, m.store.SaveProgress(m.session.Snapshot()))

	// Reopen and verify the marks came back.
	m.viewMode = ViewLibrary
	m.openPlayer(id)
	assert.True(t, m.session.Marked(0))
	assert.True(t, m.session.Marked(7))
	assert.Equal(t, 2, m.session.MarkedCount())
}

func TestOpenPlayer_VanishedCardFallsBackToLibrary(t *testing.T) {
	m := newTestModel(t)

	m.openPlayer("no-such-card")
	assert.Equal(t, ViewLibrary, m.viewMode)
}

func TestLeaveEditor_InvalidatesInFlightGeneration(t *testing.T) {
	m := newTestModel(t)
	m.openEditor(nil)

	m.editor.generating = true
	seq := m.genSeq

	m.leaveEditor()

	assert.Equal(t, ViewLibrary, m.viewMode)
	assert.False(t, m.editor.generating)
	assert.NotEqual(t, seq, m.genSeq)
}

func TestView_RendersEveryScreen(t *testing.T) {
	m := newTestModel(t)

	assert.Contains(t, m.View(), "StreamBingo")

	m.openPlayer(m.cards[0].ID)
	assert.Contains(t, m.View(), m.active.Title)
	assert.Contains(t, m.View(), "FREE")

	m.openEditor(nil)
	assert.Contains(t, m.View(), "Create New Card")

	m.askConfirm(confirmDeleteCard, "id", "Delete this card?")
	assert.Contains(t, m.View(), "Delete this card?")

	m.viewMode = ViewHelp
	assert.Contains(t, m.View(), "Key Bindings")
}

func TestView_EmptyLibraryShowsHint(t *testing.T) {
	m := newTestModel(t)
	id := m.cards[0].ID
	require.NoError(t, m.store.DeleteCard(id))
	m.reloadCards()

	assert.Contains(t, m.View(), "No cards yet")
}

func TestView_ShowsWinBanner(t *testing.T) {
	m := newTestModel(t)
	m.openPlayer(m.cards[0].ID)
	m.showWinBanner = true

	assert.Contains(t, m.View(), "B I N G O")
}
