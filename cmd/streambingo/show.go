package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/game"
	"github.com/streambingo/streambingo/internal/theme"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card's squares and play progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output card details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, cardID string, opts *showOptions) error {
	if strings.TrimSpace(cardID) == "" {
		return newCommandError("show", "validating card ID", errors.New("card ID cannot be empty"), "Provide the card ID you wish to inspect.")
	}

	app, err := openAppEnv(rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	c, ok := app.store.GetCard(cardID)
	if !ok {
		return newCommandError("show", fmt.Sprintf("looking up card %q", cardID), errors.New("card not found"), "Run 'streambingo list' to view saved cards.")
	}

	progress, _ := app.store.GetProgress(cardID)

	if opts.jsonOutput {
		return renderShowJSON(cmd, c, progress)
	}

	useUnicode := supportsUnicode(cmd.OutOrStdout()) && app.cfg.UseUnicode()
	return renderShowText(cmd, c, progress, useUnicode)
}

func renderShowText(cmd *cobra.Command, c card.Card, progress game.Progress, useUnicode bool) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Card:  %s\n", c.ID)
	fmt.Fprintf(out, "Title: %s\n", c.Title)
	fmt.Fprintf(out, "Theme: %s\n", theme.Lookup(c.Theme).Name)
	fmt.Fprintf(out, "\nDescription:\n  %s\n\n", valueOrFallback(c.Description, "(none)"))

	fmt.Fprintf(out, "Status: %s\n", formatWinStatus(progress.IsWon, useUnicode))
	fmt.Fprintf(out, "Marked: %d of %d squares\n\n", len(progress.MarkedIndices), board.ItemCount)

	marked := make(map[int]bool, len(progress.MarkedIndices))
	for _, idx := range progress.MarkedIndices {
		marked[idx] = true
	}

	fmt.Fprintln(out, renderGridPreview(c, marked, useUnicode))

	fmt.Fprintln(out, "Squares:")
	for cell := 0; cell < board.TotalCells; cell++ {
		if cell == board.CenterIndex {
			fmt.Fprintf(out, "  %2d. (free center)\n", cell+1)
			continue
		}

		check := "[ ]"
		if marked[cell] {
			check = "[x]"
		}
		fmt.Fprintf(out, "  %2d. %s %s\n", cell+1, check, c.Item(cell))
	}

	fmt.Fprintf(out, "\nCreated: %s\n", c.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Updated: %s\n", c.UpdatedAt.Format(time.RFC3339))
	return nil
}

// renderGridPreview draws a compact 5×5 board in the card's theme colors:
// filled tiles for marked squares, a star for the free center.
func renderGridPreview(c card.Card, marked map[int]bool, useUnicode bool) string {
	cfg := theme.Lookup(c.Theme)

	markedStyle := lipgloss.NewStyle().Foreground(cfg.Primary).Bold(true)
	openStyle := lipgloss.NewStyle().Foreground(cfg.Secondary)
	centerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	markedGlyph, openGlyph, centerGlyph := "■", "·", "★"
	if !useUnicode {
		markedGlyph, openGlyph, centerGlyph = "#", ".", "*"
	}

	var b strings.Builder
	for row := 0; row < board.GridSize; row++ {
		b.WriteString("  ")
		for col := 0; col < board.GridSize; col++ {
			cell := row*board.GridSize + col
			switch {
			case cell == board.CenterIndex:
				b.WriteString(centerStyle.Render(centerGlyph))
			case marked[cell]:
				b.WriteString(markedStyle.Render(markedGlyph))
			default:
				b.WriteString(openStyle.Render(openGlyph))
			}
			if col < board.GridSize-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

type showJSONPayload struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Theme         theme.ID   `json:"theme"`
	Items         []string   `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	MarkedIndices []int      `json:"marked_indices"`
	IsWon         bool       `json:"is_won"`
	LastPlayed    *time.Time `json:"last_played,omitempty"`
}

func renderShowJSON(cmd *cobra.Command, c card.Card, progress game.Progress) error {
	payload := showJSONPayload{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Theme:         c.Theme,
		Items:         c.Items,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		MarkedIndices: progress.MarkedIndices,
		IsWon:         progress.IsWon,
	}

	if !progress.LastPlayed.IsZero() {
		payload.LastPlayed = &progress.LastPlayed
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
