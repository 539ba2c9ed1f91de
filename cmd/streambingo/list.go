package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/game"
	"github.com/streambingo/streambingo/internal/theme"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved bingo cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := openAppEnv(rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	cards := app.store.ListCards()
	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cards saved yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'streambingo' to create your first card.")
		return nil
	}

	enriched := make([]cardWithProgress, len(cards))
	for i, c := range cards {
		progress, _ := app.store.GetProgress(c.ID)
		enriched[i] = cardWithProgress{Card: c, Progress: progress}
	}
	sort.Slice(enriched, func(i, j int) bool {
		return enriched[i].Card.UpdatedAt.After(enriched[j].Card.UpdatedAt)
	})

	if opts.jsonOutput {
		return renderListJSON(cmd, enriched)
	}

	useUnicode := supportsUnicode(cmd.OutOrStdout()) && app.cfg.UseUnicode()
	return renderListTable(cmd, enriched, useUnicode)
}

type cardWithProgress struct {
	Card     card.Card
	Progress game.Progress
}

func renderListTable(cmd *cobra.Command, cards []cardWithProgress, useUnicode bool) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tTHEME\tMARKED\tSTATUS\tUPDATED")

	for _, c := range cards {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\n",
			c.Card.ID,
			c.Card.Title,
			theme.Lookup(c.Card.Theme).Name,
			len(c.Progress.MarkedIndices),
			formatWinStatus(c.Progress.IsWon, useUnicode),
			formatRelativeTime(c.Card.UpdatedAt),
		)
	}

	return writer.Flush()
}

type listJSONCard struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Theme         theme.ID  `json:"theme"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	MarkedSquares int       `json:"marked_squares"`
	IsWon         bool      `json:"is_won"`
}

type listJSONPayload struct {
	Count int            `json:"count"`
	Cards []listJSONCard `json:"cards"`
}

func renderListJSON(cmd *cobra.Command, cards []cardWithProgress) error {
	payload := listJSONPayload{
		Count: len(cards),
		Cards: make([]listJSONCard, len(cards)),
	}

	for i, c := range cards {
		payload.Cards[i] = listJSONCard{
			ID:            c.Card.ID,
			Title:         c.Card.Title,
			Description:   c.Card.Description,
			Theme:         c.Card.Theme,
			CreatedAt:     c.Card.CreatedAt,
			UpdatedAt:     c.Card.UpdatedAt,
			MarkedSquares: len(c.Progress.MarkedIndices),
			IsWon:         c.Progress.IsWon,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatWinStatus(won, useUnicode bool) string {
	switch {
	case won && useUnicode:
		return "🏆 bingo"
	case won:
		return "[x] bingo"
	case useUnicode:
		return "● playing"
	default:
		return "[ ] playing"
	}
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
