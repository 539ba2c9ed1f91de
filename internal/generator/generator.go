package generator

import (
	"context"

	"github.com/streambingo/streambingo/internal/board"
)

// Placeholder fills the tail of a short generator response so a card always
// ends up with exactly 24 items.
const Placeholder = "Wildcard"

// Generator produces bingo square items for a topic. Implementations must
// return exactly 24 strings or an error; callers never see partial output.
type Generator interface {
	Generate(ctx context.Context, topic string) ([]string, error)
}

// Normalize enforces the 24-item law on raw generator output: extra items
// are truncated, missing items are padded with the placeholder.
func Normalize(items []string) []string {
	out := make([]string, 0, board.ItemCount)
	for _, item := range items {
		if len(out) == board.ItemCount {
			break
		}
		out = append(out, item)
	}
	for len(out) < board.ItemCount {
		out = append(out, Placeholder)
	}
	return out
}
