package game

import (
	"sort"
	"time"

	"github.com/streambingo/streambingo/internal/board"
)

// Progress is the persisted play state for a single card. One record exists
// per card, keyed by CardID, and it is overwritten wholesale on every toggle.
type Progress struct {
	CardID        string    `json:"card_id"`
	MarkedIndices []int     `json:"marked_indices"`
	IsWon         bool      `json:"is_won"`
	LastPlayed    time.Time `json:"last_played"`
}

// Session tracks the marked cells of one card-play and recomputes the win
// condition after every change. Win status is always a pure function of the
// current marks: unmarking a cell after a bingo reverts the session to not
// won. That matches how the card behaves across reloads and is deliberate.
type Session struct {
	cardID string
	marked map[int]bool
	won    bool
}

// NewSession starts a fresh session for the given card.
func NewSession(cardID string) *Session {
	return &Session{
		cardID: cardID,
		marked: make(map[int]bool),
	}
}

// Restore rebuilds a session from a stored progress record. Indices that are
// out of range or point at the free center are discarded; the win flag is
// recomputed rather than trusted.
func Restore(p Progress) *Session {
	s := NewSession(p.CardID)
	for _, idx := range p.MarkedIndices {
		if !board.ValidCell(idx) || idx == board.CenterIndex {
			continue
		}
		s.marked[idx] = true
	}
	s.won = board.IsWinning(s.marked)
	return s
}

// Toggle flips the mark on the given cell and re-evaluates the win
// condition. It returns true when this toggle transitioned the session from
// not won to won, which is the cue for the one-shot celebration. Toggling
// the center or an out-of-range index is a no-op.
func (s *Session) Toggle(index int) (newlyWon bool) {
	if !board.ValidCell(index) || index == board.CenterIndex {
		return false
	}

	if s.marked[index] {
		delete(s.marked, index)
	} else {
		s.marked[index] = true
	}

	wasWon := s.won
	s.won = board.IsWinning(s.marked)
	return s.won && !wasWon
}

// Reset clears every mark.
func (s *Session) Reset() {
	s.marked = make(map[int]bool)
	s.won = false
}

// Marked reports whether the given cell is marked. The center always reads
// as marked.
func (s *Session) Marked(index int) bool {
	return index == board.CenterIndex || s.marked[index]
}

// MarkedCount returns the number of explicitly marked cells, excluding the
// free center.
func (s *Session) MarkedCount() int {
	return len(s.marked)
}

// Won reports the current win state.
func (s *Session) Won() bool {
	return s.won
}

// CardID returns the id of the card being played.
func (s *Session) CardID() string {
	return s.cardID
}

// Snapshot produces the progress record to persist, stamped with the
// current time. Indices are sorted so stored records are stable.
func (s *Session) Snapshot() Progress {
	indices := make([]int, 0, len(s.marked))
	for idx := range s.marked {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	return Progress{
		CardID:        s.cardID,
		MarkedIndices: indices,
		IsWon:         s.won,
		LastPlayed:    time.Now().UTC(),
	}
}
