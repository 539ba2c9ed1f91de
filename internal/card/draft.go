package card

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/theme"
	berrors "github.com/streambingo/streambingo/pkg/errors"
)

// Draft accumulates edits to a new or existing card. Nothing touches the
// store until Build succeeds and the caller persists the result.
type Draft struct {
	id          string
	title       string
	description string
	items       []string
	theme       theme.ID
	createdAt   time.Time
}

// NewDraft starts an empty draft for a brand-new card.
func NewDraft() *Draft {
	return &Draft{
		items: emptyItems(),
		theme: theme.Default,
	}
}

// DraftFrom pre-populates a draft from an existing card so edits preserve
// its identity and creation time.
func DraftFrom(c Card) *Draft {
	d := &Draft{
		id:          c.ID,
		title:       c.Title,
		description: c.Description,
		items:       emptyItems(),
		theme:       c.Theme,
		createdAt:   c.CreatedAt,
	}
	copy(d.items, c.Items)
	if !theme.Valid(d.theme) {
		d.theme = theme.Default
	}
	return d
}

func emptyItems() []string {
	return make([]string, board.ItemCount)
}

// IsNew reports whether the draft has no backing card yet.
func (d *Draft) IsNew() bool { return d.id == "" }

// Title returns the draft title.
func (d *Draft) Title() string { return d.title }

// Description returns the draft description.
func (d *Draft) Description() string { return d.description }

// Theme returns the draft theme.
func (d *Draft) Theme() theme.ID { return d.theme }

// Items returns a copy of the 24-item sequence.
func (d *Draft) Items() []string {
	out := emptyItems()
	copy(out, d.items)
	return out
}

// Item returns the text at the given data index.
func (d *Draft) Item(dataIndex int) string {
	if dataIndex < 0 || dataIndex >= board.ItemCount {
		return ""
	}
	return d.items[dataIndex]
}

// SetTitle replaces the draft title.
func (d *Draft) SetTitle(title string) { d.title = title }

// SetDescription replaces the draft description.
func (d *Draft) SetDescription(description string) { d.description = description }

// SetTheme replaces the draft theme, ignoring unknown identifiers.
func (d *Draft) SetTheme(id theme.ID) {
	if theme.Valid(id) {
		d.theme = id
	}
}

// SetItem replaces a single element of the 24-item sequence. Out-of-range
// indices are ignored.
func (d *Draft) SetItem(dataIndex int, text string) {
	if dataIndex < 0 || dataIndex >= board.ItemCount {
		return
	}
	d.items[dataIndex] = text
}

// SetItems replaces the entire item sequence, used when the generator
// succeeds. Shorter input leaves the remaining squares empty; longer input
// is truncated.
func (d *Draft) SetItems(items []string) {
	d.items = emptyItems()
	copy(d.items, items)
}

// ClearItems resets all 24 squares to empty strings.
func (d *Draft) ClearItems() {
	d.items = emptyItems()
}

// Build validates the draft and mints the card to persist. A blank title
// fails validation and leaves the draft untouched for correction. New cards
// get a fresh id and creation stamp; edits keep both and only bump
// UpdatedAt.
func (d *Draft) Build() (Card, error) {
	if strings.TrimSpace(d.title) == "" {
		return Card{}, berrors.NewValidationError("title", "must not be empty", nil)
	}

	now := time.Now().UTC()
	c := Card{
		ID:          d.id,
		Title:       d.title,
		Description: d.description,
		Items:       d.Items(),
		Theme:       d.theme,
		CreatedAt:   d.createdAt,
		UpdatedAt:   now,
	}
	if d.IsNew() {
		c.ID = uuid.NewString()
		c.CreatedAt = now
	}

	if err := c.Validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}
