package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/theme"
	berrors "github.com/streambingo/streambingo/pkg/errors"
)

func validCard() Card {
	items := make([]string, board.ItemCount)
	for i := range items {
		items[i] = "square"
	}
	return Card{
		ID:        "test-card",
		Title:     "Test Card",
		Items:     items,
		Theme:     theme.CyberBlue,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestValidateAcceptsCompleteCard(t *testing.T) {
	t.Parallel()

	require.NoError(t, validCard().Validate())
}

func TestValidateRejectsBlankTitle(t *testing.T) {
	t.Parallel()

	c := validCard()
	c.Title = "   "

	err := c.Validate()
	var validationErr *berrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
}

func TestValidateRejectsWrongItemCount(t *testing.T) {
	t.Parallel()

	c := validCard()
	c.Items = c.Items[:20]

	err := c.Validate()
	var validationErr *berrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "items", validationErr.Field)
}

func TestValidateRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	c := validCard()
	c.Theme = theme.ID("vaporwave")

	err := c.Validate()
	var validationErr *berrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme", validationErr.Field)
}

func TestItemMapsAroundCenter(t *testing.T) {
	t.Parallel()

	c := validCard()
	for i := range c.Items {
		c.Items[i] = string(rune('a' + i%26))
	}

	assert.Equal(t, c.Items[0], c.Item(0))
	assert.Equal(t, c.Items[11], c.Item(11))
	assert.Equal(t, "", c.Item(board.CenterIndex))
	assert.Equal(t, c.Items[12], c.Item(13))
	assert.Equal(t, c.Items[23], c.Item(24))
	assert.Equal(t, "", c.Item(-1))
	assert.Equal(t, "", c.Item(25))
}
