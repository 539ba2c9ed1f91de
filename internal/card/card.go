package card

import (
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/streambingo/streambingo/internal/board"
	"github.com/streambingo/streambingo/internal/theme"
	berrors "github.com/streambingo/streambingo/pkg/errors"
)

// Card is a user-authored bingo board definition. Items holds exactly 24
// strings, one per non-center cell in reading order (the free center is
// skipped). Cards are replaced wholesale on save; there are no partial
// field updates.
type Card struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description"`
	Items       []string  `json:"items" validate:"len=24"`
	Theme       theme.ID  `json:"theme" validate:"theme"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// card validation.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return theme.Valid(theme.ID(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the card's structural invariants.
func (c Card) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			first := errs[0]
			return berrors.NewValidationError(strings.ToLower(first.Field()), validationMessage(first), err)
		}
		return berrors.NewValidationError("", err.Error(), err)
	}
	return nil
}

// Item returns the text of the given grid cell, or the empty string for the
// center and for cards with missing data.
func (c Card) Item(cell int) string {
	if !board.ValidCell(cell) || cell == board.CenterIndex {
		return ""
	}
	data := board.DataIndex(cell)
	if data >= len(c.Items) {
		return ""
	}
	return c.Items[data]
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = errs
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "must not be empty"
	case "len":
		return "must have exactly " + fe.Param() + " entries"
	case "theme":
		return "is not a known theme"
	case "required":
		return "is required"
	default:
		return "is invalid"
	}
}
