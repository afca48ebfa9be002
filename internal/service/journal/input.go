package journal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

const maxItemsPerCall = 50

var (
	servingsMessage = fmt.Sprintf("must be greater than 0 and at most %d", domain.MaxServings)
	macroMessage    = fmt.Sprintf("must be between 0 and %.0f", domain.MaxMacroValue)
)

// ItemInput is one meal item to log. When every macro is nil the values are
// scaled from the recipe for Servings.
type ItemInput struct {
	RecipeID uuid.UUID
	Servings float64
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

func (i ItemInput) hasSnapshot() bool {
	return i.Calories != nil || i.Protein != nil || i.Carbs != nil || i.Fat != nil
}

// AddToJournalInput holds the parameters for logging meals on a day.
type AddToJournalInput struct {
	Date  time.Time
	Items []ItemInput
}

// Validate checks all fields and collects all errors.
func (i AddToJournalInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item is required"})
	}
	if len(i.Items) > maxItemsPerCall {
		errs = append(errs, domain.FieldError{Field: "items", Message: "max 50 items"})
	}
	for idx, item := range i.Items {
		prefix := "items[" + strconv.Itoa(idx) + "]."
		if item.RecipeID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: prefix + "recipe_id", Message: "required"})
		}
		if !domain.ValidServings(item.Servings) {
			errs = append(errs, domain.FieldError{Field: prefix + "servings", Message: servingsMessage})
		}
		errs = append(errs, validateMacros(prefix, item.Calories, item.Protein, item.Carbs, item.Fat)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for patching a meal item. Servings
// is always applied; nil macros are left unchanged.
type UpdateItemInput struct {
	JournalID uuid.UUID
	ItemID    uuid.UUID
	Servings  float64
	Calories  *float64
	Protein   *float64
	Carbs     *float64
	Fat       *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !domain.ValidServings(i.Servings) {
		errs = append(errs, domain.FieldError{Field: "servings", Message: servingsMessage})
	}
	errs = append(errs, validateMacros("", i.Calories, i.Protein, i.Carbs, i.Fat)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RangeInput holds an inclusive date range.
type RangeInput struct {
	Start time.Time
	End   time.Time
}

// Validate checks all fields and collects all errors.
func (i RangeInput) Validate() error {
	var errs []domain.FieldError

	if i.Start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start", Message: "required"})
	}
	if i.End.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end", Message: "required"})
	}
	if !i.Start.IsZero() && !i.End.IsZero() && i.End.Before(i.Start) {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must not be before start"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateMacros(prefix string, calories, protein, carbs, fat *float64) []domain.FieldError {
	var errs []domain.FieldError
	for _, v := range []struct {
		field string
		value *float64
	}{
		{"calories", calories},
		{"protein", protein},
		{"carbs", carbs},
		{"fat", fat},
	} {
		if v.value != nil && !domain.ValidMacroValue(*v.value) {
			errs = append(errs, domain.FieldError{Field: prefix + v.field, Message: macroMessage})
		}
	}
	return errs
}
