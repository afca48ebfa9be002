// Package nutrition implements the pure macro arithmetic used by recipes and
// the meal journal: serving scaling, day totals and day-over-day comparison.
package nutrition

import (
	"math"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// Round rounds to the nearest integer with halves rounded up, so
// Round(2.5) == 3 and Round(-2.5) == -2.
func Round(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// ScaleValue returns round(total / originalServings * targetServings).
func ScaleValue(total float64, originalServings int, targetServings float64) (float64, error) {
	if err := validateServings(originalServings, targetServings); err != nil {
		return 0, err
	}
	v := Round(total / float64(originalServings) * targetServings)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errOverflow()
	}
	return v, nil
}

// Scale converts a recipe's totals for originalServings into the values for
// targetServings. Each field is rounded on its own; the rounded fields are
// not adjusted to match a rounded sum.
func Scale(total domain.Macros, originalServings int, targetServings float64) (domain.Macros, error) {
	if err := validateServings(originalServings, targetServings); err != nil {
		return domain.Macros{}, err
	}
	n := float64(originalServings)
	scaled := domain.Macros{
		Calories:      Round(total.Calories / n * targetServings),
		Protein:       Round(total.Protein / n * targetServings),
		Fat:           Round(total.Fat / n * targetServings),
		Carbohydrates: Round(total.Carbohydrates / n * targetServings),
	}
	if !scaled.IsFinite() {
		return domain.Macros{}, errOverflow()
	}
	return scaled, nil
}

// Totals sums the macro fields of ingredients, counting missing fields as
// zero.
func Totals(ingredients []domain.Ingredient) domain.Macros {
	var sum domain.Macros
	for _, ing := range ingredients {
		sum = sum.Add(ing.Macros())
	}
	return sum
}

func errOverflow() error {
	return domain.NewValidationError("servings", "scaled values are out of range")
}

func validateServings(originalServings int, targetServings float64) error {
	var errs []domain.FieldError
	if originalServings <= 0 {
		errs = append(errs, domain.FieldError{Field: "recipe.servings", Message: "must be positive"})
	}
	if targetServings <= 0 || math.IsNaN(targetServings) || math.IsInf(targetServings, 0) {
		errs = append(errs, domain.FieldError{Field: "servings", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
