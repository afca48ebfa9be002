package recipe

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 5000
	maxIngredients       = 100
	maxInstructions      = 100
)

var (
	servingsMessage = fmt.Sprintf("must be between 1 and %d", domain.MaxServings)
	macroMessage    = fmt.Sprintf("must be between 0 and %.0f", domain.MaxMacroValue)
)

// IngredientInput is one ingredient line of a new recipe.
type IngredientInput struct {
	Name          string
	Quantity      string
	Calories      *float64
	Protein       *float64
	Fat           *float64
	Carbohydrates *float64
}

// CreateRecipeInput holds the parameters for creating a recipe.
type CreateRecipeInput struct {
	Name         string
	Description  string
	Servings     int
	Category     *string
	Difficulty   *domain.Difficulty
	PrepTime     *int
	CookTime     *int
	Shared       bool
	Ingredients  []IngredientInput
	Instructions []string
}

// Validate checks all fields and collects all errors.
func (i CreateRecipeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.Servings < 1 || i.Servings > domain.MaxServings {
		errs = append(errs, domain.FieldError{Field: "servings", Message: servingsMessage})
	}
	if i.Category != nil && strings.TrimSpace(*i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must not be blank"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}
	errs = append(errs, validateMinutes("prep_time", i.PrepTime)...)
	errs = append(errs, validateMinutes("cook_time", i.CookTime)...)

	if len(i.Ingredients) > maxIngredients {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "max 100 items"})
	}
	for idx, ing := range i.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIndex("ingredients", idx, "name"), Message: "required"})
		}
		for _, v := range []struct {
			field string
			value *float64
		}{
			{"calories", ing.Calories},
			{"protein", ing.Protein},
			{"fat", ing.Fat},
			{"carbohydrates", ing.Carbohydrates},
		} {
			if v.value != nil && !domain.ValidMacroValue(*v.value) {
				errs = append(errs, domain.FieldError{Field: fieldIndex("ingredients", idx, v.field), Message: macroMessage})
			}
		}
	}

	if len(i.Instructions) > maxInstructions {
		errs = append(errs, domain.FieldError{Field: "instructions", Message: "max 100 steps"})
	}
	for idx, step := range i.Instructions {
		if strings.TrimSpace(step) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIndex("instructions", idx, ""), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecipeInput holds the parameters for patching a recipe.
// nil fields are left unchanged.
type UpdateRecipeInput struct {
	RecipeID    uuid.UUID
	Name        *string
	Description *string
	Servings    *int
	Category    *string
	Difficulty  *domain.Difficulty
	PrepTime    *int
	CookTime    *int
	Shared      *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateRecipeInput) Validate() error {
	var errs []domain.FieldError

	if i.RecipeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipe_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Servings == nil && i.Category == nil &&
		i.Difficulty == nil && i.PrepTime == nil && i.CookTime == nil && i.Shared == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.Servings != nil && (*i.Servings < 1 || *i.Servings > domain.MaxServings) {
		errs = append(errs, domain.FieldError{Field: "servings", Message: servingsMessage})
	}
	if i.Category != nil && strings.TrimSpace(*i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must not be blank"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}
	errs = append(errs, validateMinutes("prep_time", i.PrepTime)...)
	errs = append(errs, validateMinutes("cook_time", i.CookTime)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSharedInput holds the paging parameters for the public recipe list.
type ListSharedInput struct {
	Cursor *domain.PageCursor
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListSharedInput) Validate() error {
	if i.Limit < 0 {
		return domain.NewValidationError("limit", "must not be negative")
	}
	return nil
}

func validateMinutes(field string, v *int) []domain.FieldError {
	if v != nil && *v < 0 {
		return []domain.FieldError{{Field: field, Message: "must not be negative"}}
	}
	return nil
}

func fieldIndex(list string, idx int, field string) string {
	if field == "" {
		return fmt.Sprintf("%s[%d]", list, idx)
	}
	return fmt.Sprintf("%s[%d].%s", list, idx, field)
}
