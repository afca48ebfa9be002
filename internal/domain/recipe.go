package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Input bounds for servings and per-field macro values. Products and sums of
// values inside these bounds stay finite.
const (
	MaxServings   = 1000
	MaxMacroValue = 1e6
)

// ValidMacroValue reports whether v is a usable macro value: finite and in
// [0, MaxMacroValue].
func ValidMacroValue(v float64) bool {
	return v >= 0 && v <= MaxMacroValue
}

// ValidServings reports whether v is a usable serving count: finite and in
// (0, MaxServings].
func ValidServings(v float64) bool {
	return v > 0 && v <= MaxServings
}

// Macros holds the four tracked nutrition values.
type Macros struct {
	Calories      float64
	Protein       float64
	Fat           float64
	Carbohydrates float64
}

// IsFinite reports whether every field is neither NaN nor infinite.
func (m Macros) IsFinite() bool {
	for _, v := range []float64{m.Calories, m.Protein, m.Fat, m.Carbohydrates} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Add returns the field-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories:      m.Calories + o.Calories,
		Protein:       m.Protein + o.Protein,
		Fat:           m.Fat + o.Fat,
		Carbohydrates: m.Carbohydrates + o.Carbohydrates,
	}
}

// Recipe is a user-authored recipe. Calories, Protein, Fat and Carbohydrates
// are totals for all Servings, summed from the ingredients at creation time.
// They are not recomputed when ingredients change later.
type Recipe struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Slug        string
	Description string
	Image       *string
	Servings    int
	Totals      Macros
	Difficulty  *Difficulty
	PrepTime    *int
	CookTime    *int
	Shared      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category     *string
	Ingredients  []Ingredient
	Instructions []Instruction
}

// Ingredient is one line of a recipe. Macro fields are optional; a missing
// field counts as zero when totals are computed.
type Ingredient struct {
	ID            uuid.UUID
	RecipeID      uuid.UUID
	Position      int
	Name          string
	Quantity      string
	Calories      *float64
	Protein       *float64
	Fat           *float64
	Carbohydrates *float64
}

// Macros returns the ingredient's values with missing fields as zero.
func (i Ingredient) Macros() Macros {
	return Macros{
		Calories:      valueOrZero(i.Calories),
		Protein:       valueOrZero(i.Protein),
		Fat:           valueOrZero(i.Fat),
		Carbohydrates: valueOrZero(i.Carbohydrates),
	}
}

// Instruction is one ordered step of a recipe.
type Instruction struct {
	ID       uuid.UUID
	RecipeID uuid.UUID
	Position int
	Text     string
}

// Category groups recipes by course.
type Category struct {
	ID   uuid.UUID
	Name string
}

// RecipeSummary is the display subset of a recipe used to hydrate journal
// items and favorite lists.
type RecipeSummary struct {
	ID    uuid.UUID
	Name  string
	Slug  string
	Image *string
}

// RecipeUpdateParams is a sparse patch; nil fields are left unchanged.
type RecipeUpdateParams struct {
	Name        *string
	Description *string
	Servings    *int
	CategoryID  *uuid.UUID
	Difficulty  *Difficulty
	PrepTime    *int
	CookTime    *int
	Shared      *bool
}

// Review is a user's star rating and comment on a recipe.
type Review struct {
	ID        uuid.UUID
	RecipeID  uuid.UUID
	UserID    uuid.UUID
	Stars     int
	Comments  string
	CreatedAt time.Time
}

// FavoriteRecipe links a user to a recipe they marked as favorite. The pair
// is not unique: adding twice stores two rows.
type FavoriteRecipe struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RecipeID  uuid.UUID
	CreatedAt time.Time
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// PageCursor marks a position in a list ordered by (CreatedAt, ID)
// descending. The next page starts strictly after it.
type PageCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// RecipePage is one page of a keyset-paginated recipe list. NextCursor is
// nil on the last page.
type RecipePage struct {
	Recipes    []Recipe
	NextCursor *PageCursor
}

// UploadURL is a presigned request the client uses to upload a recipe
// image directly to blob storage.
type UploadURL struct {
	URL       string
	Method    string
	Key       string
	ExpiresAt time.Time
}

// AverageStars returns the mean star rating of reviews. ok is false when
// there are no reviews; the average is absent, not zero.
func AverageStars(reviews []Review) (avg float64, ok bool) {
	if len(reviews) == 0 {
		return 0, false
	}
	var sum int
	for _, r := range reviews {
		sum += r.Stars
	}
	return float64(sum) / float64(len(reviews)), true
}

// NewRecipePage builds a page from up to limit+1 recipes fetched in list
// order. The extra recipe, when present, only signals that another page
// exists and is dropped.
func NewRecipePage(recipes []Recipe, limit int) RecipePage {
	if len(recipes) <= limit {
		return RecipePage{Recipes: recipes}
	}
	page := recipes[:limit]
	last := page[len(page)-1]
	return RecipePage{
		Recipes:    page,
		NextCursor: &PageCursor{CreatedAt: last.CreatedAt, ID: last.ID},
	}
}
