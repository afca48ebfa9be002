package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealJournal is a user's log of meals for exactly one calendar day.
// Date is midnight of that day; (UserID, Date) is unique.
type MealJournal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []MealItem
}

// MealItem is one logged consumption of a recipe. The macro fields are a
// snapshot taken when the item was written; later edits to the recipe do
// not change them.
type MealItem struct {
	ID            uuid.UUID
	MealJournalID uuid.UUID
	RecipeID      uuid.UUID
	Servings      float64
	Calories      *float64
	Protein       *float64
	Carbs         *float64
	Fat           *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Recipe carries the referenced recipe's current display data. It is
	// populated on reads only.
	Recipe *RecipeSummary
}

// Macros returns the item's snapshot with missing fields as zero.
func (i MealItem) Macros() Macros {
	return Macros{
		Calories:      valueOrZero(i.Calories),
		Protein:       valueOrZero(i.Protein),
		Fat:           valueOrZero(i.Fat),
		Carbohydrates: valueOrZero(i.Carbs),
	}
}

// HasSnapshot reports whether any macro value was supplied.
func (i MealItem) HasSnapshot() bool {
	return i.Calories != nil || i.Protein != nil || i.Carbs != nil || i.Fat != nil
}

// MealItemPatch is a sparse update of a meal item. Servings is always
// applied; nil macro fields are left unchanged.
type MealItemPatch struct {
	Servings float64
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// CalendarDate returns t's calendar day in loc as a UTC midnight value,
// the form stored in DATE columns.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
