package domain

// Difficulty is the author's estimate of how hard a recipe is.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "Easy"
	DifficultyMedium     Difficulty = "Medium"
	DifficultyHard       Difficulty = "Hard"
	DifficultyMasterChef Difficulty = "MasterChef"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMasterChef:
		return true
	}
	return false
}

// DefaultCategories are the course names seeded into the categories table.
// Other names are accepted and created on first use.
var DefaultCategories = []string{
	"Breakfast",
	"Salads",
	"MainCourse",
	"Sides",
	"Snacks",
	"Desserts",
	"Drinks",
	"SaucesAndDressings",
}

// Macro names one of the four tracked nutrition values.
type Macro string

const (
	MacroCalories      Macro = "calories"
	MacroProtein       Macro = "protein"
	MacroCarbohydrates Macro = "carbs"
	MacroFat           Macro = "fat"
)

// AllMacros lists the macros in display order.
var AllMacros = []Macro{MacroCalories, MacroProtein, MacroCarbohydrates, MacroFat}

func (m Macro) String() string { return string(m) }

func (m Macro) IsValid() bool {
	switch m {
	case MacroCalories, MacroProtein, MacroCarbohydrates, MacroFat:
		return true
	}
	return false
}

// Value returns the field of v named by m.
func (m Macro) Value(v Macros) float64 {
	switch m {
	case MacroCalories:
		return v.Calories
	case MacroProtein:
		return v.Protein
	case MacroCarbohydrates:
		return v.Carbohydrates
	case MacroFat:
		return v.Fat
	}
	return 0
}

// Direction tells whether a value went up or down against its reference.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

func (d Direction) String() string { return string(d) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeRecipe   EntityType = "RECIPE"
	EntityTypeJournal  EntityType = "JOURNAL"
	EntityTypeMealItem EntityType = "MEAL_ITEM"
	EntityTypeFavorite EntityType = "FAVORITE"
	EntityTypeReview   EntityType = "REVIEW"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeRecipe, EntityTypeJournal, EntityTypeMealItem, EntityTypeFavorite, EntityTypeReview:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
