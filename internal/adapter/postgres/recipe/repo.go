// Package recipe implements the Recipe repository using PostgreSQL:
// recipes with their ingredients, instructions and categories.
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var recipeColumns = []string{
	"r.id", "r.user_id", "r.category_id", "r.name", "r.slug", "r.description", "r.image",
	"r.servings", "r.calories", "r.protein", "r.fat", "r.carbohydrates",
	"r.difficulty", "r.prep_time", "r.cook_time", "r.shared", "r.created_at", "r.updated_at",
	"c.name AS category",
}

const returningRecipe = `RETURNING id, user_id, category_id, name, slug, description, image,
	servings, calories, protein, fat, carbohydrates, difficulty, prep_time, cook_time,
	shared, created_at, updated_at,
	(SELECT name FROM categories WHERE id = category_id) AS category`

type recipeRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	CategoryID    *uuid.UUID `db:"category_id"`
	Name          string     `db:"name"`
	Slug          string     `db:"slug"`
	Description   string     `db:"description"`
	Image         *string    `db:"image"`
	Servings      int        `db:"servings"`
	Calories      float64    `db:"calories"`
	Protein       float64    `db:"protein"`
	Fat           float64    `db:"fat"`
	Carbohydrates float64    `db:"carbohydrates"`
	Difficulty    *string    `db:"difficulty"`
	PrepTime      *int       `db:"prep_time"`
	CookTime      *int       `db:"cook_time"`
	Shared        bool       `db:"shared"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	Category      *string    `db:"category"`
}

type ingredientRow struct {
	ID            uuid.UUID `db:"id"`
	RecipeID      uuid.UUID `db:"recipe_id"`
	Position      int       `db:"position"`
	Name          string    `db:"name"`
	Quantity      string    `db:"quantity"`
	Calories      *float64  `db:"calories"`
	Protein       *float64  `db:"protein"`
	Fat           *float64  `db:"fat"`
	Carbohydrates *float64  `db:"carbohydrates"`
}

type instructionRow struct {
	ID       uuid.UUID `db:"id"`
	RecipeID uuid.UUID `db:"recipe_id"`
	Position int       `db:"position"`
	Text     string    `db:"text"`
}

type summaryRow struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Slug  string    `db:"slug"`
	Image *string   `db:"image"`
}

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new recipe repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectRecipes() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(recipeColumns...).
		From("recipes r").
		LeftJoin("categories c ON c.id = r.category_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recipe's scalar fields and category name. Ingredients
// and instructions are not loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recipeRow
	if err := postgres.Get(ctx, q, &row, selectRecipes().Where(squirrel.Eq{"r.id": id})); err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}

	rec := toDomainRecipe(row)
	return &rec, nil
}

// GetBySlug returns a recipe by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recipeRow
	if err := postgres.Get(ctx, q, &row, selectRecipes().Where(squirrel.Eq{"r.slug": slug})); err != nil {
		return nil, postgres.MapError(err, "recipe", slug)
	}

	rec := toDomainRecipe(row)
	return &rec, nil
}

// Exists reports whether a recipe with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recipes WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "recipe", id)
	}
	return exists, nil
}

// SlugExists reports whether slug is already taken.
func (r *Repo) SlugExists(ctx context.Context, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recipes WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "recipe", slug)
	}
	return exists, nil
}

// GetIngredients returns a recipe's ingredients ordered by position.
func (r *Repo) GetIngredients(ctx context.Context, recipeID uuid.UUID) ([]domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []ingredientRow
	query := postgres.Builder().
		Select("id", "recipe_id", "position", "name", "quantity", "calories", "protein", "fat", "carbohydrates").
		From("ingredients").
		Where(squirrel.Eq{"recipe_id": recipeID}).
		OrderBy("position")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "ingredient", recipeID)
	}

	out := make([]domain.Ingredient, len(rows))
	for i, row := range rows {
		out[i] = toDomainIngredient(row)
	}
	return out, nil
}

// GetInstructions returns a recipe's steps ordered by position.
func (r *Repo) GetInstructions(ctx context.Context, recipeID uuid.UUID) ([]domain.Instruction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []instructionRow
	query := postgres.Builder().
		Select("id", "recipe_id", "position", "text").
		From("instructions").
		Where(squirrel.Eq{"recipe_id": recipeID}).
		OrderBy("position")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "instruction", recipeID)
	}

	out := make([]domain.Instruction, len(rows))
	for i, row := range rows {
		out[i] = domain.Instruction{ID: row.ID, RecipeID: row.RecipeID, Position: row.Position, Text: row.Text}
	}
	return out, nil
}

// GetSummariesByIDs returns the display subset of each recipe in ids.
// Missing ids are absent from the result; order is unspecified.
func (r *Repo) GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RecipeSummary, error) {
	if len(ids) == 0 {
		return []domain.RecipeSummary{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []summaryRow
	query := postgres.Builder().
		Select("id", "name", "slug", "image").
		From("recipes").
		Where(squirrel.Eq{"id": ids})
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "recipe", fmt.Sprintf("%d ids", len(ids)))
	}

	out := make([]domain.RecipeSummary, len(rows))
	for i, row := range rows {
		out[i] = domain.RecipeSummary{ID: row.ID, Name: row.Name, Slug: row.Slug, Image: row.Image}
	}
	return out, nil
}

// ListShared returns up to limit shared recipes, newest first, starting
// after cursor when it is non-nil.
func (r *Repo) ListShared(ctx context.Context, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error) {
	query := selectRecipes().
		Where(squirrel.Eq{"r.shared": true})
	return r.listPage(ctx, query, cursor, limit)
}

// ListByUser returns every recipe authored by userID, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []recipeRow
	query := selectRecipes().
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.created_at DESC", "r.id DESC")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "recipe", userID)
	}
	return toDomainRecipes(rows), nil
}

// ListFavoritedByUser returns the recipes userID marked as favorite, one
// entry per recipe even when the favorite was stored more than once.
func (r *Repo) ListFavoritedByUser(ctx context.Context, userID uuid.UUID, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error) {
	query := selectRecipes().
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM favorite_recipes f WHERE f.recipe_id = r.id AND f.user_id = ?)", userID))
	return r.listPage(ctx, query, cursor, limit)
}

func (r *Repo) listPage(ctx context.Context, query squirrel.SelectBuilder, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if cursor != nil {
		query = query.Where(squirrel.Expr("(r.created_at, r.id) < (?, ?)", cursor.CreatedAt, cursor.ID))
	}
	query = query.OrderBy("r.created_at DESC", "r.id DESC").Limit(uint64(limit))

	var rows []recipeRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "recipe", "page")
	}
	return toDomainRecipes(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the recipe row followed by its ingredients and
// instructions. Callers run it inside a transaction so a failure leaves no
// partial recipe behind.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recipeRow
	insert := postgres.Builder().
		Insert("recipes").
		Columns("id", "user_id", "category_id", "name", "slug", "description", "image",
			"servings", "calories", "protein", "fat", "carbohydrates",
			"difficulty", "prep_time", "cook_time", "shared", "created_at", "updated_at").
		Values(rec.ID, rec.UserID, rec.CategoryID, rec.Name, rec.Slug, rec.Description, rec.Image,
			rec.Servings, rec.Totals.Calories, rec.Totals.Protein, rec.Totals.Fat, rec.Totals.Carbohydrates,
			difficultyToPtr(rec.Difficulty), rec.PrepTime, rec.CookTime, rec.Shared, rec.CreatedAt, rec.UpdatedAt).
		Suffix(returningRecipe)
	if err := postgres.Get(ctx, q, &row, insert); err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	if len(rec.Ingredients) > 0 {
		ins := postgres.Builder().
			Insert("ingredients").
			Columns("id", "recipe_id", "position", "name", "quantity", "calories", "protein", "fat", "carbohydrates")
		for _, ing := range rec.Ingredients {
			ins = ins.Values(ing.ID, rec.ID, ing.Position, ing.Name, ing.Quantity, ing.Calories, ing.Protein, ing.Fat, ing.Carbohydrates)
		}
		if _, err := postgres.Exec(ctx, q, ins); err != nil {
			return nil, postgres.MapError(err, "ingredient", rec.ID)
		}
	}

	if len(rec.Instructions) > 0 {
		ins := postgres.Builder().
			Insert("instructions").
			Columns("id", "recipe_id", "position", "text")
		for _, step := range rec.Instructions {
			ins = ins.Values(step.ID, rec.ID, step.Position, step.Text)
		}
		if _, err := postgres.Exec(ctx, q, ins); err != nil {
			return nil, postgres.MapError(err, "instruction", rec.ID)
		}
	}

	created := toDomainRecipe(row)
	created.Ingredients = rec.Ingredients
	created.Instructions = rec.Instructions
	return &created, nil
}

// Update applies a sparse patch to the recipe's scalar fields and returns
// the updated recipe. Ingredients, instructions, totals and the slug are
// never touched.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.RecipeUpdateParams) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().
		Update("recipes").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningRecipe)
	if p.Name != nil {
		update = update.Set("name", *p.Name)
	}
	if p.Description != nil {
		update = update.Set("description", *p.Description)
	}
	if p.Servings != nil {
		update = update.Set("servings", *p.Servings)
	}
	if p.CategoryID != nil {
		update = update.Set("category_id", *p.CategoryID)
	}
	if p.Difficulty != nil {
		update = update.Set("difficulty", string(*p.Difficulty))
	}
	if p.PrepTime != nil {
		update = update.Set("prep_time", *p.PrepTime)
	}
	if p.CookTime != nil {
		update = update.Set("cook_time", *p.CookTime)
	}
	if p.Shared != nil {
		update = update.Set("shared", *p.Shared)
	}

	var row recipeRow
	if err := postgres.Get(ctx, q, &row, update); err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}

	rec := toDomainRecipe(row)
	return &rec, nil
}

// Delete removes a recipe. Ingredients, instructions, reviews, favorites
// and journal items referencing it are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("recipes").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if n == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// FindOrCreateCategory returns the category with the given name, creating
// it when absent. Concurrent callers converge on the same row.
func (r *Repo) FindOrCreateCategory(ctx context.Context, name string) (domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row struct {
		ID   uuid.UUID `db:"id"`
		Name string    `db:"name"`
	}
	insert := postgres.Builder().
		Insert("categories").
		Columns("id", "name").
		Values(uuid.New(), name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name")
	if err := postgres.Get(ctx, q, &row, insert); err != nil {
		return domain.Category{}, postgres.MapError(err, "category", name)
	}
	return domain.Category{ID: row.ID, Name: row.Name}, nil
}

// ListCategories returns all categories ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []struct {
		ID   uuid.UUID `db:"id"`
		Name string    `db:"name"`
	}
	query := postgres.Builder().Select("id", "name").From("categories").OrderBy("name")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "category", "all")
	}

	out := make([]domain.Category, len(rows))
	for i, row := range rows {
		out[i] = domain.Category{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func toDomainRecipe(row recipeRow) domain.Recipe {
	rec := domain.Recipe{
		ID:          row.ID,
		UserID:      row.UserID,
		CategoryID:  row.CategoryID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Image:       row.Image,
		Servings:    row.Servings,
		Totals: domain.Macros{
			Calories:      row.Calories,
			Protein:       row.Protein,
			Fat:           row.Fat,
			Carbohydrates: row.Carbohydrates,
		},
		PrepTime:  row.PrepTime,
		CookTime:  row.CookTime,
		Shared:    row.Shared,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Category:  row.Category,
	}
	if row.Difficulty != nil {
		d := domain.Difficulty(*row.Difficulty)
		rec.Difficulty = &d
	}
	return rec
}

func toDomainRecipes(rows []recipeRow) []domain.Recipe {
	out := make([]domain.Recipe, len(rows))
	for i, row := range rows {
		out[i] = toDomainRecipe(row)
	}
	return out
}

func toDomainIngredient(row ingredientRow) domain.Ingredient {
	return domain.Ingredient{
		ID:            row.ID,
		RecipeID:      row.RecipeID,
		Position:      row.Position,
		Name:          row.Name,
		Quantity:      row.Quantity,
		Calories:      row.Calories,
		Protein:       row.Protein,
		Fat:           row.Fat,
		Carbohydrates: row.Carbohydrates,
	}
}

func difficultyToPtr(d *domain.Difficulty) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}
