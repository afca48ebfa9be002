// Package favorite implements the FavoriteRecipe repository using PostgreSQL.
package favorite

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

type favoriteRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	RecipeID  uuid.UUID `db:"recipe_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new favorite repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Add inserts a favorite row. It does not check for an existing favorite
// of the same recipe, so repeated calls store repeated rows.
func (r *Repo) Add(ctx context.Context, userID, recipeID uuid.UUID) (domain.FavoriteRecipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row favoriteRow
	insert := postgres.Builder().
		Insert("favorite_recipes").
		Columns("id", "user_id", "recipe_id", "created_at").
		Values(uuid.New(), userID, recipeID, squirrel.Expr("now()")).
		Suffix("RETURNING id, user_id, recipe_id, created_at")
	if err := postgres.Get(ctx, q, &row, insert); err != nil {
		return domain.FavoriteRecipe{}, postgres.MapError(err, "favorite_recipe", recipeID)
	}
	return toDomainFavorite(row), nil
}

// RemoveAll deletes every favorite row for (userID, recipeID) and returns
// how many were removed.
func (r *Repo) RemoveAll(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("favorite_recipes").
		Where(squirrel.Eq{"user_id": userID, "recipe_id": recipeID}))
	if err != nil {
		return 0, postgres.MapError(err, "favorite_recipe", recipeID)
	}
	return n, nil
}

// ListByUser returns the user's favorite rows, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteRecipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []favoriteRow
	query := postgres.Builder().
		Select("id", "user_id", "recipe_id", "created_at").
		From("favorite_recipes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "favorite_recipe", userID)
	}

	out := make([]domain.FavoriteRecipe, len(rows))
	for i, row := range rows {
		out[i] = toDomainFavorite(row)
	}
	return out, nil
}

// Exists reports whether the user has at least one favorite row for recipeID.
func (r *Repo) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorite_recipes WHERE user_id = $1 AND recipe_id = $2)`,
		userID, recipeID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "favorite_recipe", recipeID)
	}
	return exists, nil
}

func toDomainFavorite(row favoriteRow) domain.FavoriteRecipe {
	return domain.FavoriteRecipe{
		ID:        row.ID,
		UserID:    row.UserID,
		RecipeID:  row.RecipeID,
		CreatedAt: row.CreatedAt,
	}
}
