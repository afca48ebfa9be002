// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var reviewColumns = []string{"id", "recipe_id", "user_id", "stars", "comments", "created_at"}

type reviewRow struct {
	ID        uuid.UUID `db:"id"`
	RecipeID  uuid.UUID `db:"recipe_id"`
	UserID    uuid.UUID `db:"user_id"`
	Stars     int       `db:"stars"`
	Comments  string    `db:"comments"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new review repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a review and returns it as stored.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row reviewRow
	insert := postgres.Builder().
		Insert("reviews").
		Columns(reviewColumns...).
		Values(rv.ID, rv.RecipeID, rv.UserID, rv.Stars, rv.Comments, rv.CreatedAt).
		Suffix("RETURNING id, recipe_id, user_id, stars, comments, created_at")
	if err := postgres.Get(ctx, q, &row, insert); err != nil {
		return domain.Review{}, postgres.MapError(err, "review", rv.ID)
	}
	return toDomainReview(row), nil
}

// ListByRecipe returns a recipe's reviews, oldest first.
func (r *Repo) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []reviewRow
	query := postgres.Builder().
		Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"recipe_id": recipeID}).
		OrderBy("created_at", "id")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "review", recipeID)
	}

	out := make([]domain.Review, len(rows))
	for i, row := range rows {
		out[i] = toDomainReview(row)
	}
	return out, nil
}

func toDomainReview(row reviewRow) domain.Review {
	return domain.Review{
		ID:        row.ID,
		RecipeID:  row.RecipeID,
		UserID:    row.UserID,
		Stars:     row.Stars,
		Comments:  row.Comments,
		CreatedAt: row.CreatedAt,
	}
}
