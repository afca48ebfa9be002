package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedRecipe creates a shared single-serving recipe owned by userID with
// fixed totals (400 kcal, 30 protein, 10 fat, 45 carbohydrates).
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	recipe := domain.Recipe{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Test Recipe " + suffix,
		Slug:     "test-recipe-" + suffix,
		Servings: 1,
		Totals: domain.Macros{
			Calories:      400,
			Protein:       30,
			Fat:           10,
			Carbohydrates: 45,
		},
		Shared:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, user_id, name, slug, servings, calories, protein, fat, carbohydrates, shared, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		recipe.ID, recipe.UserID, recipe.Name, recipe.Slug, recipe.Servings,
		recipe.Totals.Calories, recipe.Totals.Protein, recipe.Totals.Fat, recipe.Totals.Carbohydrates,
		recipe.Shared, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe: %v", err)
	}

	return recipe
}
