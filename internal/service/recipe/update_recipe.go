package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// UpdateRecipe patches the scalar fields of a recipe owned by the
// authenticated user. Ingredients, instructions, totals and the slug are
// left as they are.
func (s *Service) UpdateRecipe(ctx context.Context, input UpdateRecipeInput) (*domain.Recipe, error) {
	const op = "update recipe"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.ownedRecipe(ctx, userID, input.RecipeID)
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	params := domain.RecipeUpdateParams{
		Description: trimPtr(input.Description),
		Servings:    input.Servings,
		Difficulty:  input.Difficulty,
		PrepTime:    input.PrepTime,
		CookTime:    input.CookTime,
		Shared:      input.Shared,
	}
	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		params.Name = &name
	}

	var updated *domain.Recipe
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Category != nil {
			cat, catErr := s.recipes.FindOrCreateCategory(txCtx, strings.TrimSpace(*input.Category))
			if catErr != nil {
				return fmt.Errorf("find or create category: %w", catErr)
			}
			params.CategoryID = &cat.ID
		}

		var updateErr error
		updated, updateErr = s.recipes.Update(txCtx, input.RecipeID, params)
		if updateErr != nil {
			return fmt.Errorf("update recipe: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeRecipe,
			EntityID:   &input.RecipeID,
			Action:     domain.AuditActionUpdate,
			Changes:    recipeChanges(old, updated),
			CreatedAt:  time.Now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "recipe updated",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", input.RecipeID.String()),
	)

	return updated, nil
}

// recipeChanges lists the scalar fields that differ between old and new.
func recipeChanges(old, updated *domain.Recipe) map[string]any {
	changes := map[string]any{}
	diff := func(field string, o, n any) {
		if o != n {
			changes[field] = map[string]any{"old": o, "new": n}
		}
	}
	diff("name", old.Name, updated.Name)
	diff("description", old.Description, updated.Description)
	diff("servings", old.Servings, updated.Servings)
	diff("shared", old.Shared, updated.Shared)
	diff("category", deref(old.Category), deref(updated.Category))
	return changes
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
