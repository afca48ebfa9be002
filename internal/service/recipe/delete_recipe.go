package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// DeleteRecipe removes a recipe owned by the authenticated user and returns
// it. Ingredients, instructions, reviews, favorites and journal items that
// reference it go with it.
func (s *Service) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	const op = "delete recipe"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.ownedRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.recipes.Delete(txCtx, recipeID); deleteErr != nil {
			return fmt.Errorf("delete recipe: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeRecipe,
			EntityID:   &recipeID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": rec.Name},
			},
			CreatedAt: time.Now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "recipe deleted",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
	)

	return rec, nil
}

// ownedRecipe loads the recipe and checks that userID authored it.
func (s *Service) ownedRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityRecipe)
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if rec.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return rec, nil
}
