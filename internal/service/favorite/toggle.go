package favorite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// AddToFavorites marks the recipe as a favorite of the caller. The row is
// inserted unconditionally, so adding twice stores two rows.
func (s *Service) AddToFavorites(ctx context.Context, recipeID uuid.UUID) (*domain.FavoriteRecipe, error) {
	const op = "add to favorites"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkRefs(ctx, userID, recipeID); err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	var fav domain.FavoriteRecipe
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var addErr error
		fav, addErr = s.favorites.Add(txCtx, userID, recipeID)
		if addErr != nil {
			return fmt.Errorf("add favorite: %w", addErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeFavorite,
			EntityID:   &recipeID,
			Action:     domain.AuditActionCreate,
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

	s.log.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
	)

	return &fav, nil
}

// RemoveFromFavorites deletes every favorite row the caller holds for the
// recipe and returns how many were removed. Removing an absent favorite
// succeeds with 0.
func (s *Service) RemoveFromFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	const op = "remove from favorites"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := s.checkRefs(ctx, userID, recipeID); err != nil {
		return 0, domain.NewInternalError(op, err)
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var removeErr error
		removed, removeErr = s.favorites.RemoveAll(txCtx, userID, recipeID)
		if removeErr != nil {
			return fmt.Errorf("remove favorite: %w", removeErr)
		}
		if removed == 0 {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeFavorite,
			EntityID:   &recipeID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"removed": removed},
			CreatedAt:  time.Now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return 0, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "favorite removed",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
		slog.Int64("removed", removed),
	)

	return removed, nil
}

// checkRefs returns a NotFoundError naming the first of user and recipe
// that does not exist.
func (s *Service) checkRefs(ctx context.Context, userID, recipeID uuid.UUID) error {
	userExists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !userExists {
		return domain.NewNotFoundError(domain.EntityUser)
	}

	recipeExists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("check recipe: %w", err)
	}
	if !recipeExists {
		return domain.NewNotFoundError(domain.EntityRecipe)
	}
	return nil
}
