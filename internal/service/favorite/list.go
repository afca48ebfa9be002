package favorite

import (
	"context"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// ListFavorites returns the caller's favorite rows, oldest first.
// Duplicates are returned as stored.
func (s *Service) ListFavorites(ctx context.Context) ([]domain.FavoriteRecipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("list favorites", err)
	}
	return favs, nil
}

// IsFavorite reports whether the caller has the recipe among favorites.
func (s *Service) IsFavorite(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	exists, err := s.favorites.Exists(ctx, userID, recipeID)
	if err != nil {
		return false, domain.NewInternalError("is favorite", err)
	}
	return exists, nil
}

// ListFavoriteRecipes returns one page of the recipes the caller marked as
// favorite, newest first, each recipe once.
func (s *Service) ListFavoriteRecipes(ctx context.Context, cursor *domain.PageCursor, limit int) (*domain.RecipePage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}

	size := s.cfg.PageSize(limit)
	recipes, err := s.recipes.ListFavoritedByUser(ctx, userID, cursor, size+1)
	if err != nil {
		return nil, domain.NewInternalError("list favorite recipes", err)
	}

	page := domain.NewRecipePage(recipes, size)
	return &page, nil
}
