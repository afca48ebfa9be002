package recipe

import (
	"context"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// ListShared returns one page of public recipes, newest first.
func (s *Service) ListShared(ctx context.Context, input ListSharedInput) (*domain.RecipePage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := s.cfg.PageSize(input.Limit)
	recipes, err := s.recipes.ListShared(ctx, input.Cursor, limit+1)
	if err != nil {
		return nil, domain.NewInternalError("list shared recipes", err)
	}

	page := domain.NewRecipePage(recipes, limit)
	return &page, nil
}

// ListMine returns every recipe the authenticated user authored.
func (s *Service) ListMine(ctx context.Context) ([]domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	recipes, err := s.recipes.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("list my recipes", err)
	}
	return recipes, nil
}

// ListCategories returns every known category.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.recipes.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("list categories", err)
	}
	return categories, nil
}
