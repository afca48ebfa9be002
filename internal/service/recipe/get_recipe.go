package recipe

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// RecipeDetails is a recipe with everything shown on its page.
type RecipeDetails struct {
	Recipe       *domain.Recipe
	Reviews      []domain.Review
	AverageStars *float64
	AuthorName   string
}

// GetBySlug returns the recipe with its ingredients, instructions, reviews,
// average rating and author name.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*RecipeDetails, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	rec, err := s.recipes.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityRecipe)
		}
		return nil, domain.NewInternalError("get recipe by slug", err)
	}

	details := &RecipeDetails{Recipe: rec}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ingredients, err := s.recipes.GetIngredients(gctx, rec.ID)
		if err != nil {
			return fmt.Errorf("get ingredients: %w", err)
		}
		rec.Ingredients = ingredients
		return nil
	})
	g.Go(func() error {
		instructions, err := s.recipes.GetInstructions(gctx, rec.ID)
		if err != nil {
			return fmt.Errorf("get instructions: %w", err)
		}
		rec.Instructions = instructions
		return nil
	})
	g.Go(func() error {
		reviews, err := s.reviews.ListByRecipe(gctx, rec.ID)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}
		details.Reviews = reviews
		if avg, ok := domain.AverageStars(reviews); ok {
			details.AverageStars = &avg
		}
		return nil
	})
	g.Go(func() error {
		author, err := s.users.GetByID(gctx, rec.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}
		details.AuthorName = author.DisplayName()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("get recipe by slug", err)
	}

	return details, nil
}
