// Package review implements recipe reviews and their average rating.
package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

const (
	minStars          = 1
	maxStars          = 5
	maxCommentsLength = 2000
)

type reviewRepo interface {
	Create(ctx context.Context, rv domain.Review) (domain.Review, error)
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Review, error)
}

type recipeRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides review operations.
type Service struct {
	reviews reviewRepo
	recipes recipeRepo
	users   userRepo
	log     *slog.Logger
}

// NewService creates a new Review service.
func NewService(log *slog.Logger, reviews reviewRepo, recipes recipeRepo, users userRepo) *Service {
	return &Service{
		reviews: reviews,
		recipes: recipes,
		users:   users,
		log:     log.With("service", "review"),
	}
}

// CreateReviewInput holds the parameters for reviewing a recipe.
type CreateReviewInput struct {
	RecipeID uuid.UUID
	Stars    int
	Comments string
}

// Validate checks all fields and collects all errors.
func (i CreateReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.RecipeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipe_id", Message: "required"})
	}
	if i.Stars < minStars || i.Stars > maxStars {
		errs = append(errs, domain.FieldError{Field: "stars", Message: "must be between 1 and 5"})
	}
	if len(i.Comments) > maxCommentsLength {
		errs = append(errs, domain.FieldError{Field: "comments", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Reviews is a recipe's reviews with their mean rating. Average is nil
// when there are no reviews.
type Reviews struct {
	Reviews []domain.Review
	Average *float64
}

// CreateReview stores the caller's review of a recipe. Failures other than
// a missing user, a missing recipe or invalid input come back as a
// domain.InternalError that keeps the cause.
func (s *Service) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	const op = "create review"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userExists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}
	if !userExists {
		return nil, domain.NewNotFoundError(domain.EntityUser)
	}

	recipeExists, err := s.recipes.Exists(ctx, input.RecipeID)
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}
	if !recipeExists {
		return nil, domain.NewNotFoundError(domain.EntityRecipe)
	}

	rv, err := s.reviews.Create(ctx, domain.Review{
		ID:        uuid.New(),
		RecipeID:  input.RecipeID,
		UserID:    userID,
		Stars:     input.Stars,
		Comments:  strings.TrimSpace(input.Comments),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// The recipe can vanish between the check and the insert.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityRecipe)
		}
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "review created",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", input.RecipeID.String()),
		slog.Int("stars", rv.Stars),
	)

	return &rv, nil
}

// ListReviews returns the recipe's reviews, oldest first, and their mean.
func (s *Service) ListReviews(ctx context.Context, recipeID uuid.UUID) (*Reviews, error) {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return nil, domain.NewInternalError("list reviews", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError(domain.EntityRecipe)
	}

	reviews, err := s.reviews.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, domain.NewInternalError("list reviews", err)
	}

	out := &Reviews{Reviews: reviews}
	if avg, ok := domain.AverageStars(reviews); ok {
		out.Average = &avg
	}
	return out, nil
}
