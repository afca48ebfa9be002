package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/nutrition"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// CreateResult is a new recipe and the presigned request the client uses
// to upload its image.
type CreateResult struct {
	Recipe *domain.Recipe
	Upload domain.UploadURL
}

// CreateRecipe stores a recipe for the authenticated user. Totals are
// summed from the ingredients once, here, and never recomputed.
func (s *Service) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*CreateResult, error) {
	const op = "create recipe"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := s.buildRecipe(userID, input)
	base := domain.Slugify(rec.Name)

	// The URL is signed offline for the pre-assigned ID, so a failure here
	// leaves nothing stored.
	upload, err := s.images.PresignImageUpload(ctx, rec.ID)
	if err != nil {
		return nil, domain.NewInternalError(op, fmt.Errorf("presign image upload: %w", err))
	}

	var created *domain.Recipe
	for attempt := 1; ; attempt++ {
		slug, err := s.resolveSlug(ctx, base)
		if err != nil {
			return nil, domain.NewInternalError(op, fmt.Errorf("resolve slug: %w", err))
		}
		rec.Slug = slug

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if input.Category != nil {
				cat, catErr := s.recipes.FindOrCreateCategory(txCtx, strings.TrimSpace(*input.Category))
				if catErr != nil {
					return fmt.Errorf("find or create category: %w", catErr)
				}
				rec.CategoryID = &cat.ID
			}

			var createErr error
			created, createErr = s.recipes.Create(txCtx, rec)
			if createErr != nil {
				return fmt.Errorf("create recipe: %w", createErr)
			}

			auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ID:         uuid.New(),
				UserID:     userID,
				EntityType: domain.EntityTypeRecipe,
				EntityID:   &created.ID,
				Action:     domain.AuditActionCreate,
				Changes: map[string]any{
					"name": map[string]any{"new": created.Name},
					"slug": map[string]any{"new": created.Slug},
				},
				CreatedAt: rec.CreatedAt,
			})
			if auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
			return nil
		})
		if err == nil {
			break
		}
		// Another writer took the slug between the check and the insert.
		if errors.Is(err, domain.ErrAlreadyExists) && attempt < maxSlugAttempts {
			s.log.WarnContext(ctx, "recipe slug taken concurrently, retrying",
				slog.String("slug", slug),
				slog.Int("attempt", attempt),
			)
			continue
		}
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "recipe created",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return &CreateResult{Recipe: created, Upload: upload}, nil
}

// resolveSlug returns base, or base-1, base-2, ... for the first candidate
// no recipe uses yet.
func (s *Service) resolveSlug(ctx context.Context, base string) (string, error) {
	for n := 0; ; n++ {
		candidate := domain.SlugCandidate(base, n)
		taken, err := s.recipes.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func (s *Service) buildRecipe(userID uuid.UUID, input CreateRecipeInput) *domain.Recipe {
	now := time.Now().UTC()
	id := uuid.New()
	image := s.images.ImageKey(id)

	ingredients := make([]domain.Ingredient, len(input.Ingredients))
	for i, in := range input.Ingredients {
		ingredients[i] = domain.Ingredient{
			ID:            uuid.New(),
			RecipeID:      id,
			Position:      i,
			Name:          strings.TrimSpace(in.Name),
			Quantity:      strings.TrimSpace(in.Quantity),
			Calories:      in.Calories,
			Protein:       in.Protein,
			Fat:           in.Fat,
			Carbohydrates: in.Carbohydrates,
		}
	}

	instructions := make([]domain.Instruction, len(input.Instructions))
	for i, text := range input.Instructions {
		instructions[i] = domain.Instruction{
			ID:       uuid.New(),
			RecipeID: id,
			Position: i,
			Text:     strings.TrimSpace(text),
		}
	}

	return &domain.Recipe{
		ID:           id,
		UserID:       userID,
		Name:         domain.NormalizeName(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Image:        &image,
		Servings:     input.Servings,
		Totals:       nutrition.Totals(ingredients),
		Difficulty:   input.Difficulty,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Shared:       input.Shared,
		CreatedAt:    now,
		UpdatedAt:    now,
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}
