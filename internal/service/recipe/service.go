package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

type recipeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Recipe, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetIngredients(ctx context.Context, recipeID uuid.UUID) ([]domain.Ingredient, error)
	GetInstructions(ctx context.Context, recipeID uuid.UUID) ([]domain.Instruction, error)
	ListShared(ctx context.Context, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Recipe, error)
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, p domain.RecipeUpdateParams) (*domain.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindOrCreateCategory(ctx context.Context, name string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type reviewRepo interface {
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Review, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type imageStore interface {
	ImageKey(recipeID uuid.UUID) string
	PresignImageUpload(ctx context.Context, recipeID uuid.UUID) (domain.UploadURL, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// maxSlugAttempts bounds how often Create re-resolves the slug after
// losing an insert race on it.
const maxSlugAttempts = 3

// Service provides recipe operations.
type Service struct {
	recipes recipeRepo
	reviews reviewRepo
	users   userRepo
	images  imageStore
	audit   auditLogger
	tx      txManager
	cfg     config.RecipeConfig
	log     *slog.Logger
}

// NewService creates a new Recipe service.
func NewService(
	log *slog.Logger,
	recipes recipeRepo,
	reviews reviewRepo,
	users userRepo,
	images imageStore,
	audit auditLogger,
	tx txManager,
	cfg config.RecipeConfig,
) *Service {
	return &Service{
		recipes: recipes,
		reviews: reviews,
		users:   users,
		images:  images,
		audit:   audit,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "recipe"),
	}
}
