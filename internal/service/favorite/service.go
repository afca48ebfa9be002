// Package favorite implements the favorite-recipe toggle and the queries
// built on it.
package favorite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

type favoriteRepo interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (domain.FavoriteRecipe, error)
	RemoveAll(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteRecipe, error)
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
}

type recipeRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListFavoritedByUser(ctx context.Context, userID uuid.UUID, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides favorite operations.
type Service struct {
	favorites favoriteRepo
	recipes   recipeRepo
	users     userRepo
	audit     auditLogger
	tx        txManager
	cfg       config.RecipeConfig
	log       *slog.Logger
}

// NewService creates a new Favorite service.
func NewService(
	log *slog.Logger,
	favorites favoriteRepo,
	recipes recipeRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
	cfg config.RecipeConfig,
) *Service {
	return &Service{
		favorites: favorites,
		recipes:   recipes,
		users:     users,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "favorite"),
	}
}
