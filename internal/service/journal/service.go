package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/nutrition"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

type journalRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, date time.Time) (domain.MealJournal, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MealJournal, error)
	GetByID(ctx context.Context, userID, journalID uuid.UUID) (*domain.MealJournal, error)
	ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.MealJournal, error)
	Delete(ctx context.Context, userID, journalID uuid.UUID) error
	AddItems(ctx context.Context, journalID uuid.UUID, items []domain.MealItem) ([]domain.MealItem, error)
	ItemsByJournalIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MealItem, error)
	UpdateItem(ctx context.Context, journalID, itemID uuid.UUID, patch domain.MealItemPatch) (*domain.MealItem, error)
	DeleteItem(ctx context.Context, journalID, itemID uuid.UUID) (*domain.MealItem, error)
}

type recipeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
}

type summaryLoader interface {
	GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RecipeSummary, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// lastWeekDays is how far back GetLastWeek reaches, today excluded.
const lastWeekDays = 7

// Service provides meal journal operations.
type Service struct {
	journals  journalRepo
	recipes   recipeRepo
	summaries summaryLoader
	audit     auditLogger
	tx        txManager
	loc       *time.Location
	polarity  nutrition.Polarity
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new Journal service. cfg.Location decides calendar
// days for callers whose request carries no time zone.
func NewService(
	log *slog.Logger,
	journals journalRepo,
	recipes recipeRepo,
	summaries summaryLoader,
	audit auditLogger,
	tx txManager,
	cfg config.JournalConfig,
	polarity nutrition.Polarity,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	if polarity == nil {
		polarity = nutrition.DefaultPolarity()
	}
	return &Service{
		journals:  journals,
		recipes:   recipes,
		summaries: summaries,
		audit:     audit,
		tx:        tx,
		loc:       loc,
		polarity:  polarity,
		now:       time.Now,
		log:       log.With("service", "journal"),
	}
}

// day maps t onto the stored calendar date in the caller's time zone.
func (s *Service) day(ctx context.Context, t time.Time) time.Time {
	return domain.CalendarDate(t, ctxutil.LocationFromCtx(ctx, s.loc))
}
