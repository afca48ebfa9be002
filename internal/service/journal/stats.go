package journal

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/nutrition"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// DayStats compares the macros eaten on Date with the day before.
type DayStats struct {
	Date          time.Time
	ReferenceDate time.Time
	nutrition.DailyStats
}

// DailyStats sums the caller's journal for the calendar day of date and
// for the previous day and compares the two. Days without a journal sum to
// zero.
func (s *Service) DailyStats(ctx context.Context, date time.Time) (*DayStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date", "required")
	}

	day := s.day(ctx, date)
	prev := day.AddDate(0, 0, -1)

	var current, reference *domain.MealJournal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.loadDay(gctx, userID, day)
		return err
	})
	g.Go(func() error {
		var err error
		reference, err = s.loadDay(gctx, userID, prev)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("daily stats", err)
	}

	return &DayStats{
		Date:          day,
		ReferenceDate: prev,
		DailyStats:    nutrition.Compare(nutrition.Sum(current), nutrition.Sum(reference), s.polarity),
	}, nil
}
