package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// GetJournal returns the caller's journal for the calendar day of date with
// its items, or nil when nothing was logged that day.
func (s *Service) GetJournal(ctx context.Context, date time.Time) (*domain.MealJournal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date", "required")
	}

	j, err := s.loadDay(ctx, userID, s.day(ctx, date))
	if err != nil || j == nil {
		return nil, domain.NewInternalError("get journal", err)
	}

	if err := s.hydrate(ctx, j); err != nil {
		return nil, domain.NewInternalError("get journal", err)
	}
	return j, nil
}

// GetJournalsInRange returns the caller's journals from input.Start through
// input.End, both days included, ordered by date.
func (s *Service) GetJournalsInRange(ctx context.Context, input RangeInput) ([]domain.MealJournal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	journals, err := s.listRange(ctx, userID, s.day(ctx, input.Start), s.day(ctx, input.End))
	if err != nil {
		return nil, domain.NewInternalError("get journals in range", err)
	}
	return journals, nil
}

// GetLastWeek returns the caller's journals from seven days ago through
// today.
func (s *Service) GetLastWeek(ctx context.Context) ([]domain.MealJournal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := s.day(ctx, s.now())
	journals, err := s.listRange(ctx, userID, today.AddDate(0, 0, -lastWeekDays), today)
	if err != nil {
		return nil, domain.NewInternalError("get last week", err)
	}
	return journals, nil
}

func (s *Service) listRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.MealJournal, error) {
	journals, err := s.journals.ListInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	if len(journals) == 0 {
		return []domain.MealJournal{}, nil
	}

	ids := make([]uuid.UUID, len(journals))
	for i, j := range journals {
		ids[i] = j.ID
	}
	items, err := s.journals.ItemsByJournalIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	byJournal := make(map[uuid.UUID][]domain.MealItem, len(journals))
	for _, it := range items {
		byJournal[it.MealJournalID] = append(byJournal[it.MealJournalID], it)
	}

	refs := make([]*domain.MealJournal, len(journals))
	for i := range journals {
		journals[i].Items = byJournal[journals[i].ID]
		refs[i] = &journals[i]
	}
	if err := s.hydrate(ctx, refs...); err != nil {
		return nil, err
	}
	return journals, nil
}

// loadDay returns the journal stored for date with its items, or nil.
func (s *Service) loadDay(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MealJournal, error) {
	j, err := s.journals.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal: %w", err)
	}

	items, err := s.journals.ItemsByJournalIDs(ctx, []uuid.UUID{j.ID})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	j.Items = items
	return j, nil
}

// hydrate attaches the current display data of each referenced recipe to
// the items. Macro snapshots are left as stored.
func (s *Service) hydrate(ctx context.Context, journals ...*domain.MealJournal) error {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, j := range journals {
		for _, it := range j.Items {
			if !seen[it.RecipeID] {
				seen[it.RecipeID] = true
				ids = append(ids, it.RecipeID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	summaries, err := s.summaries.GetSummariesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load recipe summaries: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.RecipeSummary, len(summaries))
	for i := range summaries {
		byID[summaries[i].ID] = &summaries[i]
	}

	for _, j := range journals {
		for i := range j.Items {
			j.Items[i].Recipe = byID[j.Items[i].RecipeID]
		}
	}
	return nil
}
