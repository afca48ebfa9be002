package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/nutrition"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// AddToJournal logs items on the caller's journal for the calendar day of
// input.Date, creating the journal on first use. Items are appended in call
// order and the whole write is atomic. The returned journal carries every
// item of the day, not only the new ones.
func (s *Service) AddToJournal(ctx context.Context, input AddToJournalInput) (*domain.MealJournal, error) {
	const op = "add to journal"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	date := s.day(ctx, input.Date)

	var journal domain.MealJournal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		journal, upsertErr = s.journals.Upsert(txCtx, userID, date)
		if upsertErr != nil {
			return fmt.Errorf("upsert journal: %w", upsertErr)
		}

		if _, addErr := s.journals.AddItems(txCtx, journal.ID, items); addErr != nil {
			if errors.Is(addErr, domain.ErrNotFound) {
				return domain.NewNotFoundError(domain.EntityRecipe)
			}
			return fmt.Errorf("add items: %w", addErr)
		}

		all, listErr := s.journals.ItemsByJournalIDs(txCtx, []uuid.UUID{journal.ID})
		if listErr != nil {
			return fmt.Errorf("list items: %w", listErr)
		}
		journal.Items = all

		itemIDs := make([]string, len(items))
		for i, it := range items {
			itemIDs[i] = it.ID.String()
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeJournal,
			EntityID:   &journal.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"date":        date.Format(time.DateOnly),
				"added_items": itemIDs,
			},
			CreatedAt: time.Now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	if err := s.hydrate(ctx, &journal); err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "meal items added",
		slog.String("user_id", userID.String()),
		slog.String("journal_id", journal.ID.String()),
		slog.String("date", date.Format(time.DateOnly)),
		slog.Int("count", len(items)),
	)

	return &journal, nil
}

// buildItems turns inputs into items with IDs. An input without any macro
// gets the recipe's totals scaled to its servings; one with a snapshot is
// stored as given.
func (s *Service) buildItems(ctx context.Context, inputs []ItemInput) ([]domain.MealItem, error) {
	recipes := make(map[uuid.UUID]*domain.Recipe)
	items := make([]domain.MealItem, len(inputs))

	for i, in := range inputs {
		item := domain.MealItem{
			ID:       uuid.New(),
			RecipeID: in.RecipeID,
			Servings: in.Servings,
			Calories: in.Calories,
			Protein:  in.Protein,
			Carbs:    in.Carbs,
			Fat:      in.Fat,
		}

		if !in.hasSnapshot() {
			rec, ok := recipes[in.RecipeID]
			if !ok {
				var err error
				rec, err = s.recipes.GetByID(ctx, in.RecipeID)
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						return nil, domain.NewNotFoundError(domain.EntityRecipe)
					}
					return nil, fmt.Errorf("get recipe: %w", err)
				}
				recipes[in.RecipeID] = rec
			}

			scaled, err := nutrition.Scale(rec.Totals, rec.Servings, in.Servings)
			if err != nil {
				return nil, err
			}
			item.Calories = &scaled.Calories
			item.Protein = &scaled.Protein
			item.Carbs = &scaled.Carbohydrates
			item.Fat = &scaled.Fat
		}

		items[i] = item
	}

	return items, nil
}
