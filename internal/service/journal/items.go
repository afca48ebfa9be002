package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// UpdateJournalItem applies a sparse patch to one item of the caller's
// journal and returns the item as stored.
func (s *Service) UpdateJournalItem(ctx context.Context, input UpdateItemInput) (*domain.MealItem, error) {
	const op = "update journal item"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkOwnership(ctx, userID, input.JournalID); err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	patch := domain.MealItemPatch{
		Servings: input.Servings,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	}

	var item *domain.MealItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		item, updateErr = s.journals.UpdateItem(txCtx, input.JournalID, input.ItemID, patch)
		if updateErr != nil {
			if errors.Is(updateErr, domain.ErrNotFound) {
				return domain.NewNotFoundError(domain.EntityMealItem)
			}
			return fmt.Errorf("update item: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeMealItem,
			EntityID:   &input.ItemID,
			Action:     domain.AuditActionUpdate,
			Changes:    patchChanges(patch),
			CreatedAt:  time.Now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	if err := s.hydrateItem(ctx, item); err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "meal item updated",
		slog.String("user_id", userID.String()),
		slog.String("journal_id", input.JournalID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return item, nil
}

// DeleteJournalItem removes one item of the caller's journal and returns it.
func (s *Service) DeleteJournalItem(ctx context.Context, journalID, itemID uuid.UUID) (*domain.MealItem, error) {
	const op = "delete journal item"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkOwnership(ctx, userID, journalID); err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	var item *domain.MealItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var deleteErr error
		item, deleteErr = s.journals.DeleteItem(txCtx, journalID, itemID)
		if deleteErr != nil {
			if errors.Is(deleteErr, domain.ErrNotFound) {
				return domain.NewNotFoundError(domain.EntityMealItem)
			}
			return fmt.Errorf("delete item: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeMealItem,
			EntityID:   &itemID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"recipe_id": item.RecipeID.String(),
				"servings":  item.Servings,
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

	if err := s.hydrateItem(ctx, item); err != nil {
		return nil, domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "meal item deleted",
		slog.String("user_id", userID.String()),
		slog.String("journal_id", journalID.String()),
		slog.String("item_id", itemID.String()),
	)

	return item, nil
}

// DeleteJournal removes the caller's journal together with its items.
func (s *Service) DeleteJournal(ctx context.Context, journalID uuid.UUID) error {
	const op = "delete journal"

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.journals.Delete(txCtx, userID, journalID); deleteErr != nil {
			if errors.Is(deleteErr, domain.ErrNotFound) {
				return domain.NewNotFoundError(domain.EntityJournal)
			}
			return fmt.Errorf("delete journal: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeJournal,
			EntityID:   &journalID,
			Action:     domain.AuditActionDelete,
			CreatedAt:  time.Now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.NewInternalError(op, err)
	}

	s.log.InfoContext(ctx, "journal deleted",
		slog.String("user_id", userID.String()),
		slog.String("journal_id", journalID.String()),
	)

	return nil
}

// checkOwnership returns a journal NotFoundError unless journalID exists
// and belongs to userID.
func (s *Service) checkOwnership(ctx context.Context, userID, journalID uuid.UUID) error {
	if _, err := s.journals.GetByID(ctx, userID, journalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError(domain.EntityJournal)
		}
		return fmt.Errorf("get journal: %w", err)
	}
	return nil
}

func (s *Service) hydrateItem(ctx context.Context, item *domain.MealItem) error {
	j := &domain.MealJournal{Items: []domain.MealItem{*item}}
	if err := s.hydrate(ctx, j); err != nil {
		return err
	}
	item.Recipe = j.Items[0].Recipe
	return nil
}

func patchChanges(p domain.MealItemPatch) map[string]any {
	changes := map[string]any{"servings": p.Servings}
	for field, v := range map[string]*float64{
		"calories": p.Calories,
		"protein":  p.Protein,
		"carbs":    p.Carbs,
		"fat":      p.Fat,
	} {
		if v != nil {
			changes[field] = *v
		}
	}
	return changes
}
