package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

func newRecipeSummaryBatchFn(repo recipeSummaryRepo) dataloader.BatchFunc[uuid.UUID, *domain.RecipeSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.RecipeSummary] {
		rows, err := repo.GetSummariesByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.RecipeSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.RecipeSummary, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}

		return mapResults(keys, byID, nilValue[*domain.RecipeSummary])
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[V any]() V {
	var zero V
	return zero
}
