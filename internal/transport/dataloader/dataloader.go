// Package dataloader provides per-request DataLoaders that batch and cache
// recipe lookups made while hydrating journal items. Loaders call the
// repository directly, bypassing the service layer.
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type recipeSummaryRepo interface {
	GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RecipeSummary, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Recipe recipeSummaryRepo
}

// Loaders contains the per-request DataLoader instances.
type Loaders struct {
	RecipeSummaryByID *dataloader.Loader[uuid.UUID, *domain.RecipeSummary]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		RecipeSummaryByID: newLoader(newRecipeSummaryBatchFn(repos.Recipe)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}

// Summaries resolves recipe summaries through the request's loaders when
// the middleware installed them, and straight from the repository
// otherwise (background jobs, tests).
type Summaries struct {
	repo recipeSummaryRepo
}

// NewSummaries creates a Summaries source over repo.
func NewSummaries(repo recipeSummaryRepo) *Summaries {
	return &Summaries{repo: repo}
}

// GetSummariesByIDs returns the summaries of the recipes that exist among
// ids. Missing recipes are skipped.
func (s *Summaries) GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RecipeSummary, error) {
	l, ok := FromContext(ctx)
	if !ok {
		return s.repo.GetSummariesByIDs(ctx, ids)
	}

	data, errs := l.RecipeSummaryByID.LoadMany(ctx, ids)()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load recipe summary %s: %w", ids[i], err)
		}
	}

	out := make([]domain.RecipeSummary, 0, len(data))
	for _, d := range data {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out, nil
}
