package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc       func(ctx context.Context, rv domain.Review) (domain.Review, error)
	ListByRecipeFunc func(ctx context.Context, recipeID uuid.UUID) ([]domain.Review, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rv  domain.Review
		}
		ListByRecipe []struct {
			Ctx      context.Context
			RecipeID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockListByRecipe sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rv  domain.Review
	}{Ctx: ctx, Rv: rv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rv)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rv  domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Review, error) {
	if mock.ListByRecipeFunc == nil {
		panic("reviewRepoMock.ListByRecipeFunc: method is nil but reviewRepo.ListByRecipe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID uuid.UUID
	}{Ctx: ctx, RecipeID: recipeID}
	mock.lockListByRecipe.Lock()
	mock.calls.ListByRecipe = append(mock.calls.ListByRecipe, callInfo)
	mock.lockListByRecipe.Unlock()
	return mock.ListByRecipeFunc(ctx, recipeID)
}

func (mock *reviewRepoMock) ListByRecipeCalls() []struct {
	Ctx      context.Context
	RecipeID uuid.UUID
} {
	mock.lockListByRecipe.RLock()
	calls := mock.calls.ListByRecipe
	mock.lockListByRecipe.RUnlock()
	return calls
}

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *recipeRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("recipeRepoMock.ExistsFunc: method is nil but recipeRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *recipeRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *userRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("userRepoMock.ExistsFunc: method is nil but userRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *userRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
