package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	AddFunc        func(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (domain.FavoriteRecipe, error)
	RemoveAllFunc  func(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (int64, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteRecipe, error)
	ExistsFunc     func(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (bool, error)

	calls struct {
		Add []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecipeID uuid.UUID
		}
		RemoveAll []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecipeID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Exists []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecipeID uuid.UUID
		}
	}
	lockAdd        sync.RWMutex
	lockRemoveAll  sync.RWMutex
	lockListByUser sync.RWMutex
	lockExists     sync.RWMutex
}

func (mock *favoriteRepoMock) Add(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (domain.FavoriteRecipe, error) {
	if mock.AddFunc == nil {
		panic("favoriteRepoMock.AddFunc: method is nil but favoriteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecipeID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecipeID: recipeID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, recipeID)
}

func (mock *favoriteRepoMock) AddCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecipeID uuid.UUID
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) RemoveAll(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (int64, error) {
	if mock.RemoveAllFunc == nil {
		panic("favoriteRepoMock.RemoveAllFunc: method is nil but favoriteRepo.RemoveAll was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecipeID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecipeID: recipeID}
	mock.lockRemoveAll.Lock()
	mock.calls.RemoveAll = append(mock.calls.RemoveAll, callInfo)
	mock.lockRemoveAll.Unlock()
	return mock.RemoveAllFunc(ctx, userID, recipeID)
}

func (mock *favoriteRepoMock) RemoveAllCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecipeID uuid.UUID
} {
	mock.lockRemoveAll.RLock()
	calls := mock.calls.RemoveAll
	mock.lockRemoveAll.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteRecipe, error) {
	if mock.ListByUserFunc == nil {
		panic("favoriteRepoMock.ListByUserFunc: method is nil but favoriteRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *favoriteRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Exists(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("favoriteRepoMock.ExistsFunc: method is nil but favoriteRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecipeID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecipeID: recipeID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, recipeID)
}

func (mock *favoriteRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecipeID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	ExistsFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	ListFavoritedByUserFunc func(ctx context.Context, userID uuid.UUID, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListFavoritedByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Cursor *domain.PageCursor
			Limit  int
		}
	}
	lockExists              sync.RWMutex
	lockListFavoritedByUser sync.RWMutex
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

func (mock *recipeRepoMock) ListFavoritedByUser(ctx context.Context, userID uuid.UUID, cursor *domain.PageCursor, limit int) ([]domain.Recipe, error) {
	if mock.ListFavoritedByUserFunc == nil {
		panic("recipeRepoMock.ListFavoritedByUserFunc: method is nil but recipeRepo.ListFavoritedByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Cursor *domain.PageCursor
		Limit  int
	}{Ctx: ctx, UserID: userID, Cursor: cursor, Limit: limit}
	mock.lockListFavoritedByUser.Lock()
	mock.calls.ListFavoritedByUser = append(mock.calls.ListFavoritedByUser, callInfo)
	mock.lockListFavoritedByUser.Unlock()
	return mock.ListFavoritedByUserFunc(ctx, userID, cursor, limit)
}

func (mock *recipeRepoMock) ListFavoritedByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Cursor *domain.PageCursor
	Limit  int
} {
	mock.lockListFavoritedByUser.RLock()
	calls := mock.calls.ListFavoritedByUser
	mock.lockListFavoritedByUser.RUnlock()
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

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
