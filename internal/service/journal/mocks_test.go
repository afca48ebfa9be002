package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var _ journalRepo = &journalRepoMock{}

type journalRepoMock struct {
	UpsertFunc            func(ctx context.Context, userID uuid.UUID, date time.Time) (domain.MealJournal, error)
	GetByDateFunc         func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MealJournal, error)
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID, journalID uuid.UUID) (*domain.MealJournal, error)
	ListInRangeFunc       func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) ([]domain.MealJournal, error)
	DeleteFunc            func(ctx context.Context, userID uuid.UUID, journalID uuid.UUID) error
	AddItemsFunc          func(ctx context.Context, journalID uuid.UUID, items []domain.MealItem) ([]domain.MealItem, error)
	ItemsByJournalIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.MealItem, error)
	UpdateItemFunc        func(ctx context.Context, journalID uuid.UUID, itemID uuid.UUID, patch domain.MealItemPatch) (*domain.MealItem, error)
	DeleteItemFunc        func(ctx context.Context, journalID uuid.UUID, itemID uuid.UUID) (*domain.MealItem, error)

	calls struct {
		Upsert []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		GetByDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			JournalID uuid.UUID
		}
		ListInRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			JournalID uuid.UUID
		}
		AddItems []struct {
			Ctx       context.Context
			JournalID uuid.UUID
			Items     []domain.MealItem
		}
		ItemsByJournalIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		UpdateItem []struct {
			Ctx       context.Context
			JournalID uuid.UUID
			ItemID    uuid.UUID
			Patch     domain.MealItemPatch
		}
		DeleteItem []struct {
			Ctx       context.Context
			JournalID uuid.UUID
			ItemID    uuid.UUID
		}
	}
	lockUpsert            sync.RWMutex
	lockGetByDate         sync.RWMutex
	lockGetByID           sync.RWMutex
	lockListInRange       sync.RWMutex
	lockDelete            sync.RWMutex
	lockAddItems          sync.RWMutex
	lockItemsByJournalIDs sync.RWMutex
	lockUpdateItem        sync.RWMutex
	lockDeleteItem        sync.RWMutex
}

func (mock *journalRepoMock) Upsert(ctx context.Context, userID uuid.UUID, date time.Time) (domain.MealJournal, error) {
	if mock.UpsertFunc == nil {
		panic("journalRepoMock.UpsertFunc: method is nil but journalRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, date)
}

func (mock *journalRepoMock) UpsertCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *journalRepoMock) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MealJournal, error) {
	if mock.GetByDateFunc == nil {
		panic("journalRepoMock.GetByDateFunc: method is nil but journalRepo.GetByDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, callInfo)
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, userID, date)
}

func (mock *journalRepoMock) GetByDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockGetByDate.RLock()
	calls := mock.calls.GetByDate
	mock.lockGetByDate.RUnlock()
	return calls
}

func (mock *journalRepoMock) GetByID(ctx context.Context, userID uuid.UUID, journalID uuid.UUID) (*domain.MealJournal, error) {
	if mock.GetByIDFunc == nil {
		panic("journalRepoMock.GetByIDFunc: method is nil but journalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		JournalID uuid.UUID
	}{Ctx: ctx, UserID: userID, JournalID: journalID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, journalID)
}

func (mock *journalRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	JournalID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *journalRepoMock) ListInRange(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) ([]domain.MealJournal, error) {
	if mock.ListInRangeFunc == nil {
		panic("journalRepoMock.ListInRangeFunc: method is nil but journalRepo.ListInRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{Ctx: ctx, UserID: userID, Start: start, End: end}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, callInfo)
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, userID, start, end)
}

func (mock *journalRepoMock) ListInRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *journalRepoMock) Delete(ctx context.Context, userID uuid.UUID, journalID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("journalRepoMock.DeleteFunc: method is nil but journalRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		JournalID uuid.UUID
	}{Ctx: ctx, UserID: userID, JournalID: journalID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, journalID)
}

func (mock *journalRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	JournalID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *journalRepoMock) AddItems(ctx context.Context, journalID uuid.UUID, items []domain.MealItem) ([]domain.MealItem, error) {
	if mock.AddItemsFunc == nil {
		panic("journalRepoMock.AddItemsFunc: method is nil but journalRepo.AddItems was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		JournalID uuid.UUID
		Items     []domain.MealItem
	}{Ctx: ctx, JournalID: journalID, Items: items}
	mock.lockAddItems.Lock()
	mock.calls.AddItems = append(mock.calls.AddItems, callInfo)
	mock.lockAddItems.Unlock()
	return mock.AddItemsFunc(ctx, journalID, items)
}

func (mock *journalRepoMock) AddItemsCalls() []struct {
	Ctx       context.Context
	JournalID uuid.UUID
	Items     []domain.MealItem
} {
	mock.lockAddItems.RLock()
	calls := mock.calls.AddItems
	mock.lockAddItems.RUnlock()
	return calls
}

func (mock *journalRepoMock) ItemsByJournalIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MealItem, error) {
	if mock.ItemsByJournalIDsFunc == nil {
		panic("journalRepoMock.ItemsByJournalIDsFunc: method is nil but journalRepo.ItemsByJournalIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockItemsByJournalIDs.Lock()
	mock.calls.ItemsByJournalIDs = append(mock.calls.ItemsByJournalIDs, callInfo)
	mock.lockItemsByJournalIDs.Unlock()
	return mock.ItemsByJournalIDsFunc(ctx, ids)
}

func (mock *journalRepoMock) ItemsByJournalIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockItemsByJournalIDs.RLock()
	calls := mock.calls.ItemsByJournalIDs
	mock.lockItemsByJournalIDs.RUnlock()
	return calls
}

func (mock *journalRepoMock) UpdateItem(ctx context.Context, journalID uuid.UUID, itemID uuid.UUID, patch domain.MealItemPatch) (*domain.MealItem, error) {
	if mock.UpdateItemFunc == nil {
		panic("journalRepoMock.UpdateItemFunc: method is nil but journalRepo.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		JournalID uuid.UUID
		ItemID    uuid.UUID
		Patch     domain.MealItemPatch
	}{Ctx: ctx, JournalID: journalID, ItemID: itemID, Patch: patch}
	mock.lockUpdateItem.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lockUpdateItem.Unlock()
	return mock.UpdateItemFunc(ctx, journalID, itemID, patch)
}

func (mock *journalRepoMock) UpdateItemCalls() []struct {
	Ctx       context.Context
	JournalID uuid.UUID
	ItemID    uuid.UUID
	Patch     domain.MealItemPatch
} {
	mock.lockUpdateItem.RLock()
	calls := mock.calls.UpdateItem
	mock.lockUpdateItem.RUnlock()
	return calls
}

func (mock *journalRepoMock) DeleteItem(ctx context.Context, journalID uuid.UUID, itemID uuid.UUID) (*domain.MealItem, error) {
	if mock.DeleteItemFunc == nil {
		panic("journalRepoMock.DeleteItemFunc: method is nil but journalRepo.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		JournalID uuid.UUID
		ItemID    uuid.UUID
	}{Ctx: ctx, JournalID: journalID, ItemID: itemID}
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, journalID, itemID)
}

func (mock *journalRepoMock) DeleteItemCalls() []struct {
	Ctx       context.Context
	JournalID uuid.UUID
	ItemID    uuid.UUID
} {
	mock.lockDeleteItem.RLock()
	calls := mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *recipeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if mock.GetByIDFunc == nil {
		panic("recipeRepoMock.GetByIDFunc: method is nil but recipeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recipeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ summaryLoader = &summaryLoaderMock{}

type summaryLoaderMock struct {
	GetSummariesByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.RecipeSummary, error)

	calls struct {
		GetSummariesByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetSummariesByIDs sync.RWMutex
}

func (mock *summaryLoaderMock) GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RecipeSummary, error) {
	if mock.GetSummariesByIDsFunc == nil {
		panic("summaryLoaderMock.GetSummariesByIDsFunc: method is nil but summaryLoader.GetSummariesByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetSummariesByIDs.Lock()
	mock.calls.GetSummariesByIDs = append(mock.calls.GetSummariesByIDs, callInfo)
	mock.lockGetSummariesByIDs.Unlock()
	return mock.GetSummariesByIDsFunc(ctx, ids)
}

func (mock *summaryLoaderMock) GetSummariesByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetSummariesByIDs.RLock()
	calls := mock.calls.GetSummariesByIDs
	mock.lockGetSummariesByIDs.RUnlock()
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
