package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/journal"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/recipe"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/review"
)

var _ recipeService = &recipeServiceMock{}

type recipeServiceMock struct {
	CreateRecipeFunc   func(ctx context.Context, input recipe.CreateRecipeInput) (*recipe.CreateResult, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*recipe.RecipeDetails, error)
	UpdateRecipeFunc   func(ctx context.Context, input recipe.UpdateRecipeInput) (*domain.Recipe, error)
	DeleteRecipeFunc   func(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	ListSharedFunc     func(ctx context.Context, input recipe.ListSharedInput) (*domain.RecipePage, error)
	ListMineFunc       func(ctx context.Context) ([]domain.Recipe, error)
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)

	calls struct {
		CreateRecipe []struct {
			Ctx   context.Context
			Input recipe.CreateRecipeInput
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		UpdateRecipe []struct {
			Ctx   context.Context
			Input recipe.UpdateRecipeInput
		}
		DeleteRecipe []struct {
			Ctx      context.Context
			RecipeID uuid.UUID
		}
		ListShared []struct {
			Ctx   context.Context
			Input recipe.ListSharedInput
		}
		ListMine []struct {
			Ctx context.Context
		}
		ListCategories []struct {
			Ctx context.Context
		}
	}
	lockCreateRecipe   sync.RWMutex
	lockGetBySlug      sync.RWMutex
	lockUpdateRecipe   sync.RWMutex
	lockDeleteRecipe   sync.RWMutex
	lockListShared     sync.RWMutex
	lockListMine       sync.RWMutex
	lockListCategories sync.RWMutex
}

func (mock *recipeServiceMock) CreateRecipe(ctx context.Context, input recipe.CreateRecipeInput) (*recipe.CreateResult, error) {
	if mock.CreateRecipeFunc == nil {
		panic("recipeServiceMock.CreateRecipeFunc: method is nil but recipeService.CreateRecipe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recipe.CreateRecipeInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateRecipe.Lock()
	mock.calls.CreateRecipe = append(mock.calls.CreateRecipe, callInfo)
	mock.lockCreateRecipe.Unlock()
	return mock.CreateRecipeFunc(ctx, input)
}

func (mock *recipeServiceMock) CreateRecipeCalls() []struct {
	Ctx   context.Context
	Input recipe.CreateRecipeInput
} {
	mock.lockCreateRecipe.RLock()
	calls := mock.calls.CreateRecipe
	mock.lockCreateRecipe.RUnlock()
	return calls
}

func (mock *recipeServiceMock) GetBySlug(ctx context.Context, slug string) (*recipe.RecipeDetails, error) {
	if mock.GetBySlugFunc == nil {
		panic("recipeServiceMock.GetBySlugFunc: method is nil but recipeService.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *recipeServiceMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *recipeServiceMock) UpdateRecipe(ctx context.Context, input recipe.UpdateRecipeInput) (*domain.Recipe, error) {
	if mock.UpdateRecipeFunc == nil {
		panic("recipeServiceMock.UpdateRecipeFunc: method is nil but recipeService.UpdateRecipe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recipe.UpdateRecipeInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateRecipe.Lock()
	mock.calls.UpdateRecipe = append(mock.calls.UpdateRecipe, callInfo)
	mock.lockUpdateRecipe.Unlock()
	return mock.UpdateRecipeFunc(ctx, input)
}

func (mock *recipeServiceMock) UpdateRecipeCalls() []struct {
	Ctx   context.Context
	Input recipe.UpdateRecipeInput
} {
	mock.lockUpdateRecipe.RLock()
	calls := mock.calls.UpdateRecipe
	mock.lockUpdateRecipe.RUnlock()
	return calls
}

func (mock *recipeServiceMock) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	if mock.DeleteRecipeFunc == nil {
		panic("recipeServiceMock.DeleteRecipeFunc: method is nil but recipeService.DeleteRecipe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID uuid.UUID
	}{Ctx: ctx, RecipeID: recipeID}
	mock.lockDeleteRecipe.Lock()
	mock.calls.DeleteRecipe = append(mock.calls.DeleteRecipe, callInfo)
	mock.lockDeleteRecipe.Unlock()
	return mock.DeleteRecipeFunc(ctx, recipeID)
}

func (mock *recipeServiceMock) DeleteRecipeCalls() []struct {
	Ctx      context.Context
	RecipeID uuid.UUID
} {
	mock.lockDeleteRecipe.RLock()
	calls := mock.calls.DeleteRecipe
	mock.lockDeleteRecipe.RUnlock()
	return calls
}

func (mock *recipeServiceMock) ListShared(ctx context.Context, input recipe.ListSharedInput) (*domain.RecipePage, error) {
	if mock.ListSharedFunc == nil {
		panic("recipeServiceMock.ListSharedFunc: method is nil but recipeService.ListShared was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recipe.ListSharedInput
	}{Ctx: ctx, Input: input}
	mock.lockListShared.Lock()
	mock.calls.ListShared = append(mock.calls.ListShared, callInfo)
	mock.lockListShared.Unlock()
	return mock.ListSharedFunc(ctx, input)
}

func (mock *recipeServiceMock) ListSharedCalls() []struct {
	Ctx   context.Context
	Input recipe.ListSharedInput
} {
	mock.lockListShared.RLock()
	calls := mock.calls.ListShared
	mock.lockListShared.RUnlock()
	return calls
}

func (mock *recipeServiceMock) ListMine(ctx context.Context) ([]domain.Recipe, error) {
	if mock.ListMineFunc == nil {
		panic("recipeServiceMock.ListMineFunc: method is nil but recipeService.ListMine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx)
}

func (mock *recipeServiceMock) ListMineCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *recipeServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("recipeServiceMock.ListCategoriesFunc: method is nil but recipeService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *recipeServiceMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	AddToJournalFunc       func(ctx context.Context, input journal.AddToJournalInput) (*domain.MealJournal, error)
	GetJournalFunc         func(ctx context.Context, date time.Time) (*domain.MealJournal, error)
	GetJournalsInRangeFunc func(ctx context.Context, input journal.RangeInput) ([]domain.MealJournal, error)
	GetLastWeekFunc        func(ctx context.Context) ([]domain.MealJournal, error)
	UpdateJournalItemFunc  func(ctx context.Context, input journal.UpdateItemInput) (*domain.MealItem, error)
	DeleteJournalItemFunc  func(ctx context.Context, journalID uuid.UUID, itemID uuid.UUID) (*domain.MealItem, error)
	DeleteJournalFunc      func(ctx context.Context, journalID uuid.UUID) error
	DailyStatsFunc         func(ctx context.Context, date time.Time) (*journal.DayStats, error)

	calls struct {
		AddToJournal []struct {
			Ctx   context.Context
			Input journal.AddToJournalInput
		}
		GetJournal []struct {
			Ctx  context.Context
			Date time.Time
		}
		GetJournalsInRange []struct {
			Ctx   context.Context
			Input journal.RangeInput
		}
		GetLastWeek []struct {
			Ctx context.Context
		}
		UpdateJournalItem []struct {
			Ctx   context.Context
			Input journal.UpdateItemInput
		}
		DeleteJournalItem []struct {
			Ctx       context.Context
			JournalID uuid.UUID
			ItemID    uuid.UUID
		}
		DeleteJournal []struct {
			Ctx       context.Context
			JournalID uuid.UUID
		}
		DailyStats []struct {
			Ctx  context.Context
			Date time.Time
		}
	}
	lockAddToJournal       sync.RWMutex
	lockGetJournal         sync.RWMutex
	lockGetJournalsInRange sync.RWMutex
	lockGetLastWeek        sync.RWMutex
	lockUpdateJournalItem  sync.RWMutex
	lockDeleteJournalItem  sync.RWMutex
	lockDeleteJournal      sync.RWMutex
	lockDailyStats         sync.RWMutex
}

func (mock *journalServiceMock) AddToJournal(ctx context.Context, input journal.AddToJournalInput) (*domain.MealJournal, error) {
	if mock.AddToJournalFunc == nil {
		panic("journalServiceMock.AddToJournalFunc: method is nil but journalService.AddToJournal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.AddToJournalInput
	}{Ctx: ctx, Input: input}
	mock.lockAddToJournal.Lock()
	mock.calls.AddToJournal = append(mock.calls.AddToJournal, callInfo)
	mock.lockAddToJournal.Unlock()
	return mock.AddToJournalFunc(ctx, input)
}

func (mock *journalServiceMock) AddToJournalCalls() []struct {
	Ctx   context.Context
	Input journal.AddToJournalInput
} {
	mock.lockAddToJournal.RLock()
	calls := mock.calls.AddToJournal
	mock.lockAddToJournal.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetJournal(ctx context.Context, date time.Time) (*domain.MealJournal, error) {
	if mock.GetJournalFunc == nil {
		panic("journalServiceMock.GetJournalFunc: method is nil but journalService.GetJournal was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
	}{Ctx: ctx, Date: date}
	mock.lockGetJournal.Lock()
	mock.calls.GetJournal = append(mock.calls.GetJournal, callInfo)
	mock.lockGetJournal.Unlock()
	return mock.GetJournalFunc(ctx, date)
}

func (mock *journalServiceMock) GetJournalCalls() []struct {
	Ctx  context.Context
	Date time.Time
} {
	mock.lockGetJournal.RLock()
	calls := mock.calls.GetJournal
	mock.lockGetJournal.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetJournalsInRange(ctx context.Context, input journal.RangeInput) ([]domain.MealJournal, error) {
	if mock.GetJournalsInRangeFunc == nil {
		panic("journalServiceMock.GetJournalsInRangeFunc: method is nil but journalService.GetJournalsInRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.RangeInput
	}{Ctx: ctx, Input: input}
	mock.lockGetJournalsInRange.Lock()
	mock.calls.GetJournalsInRange = append(mock.calls.GetJournalsInRange, callInfo)
	mock.lockGetJournalsInRange.Unlock()
	return mock.GetJournalsInRangeFunc(ctx, input)
}

func (mock *journalServiceMock) GetJournalsInRangeCalls() []struct {
	Ctx   context.Context
	Input journal.RangeInput
} {
	mock.lockGetJournalsInRange.RLock()
	calls := mock.calls.GetJournalsInRange
	mock.lockGetJournalsInRange.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetLastWeek(ctx context.Context) ([]domain.MealJournal, error) {
	if mock.GetLastWeekFunc == nil {
		panic("journalServiceMock.GetLastWeekFunc: method is nil but journalService.GetLastWeek was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetLastWeek.Lock()
	mock.calls.GetLastWeek = append(mock.calls.GetLastWeek, callInfo)
	mock.lockGetLastWeek.Unlock()
	return mock.GetLastWeekFunc(ctx)
}

func (mock *journalServiceMock) GetLastWeekCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetLastWeek.RLock()
	calls := mock.calls.GetLastWeek
	mock.lockGetLastWeek.RUnlock()
	return calls
}

func (mock *journalServiceMock) UpdateJournalItem(ctx context.Context, input journal.UpdateItemInput) (*domain.MealItem, error) {
	if mock.UpdateJournalItemFunc == nil {
		panic("journalServiceMock.UpdateJournalItemFunc: method is nil but journalService.UpdateJournalItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.UpdateItemInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateJournalItem.Lock()
	mock.calls.UpdateJournalItem = append(mock.calls.UpdateJournalItem, callInfo)
	mock.lockUpdateJournalItem.Unlock()
	return mock.UpdateJournalItemFunc(ctx, input)
}

func (mock *journalServiceMock) UpdateJournalItemCalls() []struct {
	Ctx   context.Context
	Input journal.UpdateItemInput
} {
	mock.lockUpdateJournalItem.RLock()
	calls := mock.calls.UpdateJournalItem
	mock.lockUpdateJournalItem.RUnlock()
	return calls
}

func (mock *journalServiceMock) DeleteJournalItem(ctx context.Context, journalID uuid.UUID, itemID uuid.UUID) (*domain.MealItem, error) {
	if mock.DeleteJournalItemFunc == nil {
		panic("journalServiceMock.DeleteJournalItemFunc: method is nil but journalService.DeleteJournalItem was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		JournalID uuid.UUID
		ItemID    uuid.UUID
	}{Ctx: ctx, JournalID: journalID, ItemID: itemID}
	mock.lockDeleteJournalItem.Lock()
	mock.calls.DeleteJournalItem = append(mock.calls.DeleteJournalItem, callInfo)
	mock.lockDeleteJournalItem.Unlock()
	return mock.DeleteJournalItemFunc(ctx, journalID, itemID)
}

func (mock *journalServiceMock) DeleteJournalItemCalls() []struct {
	Ctx       context.Context
	JournalID uuid.UUID
	ItemID    uuid.UUID
} {
	mock.lockDeleteJournalItem.RLock()
	calls := mock.calls.DeleteJournalItem
	mock.lockDeleteJournalItem.RUnlock()
	return calls
}

func (mock *journalServiceMock) DeleteJournal(ctx context.Context, journalID uuid.UUID) error {
	if mock.DeleteJournalFunc == nil {
		panic("journalServiceMock.DeleteJournalFunc: method is nil but journalService.DeleteJournal was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		JournalID uuid.UUID
	}{Ctx: ctx, JournalID: journalID}
	mock.lockDeleteJournal.Lock()
	mock.calls.DeleteJournal = append(mock.calls.DeleteJournal, callInfo)
	mock.lockDeleteJournal.Unlock()
	return mock.DeleteJournalFunc(ctx, journalID)
}

func (mock *journalServiceMock) DeleteJournalCalls() []struct {
	Ctx       context.Context
	JournalID uuid.UUID
} {
	mock.lockDeleteJournal.RLock()
	calls := mock.calls.DeleteJournal
	mock.lockDeleteJournal.RUnlock()
	return calls
}

func (mock *journalServiceMock) DailyStats(ctx context.Context, date time.Time) (*journal.DayStats, error) {
	if mock.DailyStatsFunc == nil {
		panic("journalServiceMock.DailyStatsFunc: method is nil but journalService.DailyStats was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
	}{Ctx: ctx, Date: date}
	mock.lockDailyStats.Lock()
	mock.calls.DailyStats = append(mock.calls.DailyStats, callInfo)
	mock.lockDailyStats.Unlock()
	return mock.DailyStatsFunc(ctx, date)
}

func (mock *journalServiceMock) DailyStatsCalls() []struct {
	Ctx  context.Context
	Date time.Time
} {
	mock.lockDailyStats.RLock()
	calls := mock.calls.DailyStats
	mock.lockDailyStats.RUnlock()
	return calls
}

var _ favoriteService = &favoriteServiceMock{}

type favoriteServiceMock struct {
	AddToFavoritesFunc      func(ctx context.Context, recipeID uuid.UUID) (*domain.FavoriteRecipe, error)
	RemoveFromFavoritesFunc func(ctx context.Context, recipeID uuid.UUID) (int64, error)
	ListFavoritesFunc       func(ctx context.Context) ([]domain.FavoriteRecipe, error)
	IsFavoriteFunc          func(ctx context.Context, recipeID uuid.UUID) (bool, error)
	ListFavoriteRecipesFunc func(ctx context.Context, cursor *domain.PageCursor, limit int) (*domain.RecipePage, error)

	calls struct {
		AddToFavorites []struct {
			Ctx      context.Context
			RecipeID uuid.UUID
		}
		RemoveFromFavorites []struct {
			Ctx      context.Context
			RecipeID uuid.UUID
		}
		ListFavorites []struct {
			Ctx context.Context
		}
		IsFavorite []struct {
			Ctx      context.Context
			RecipeID uuid.UUID
		}
		ListFavoriteRecipes []struct {
			Ctx    context.Context
			Cursor *domain.PageCursor
			Limit  int
		}
	}
	lockAddToFavorites      sync.RWMutex
	lockRemoveFromFavorites sync.RWMutex
	lockListFavorites       sync.RWMutex
	lockIsFavorite          sync.RWMutex
	lockListFavoriteRecipes sync.RWMutex
}

func (mock *favoriteServiceMock) AddToFavorites(ctx context.Context, recipeID uuid.UUID) (*domain.FavoriteRecipe, error) {
	if mock.AddToFavoritesFunc == nil {
		panic("favoriteServiceMock.AddToFavoritesFunc: method is nil but favoriteService.AddToFavorites was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID uuid.UUID
	}{Ctx: ctx, RecipeID: recipeID}
	mock.lockAddToFavorites.Lock()
	mock.calls.AddToFavorites = append(mock.calls.AddToFavorites, callInfo)
	mock.lockAddToFavorites.Unlock()
	return mock.AddToFavoritesFunc(ctx, recipeID)
}

func (mock *favoriteServiceMock) AddToFavoritesCalls() []struct {
	Ctx      context.Context
	RecipeID uuid.UUID
} {
	mock.lockAddToFavorites.RLock()
	calls := mock.calls.AddToFavorites
	mock.lockAddToFavorites.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) RemoveFromFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	if mock.RemoveFromFavoritesFunc == nil {
		panic("favoriteServiceMock.RemoveFromFavoritesFunc: method is nil but favoriteService.RemoveFromFavorites was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID uuid.UUID
	}{Ctx: ctx, RecipeID: recipeID}
	mock.lockRemoveFromFavorites.Lock()
	mock.calls.RemoveFromFavorites = append(mock.calls.RemoveFromFavorites, callInfo)
	mock.lockRemoveFromFavorites.Unlock()
	return mock.RemoveFromFavoritesFunc(ctx, recipeID)
}

func (mock *favoriteServiceMock) RemoveFromFavoritesCalls() []struct {
	Ctx      context.Context
	RecipeID uuid.UUID
} {
	mock.lockRemoveFromFavorites.RLock()
	calls := mock.calls.RemoveFromFavorites
	mock.lockRemoveFromFavorites.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) ListFavorites(ctx context.Context) ([]domain.FavoriteRecipe, error) {
	if mock.ListFavoritesFunc == nil {
		panic("favoriteServiceMock.ListFavoritesFunc: method is nil but favoriteService.ListFavorites was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListFavorites.Lock()
	mock.calls.ListFavorites = append(mock.calls.ListFavorites, callInfo)
	mock.lockListFavorites.Unlock()
	return mock.ListFavoritesFunc(ctx)
}

func (mock *favoriteServiceMock) ListFavoritesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListFavorites.RLock()
	calls := mock.calls.ListFavorites
	mock.lockListFavorites.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) IsFavorite(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	if mock.IsFavoriteFunc == nil {
		panic("favoriteServiceMock.IsFavoriteFunc: method is nil but favoriteService.IsFavorite was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID uuid.UUID
	}{Ctx: ctx, RecipeID: recipeID}
	mock.lockIsFavorite.Lock()
	mock.calls.IsFavorite = append(mock.calls.IsFavorite, callInfo)
	mock.lockIsFavorite.Unlock()
	return mock.IsFavoriteFunc(ctx, recipeID)
}

func (mock *favoriteServiceMock) IsFavoriteCalls() []struct {
	Ctx      context.Context
	RecipeID uuid.UUID
} {
	mock.lockIsFavorite.RLock()
	calls := mock.calls.IsFavorite
	mock.lockIsFavorite.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) ListFavoriteRecipes(ctx context.Context, cursor *domain.PageCursor, limit int) (*domain.RecipePage, error) {
	if mock.ListFavoriteRecipesFunc == nil {
		panic("favoriteServiceMock.ListFavoriteRecipesFunc: method is nil but favoriteService.ListFavoriteRecipes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cursor *domain.PageCursor
		Limit  int
	}{Ctx: ctx, Cursor: cursor, Limit: limit}
	mock.lockListFavoriteRecipes.Lock()
	mock.calls.ListFavoriteRecipes = append(mock.calls.ListFavoriteRecipes, callInfo)
	mock.lockListFavoriteRecipes.Unlock()
	return mock.ListFavoriteRecipesFunc(ctx, cursor, limit)
}

func (mock *favoriteServiceMock) ListFavoriteRecipesCalls() []struct {
	Ctx    context.Context
	Cursor *domain.PageCursor
	Limit  int
} {
	mock.lockListFavoriteRecipes.RLock()
	calls := mock.calls.ListFavoriteRecipes
	mock.lockListFavoriteRecipes.RUnlock()
	return calls
}

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	CreateReviewFunc func(ctx context.Context, input review.CreateReviewInput) (*domain.Review, error)
	ListReviewsFunc  func(ctx context.Context, recipeID uuid.UUID) (*review.Reviews, error)

	calls struct {
		CreateReview []struct {
			Ctx   context.Context
			Input review.CreateReviewInput
		}
		ListReviews []struct {
			Ctx      context.Context
			RecipeID uuid.UUID
		}
	}
	lockCreateReview sync.RWMutex
	lockListReviews  sync.RWMutex
}

func (mock *reviewServiceMock) CreateReview(ctx context.Context, input review.CreateReviewInput) (*domain.Review, error) {
	if mock.CreateReviewFunc == nil {
		panic("reviewServiceMock.CreateReviewFunc: method is nil but reviewService.CreateReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.CreateReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateReview.Lock()
	mock.calls.CreateReview = append(mock.calls.CreateReview, callInfo)
	mock.lockCreateReview.Unlock()
	return mock.CreateReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) CreateReviewCalls() []struct {
	Ctx   context.Context
	Input review.CreateReviewInput
} {
	mock.lockCreateReview.RLock()
	calls := mock.calls.CreateReview
	mock.lockCreateReview.RUnlock()
	return calls
}

func (mock *reviewServiceMock) ListReviews(ctx context.Context, recipeID uuid.UUID) (*review.Reviews, error) {
	if mock.ListReviewsFunc == nil {
		panic("reviewServiceMock.ListReviewsFunc: method is nil but reviewService.ListReviews was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID uuid.UUID
	}{Ctx: ctx, RecipeID: recipeID}
	mock.lockListReviews.Lock()
	mock.calls.ListReviews = append(mock.calls.ListReviews, callInfo)
	mock.lockListReviews.Unlock()
	return mock.ListReviewsFunc(ctx, recipeID)
}

func (mock *reviewServiceMock) ListReviewsCalls() []struct {
	Ctx      context.Context
	RecipeID uuid.UUID
} {
	mock.lockListReviews.RLock()
	calls := mock.calls.ListReviews
	mock.lockListReviews.RUnlock()
	return calls
}
