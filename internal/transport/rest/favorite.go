package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// favoriteService defines the minimal interface needed by FavoriteHandler.
type favoriteService interface {
	AddToFavorites(ctx context.Context, recipeID uuid.UUID) (*domain.FavoriteRecipe, error)
	RemoveFromFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error)
	ListFavorites(ctx context.Context) ([]domain.FavoriteRecipe, error)
	IsFavorite(ctx context.Context, recipeID uuid.UUID) (bool, error)
	ListFavoriteRecipes(ctx context.Context, cursor *domain.PageCursor, limit int) (*domain.RecipePage, error)
}

// FavoriteHandler serves favorite REST endpoints.
type FavoriteHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: logger.With("handler", "favorite")}
}

type removedResponse struct {
	Removed int64 `json:"removed"`
}

type isFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}

// Add handles POST /api/recipes/{id}/favorite.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	fav, err := h.svc.AddToFavorites(r.Context(), recipeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFavoriteResponse(fav))
}

// Remove handles DELETE /api/recipes/{id}/favorite. Removing a recipe that
// is not a favorite succeeds with removed=0.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.RemoveFromFavorites(r.Context(), recipeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, removedResponse{Removed: n})
}

// Status handles GET /api/recipes/{id}/favorite.
func (h *FavoriteHandler) Status(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ok, err := h.svc.IsFavorite(r.Context(), recipeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, isFavoriteResponse{Favorite: ok})
}

// List handles GET /api/me/favorites.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.ListFavorites(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]favoriteResponse, 0, len(favs))
	for i := range favs {
		out = append(out, toFavoriteResponse(&favs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListRecipes handles GET /api/me/favorite-recipes?cursor=&limit=.
func (h *FavoriteHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	cursor, err := queryCursor(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListFavoriteRecipes(r.Context(), cursor, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipePageResponse(page))
}
