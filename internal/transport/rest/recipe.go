package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/recipe"
)

// recipeService defines the minimal interface needed by RecipeHandler.
type recipeService interface {
	CreateRecipe(ctx context.Context, input recipe.CreateRecipeInput) (*recipe.CreateResult, error)
	GetBySlug(ctx context.Context, slug string) (*recipe.RecipeDetails, error)
	UpdateRecipe(ctx context.Context, input recipe.UpdateRecipeInput) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	ListShared(ctx context.Context, input recipe.ListSharedInput) (*domain.RecipePage, error)
	ListMine(ctx context.Context) ([]domain.Recipe, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// RecipeHandler serves recipe REST endpoints.
type RecipeHandler struct {
	svc recipeService
	log *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc recipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: logger.With("handler", "recipe")}
}

type ingredientRequest struct {
	Name          string   `json:"name"`
	Quantity      string   `json:"quantity"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Fat           *float64 `json:"fat"`
	Carbohydrates *float64 `json:"carbohydrates"`
}

type createRecipeRequest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Servings     int                 `json:"servings"`
	Category     *string             `json:"category"`
	Difficulty   *string             `json:"difficulty"`
	PrepTime     *int                `json:"prep_time"`
	CookTime     *int                `json:"cook_time"`
	Shared       bool                `json:"shared"`
	Ingredients  []ingredientRequest `json:"ingredients"`
	Instructions []string            `json:"instructions"`
}

type updateRecipeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Servings    *int    `json:"servings"`
	Category    *string `json:"category"`
	Difficulty  *string `json:"difficulty"`
	PrepTime    *int    `json:"prep_time"`
	CookTime    *int    `json:"cook_time"`
	Shared      *bool   `json:"shared"`
}

// Create handles POST /api/recipes.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ingredients := make([]recipe.IngredientInput, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, recipe.IngredientInput{
			Name:          ing.Name,
			Quantity:      ing.Quantity,
			Calories:      ing.Calories,
			Protein:       ing.Protein,
			Fat:           ing.Fat,
			Carbohydrates: ing.Carbohydrates,
		})
	}

	result, err := h.svc.CreateRecipe(r.Context(), recipe.CreateRecipeInput{
		Name:         req.Name,
		Description:  req.Description,
		Servings:     req.Servings,
		Category:     req.Category,
		Difficulty:   toDifficulty(req.Difficulty),
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Shared:       req.Shared,
		Ingredients:  ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCreateRecipeResponse(result))
}

// GetBySlug handles GET /api/recipes/{slug}.
func (h *RecipeHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeDetailsResponse(details))
}

// Update handles PATCH /api/recipes/{id}.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.UpdateRecipe(r.Context(), recipe.UpdateRecipeInput{
		RecipeID:    id,
		Name:        req.Name,
		Description: req.Description,
		Servings:    req.Servings,
		Category:    req.Category,
		Difficulty:  toDifficulty(req.Difficulty),
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Shared:      req.Shared,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Delete handles DELETE /api/recipes/{id}. The deleted recipe is returned.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.DeleteRecipe(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// ListShared handles GET /api/recipes?cursor=&limit=.
func (h *RecipeHandler) ListShared(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.svc.ListShared(r.Context(), recipe.ListSharedInput{Cursor: cursor, Limit: limit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipePageResponse(page))
}

// ListMine handles GET /api/me/recipes.
func (h *RecipeHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipesResponse(recipes))
}

// ListCategories handles GET /api/categories.
func (h *RecipeHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID.String(), Name: c.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func toDifficulty(s *string) *domain.Difficulty {
	if s == nil {
		return nil
	}
	d := domain.Difficulty(*s)
	return &d
}
