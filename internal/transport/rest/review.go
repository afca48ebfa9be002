package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	CreateReview(ctx context.Context, input review.CreateReviewInput) (*domain.Review, error)
	ListReviews(ctx context.Context, recipeID uuid.UUID) (*review.Reviews, error)
}

// ReviewHandler serves review REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type createReviewRequest struct {
	Stars    int    `json:"stars"`
	Comments string `json:"comments"`
}

// Create handles POST /api/recipes/{id}/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rv, err := h.svc.CreateReview(r.Context(), review.CreateReviewInput{
		RecipeID: recipeID,
		Stars:    req.Stars,
		Comments: req.Comments,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(rv))
}

// List handles GET /api/recipes/{id}/reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reviews, err := h.svc.ListReviews(r.Context(), recipeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewsResponse(reviews))
}
