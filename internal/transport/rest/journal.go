package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/journal"
)

// journalService defines the minimal interface needed by JournalHandler.
type journalService interface {
	AddToJournal(ctx context.Context, input journal.AddToJournalInput) (*domain.MealJournal, error)
	GetJournal(ctx context.Context, date time.Time) (*domain.MealJournal, error)
	GetJournalsInRange(ctx context.Context, input journal.RangeInput) ([]domain.MealJournal, error)
	GetLastWeek(ctx context.Context) ([]domain.MealJournal, error)
	UpdateJournalItem(ctx context.Context, input journal.UpdateItemInput) (*domain.MealItem, error)
	DeleteJournalItem(ctx context.Context, journalID, itemID uuid.UUID) (*domain.MealItem, error)
	DeleteJournal(ctx context.Context, journalID uuid.UUID) error
	DailyStats(ctx context.Context, date time.Time) (*journal.DayStats, error)
}

// JournalHandler serves meal journal REST endpoints. Dates without a time
// are read in the caller's time zone, falling back to loc.
type JournalHandler struct {
	svc journalService
	loc *time.Location
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, loc *time.Location, logger *slog.Logger) *JournalHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &JournalHandler{svc: svc, loc: loc, log: logger.With("handler", "journal")}
}

type mealItemRequest struct {
	RecipeID uuid.UUID `json:"recipe_id"`
	Servings float64   `json:"servings"`
	Calories *float64  `json:"calories"`
	Protein  *float64  `json:"protein"`
	Carbs    *float64  `json:"carbs"`
	Fat      *float64  `json:"fat"`
}

type addToJournalRequest struct {
	Date  string            `json:"date"`
	Items []mealItemRequest `json:"items"`
}

type updateItemRequest struct {
	Servings float64  `json:"servings"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// Add handles POST /api/journal and returns the whole day.
func (h *JournalHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToJournalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	date, err := parseDate(r, "date", req.Date, h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]journal.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, journal.ItemInput{
			RecipeID: it.RecipeID,
			Servings: it.Servings,
			Calories: it.Calories,
			Protein:  it.Protein,
			Carbs:    it.Carbs,
			Fat:      it.Fat,
		})
	}

	j, err := h.svc.AddToJournal(r.Context(), journal.AddToJournalInput{Date: date, Items: items})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toJournalResponse(j))
}

// Get handles GET /api/journal?date=. A day without a journal is answered
// with a JSON null.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r, "date", r.URL.Query().Get("date"), h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	j, err := h.svc.GetJournal(r.Context(), date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if j == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, toJournalResponse(j))
}

// Range handles GET /api/journal/range?start=&end=.
func (h *JournalHandler) Range(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := parseDate(r, "start", q.Get("start"), h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	end, err := parseDate(r, "end", q.Get("end"), h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	journals, err := h.svc.GetJournalsInRange(r.Context(), journal.RangeInput{Start: start, End: end})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toJournalsResponse(journals))
}

// LastWeek handles GET /api/journal/last-week.
func (h *JournalHandler) LastWeek(w http.ResponseWriter, r *http.Request) {
	journals, err := h.svc.GetLastWeek(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toJournalsResponse(journals))
}

// Stats handles GET /api/journal/stats?date=.
func (h *JournalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r, "date", r.URL.Query().Get("date"), h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.DailyStats(r.Context(), date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDayStatsResponse(stats))
}

// UpdateItem handles PATCH /api/journal/{journalID}/items/{itemID}.
func (h *JournalHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	journalID, itemID, err := itemPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.UpdateJournalItem(r.Context(), journal.UpdateItemInput{
		JournalID: journalID,
		ItemID:    itemID,
		Servings:  req.Servings,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fat:       req.Fat,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealItemResponse(item))
}

// DeleteItem handles DELETE /api/journal/{journalID}/items/{itemID}. The
// removed item is returned.
func (h *JournalHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	journalID, itemID, err := itemPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.DeleteJournalItem(r.Context(), journalID, itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealItemResponse(item))
}

// Delete handles DELETE /api/journal/{journalID}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "journalID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteJournal(r.Context(), journalID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func itemPath(r *http.Request) (journalID, itemID uuid.UUID, err error) {
	if journalID, err = pathUUID(r, "journalID"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if itemID, err = pathUUID(r, "itemID"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return journalID, itemID, nil
}
