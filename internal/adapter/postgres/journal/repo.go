// Package journal implements the MealJournal repository using PostgreSQL.
// A journal is unique per (user, calendar day); items keep insertion order.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var (
	journalColumns = []string{"id", "user_id", "journal_date", "created_at", "updated_at"}
	itemColumns    = []string{"id", "meal_journal_id", "recipe_id", "servings", "calories", "protein", "carbs", "fat", "created_at", "updated_at"}
)

const (
	returningJournal = "RETURNING id, user_id, journal_date, created_at, updated_at"
	returningItem    = "RETURNING id, meal_journal_id, recipe_id, servings, calories, protein, carbs, fat, created_at, updated_at"
)

type journalRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	JournalDate time.Time `db:"journal_date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type itemRow struct {
	ID            uuid.UUID `db:"id"`
	MealJournalID uuid.UUID `db:"meal_journal_id"`
	RecipeID      uuid.UUID `db:"recipe_id"`
	Servings      float64   `db:"servings"`
	Calories      *float64  `db:"calories"`
	Protein       *float64  `db:"protein"`
	Carbs         *float64  `db:"carbs"`
	Fat           *float64  `db:"fat"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Repo provides meal journal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new journal repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Journals
// ---------------------------------------------------------------------------

// Upsert returns the user's journal for date, creating it when absent. The
// unique (user_id, journal_date) constraint makes concurrent calls for the
// same day converge on one row. date must already be a calendar date.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, date time.Time) (domain.MealJournal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row journalRow
	insert := postgres.Builder().
		Insert("meal_journals").
		Columns(journalColumns...).
		Values(uuid.New(), userID, date, squirrel.Expr("now()"), squirrel.Expr("now()")).
		Suffix("ON CONFLICT ON CONSTRAINT meal_journals_user_date_key DO UPDATE SET updated_at = now()").
		Suffix(returningJournal)
	if err := postgres.Get(ctx, q, &row, insert); err != nil {
		return domain.MealJournal{}, postgres.MapError(err, "meal_journal", date.Format(time.DateOnly))
	}
	return toDomainJournal(row), nil
}

// GetByDate returns the user's journal for date without items.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MealJournal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row journalRow
	query := postgres.Builder().
		Select(journalColumns...).
		From("meal_journals").
		Where(squirrel.Eq{"user_id": userID, "journal_date": date})
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "meal_journal", date.Format(time.DateOnly))
	}

	j := toDomainJournal(row)
	return &j, nil
}

// GetByID returns the journal only when it belongs to userID, so a foreign
// journal is indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, userID, journalID uuid.UUID) (*domain.MealJournal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row journalRow
	query := postgres.Builder().
		Select(journalColumns...).
		From("meal_journals").
		Where(squirrel.Eq{"id": journalID, "user_id": userID})
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "meal_journal", journalID)
	}

	j := toDomainJournal(row)
	return &j, nil
}

// ListInRange returns the user's journals with start <= date <= end,
// ordered by date, without items.
func (r *Repo) ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.MealJournal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []journalRow
	query := postgres.Builder().
		Select(journalColumns...).
		From("meal_journals").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"journal_date": start}).
		Where(squirrel.LtOrEq{"journal_date": end}).
		OrderBy("journal_date")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "meal_journal", userID)
	}

	out := make([]domain.MealJournal, len(rows))
	for i, row := range rows {
		out[i] = toDomainJournal(row)
	}
	return out, nil
}

// Delete removes the journal when it belongs to userID. Items go with it by
// cascade. Returns ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, journalID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("meal_journals").
		Where(squirrel.Eq{"id": journalID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "meal_journal", journalID)
	}
	if n == 0 {
		return fmt.Errorf("meal_journal %s: %w", journalID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// AddItems appends items to the journal in slice order and returns them as
// stored.
func (r *Repo) AddItems(ctx context.Context, journalID uuid.UUID, items []domain.MealItem) ([]domain.MealItem, error) {
	if len(items) == 0 {
		return []domain.MealItem{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert("meal_items").
		Columns(itemColumns...)
	for _, it := range items {
		insert = insert.Values(it.ID, journalID, it.RecipeID, it.Servings,
			it.Calories, it.Protein, it.Carbs, it.Fat,
			squirrel.Expr("now()"), squirrel.Expr("now()"))
	}
	insert = insert.Suffix(returningItem)

	var rows []itemRow
	if err := postgres.Select(ctx, q, &rows, insert); err != nil {
		return nil, postgres.MapError(err, "meal_item", journalID)
	}

	// Hand the items back in the caller's order.
	byID := make(map[uuid.UUID]itemRow, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	out := make([]domain.MealItem, 0, len(items))
	for _, it := range items {
		if row, ok := byID[it.ID]; ok {
			out = append(out, toDomainItem(row))
		}
	}
	return out, nil
}

// ItemsByJournalIDs returns the items of every journal in ids, grouped by
// journal and in insertion order within each journal.
func (r *Repo) ItemsByJournalIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MealItem, error) {
	if len(ids) == 0 {
		return []domain.MealItem{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []itemRow
	query := postgres.Builder().
		Select(itemColumns...).
		From("meal_items").
		Where(squirrel.Eq{"meal_journal_id": ids}).
		OrderBy("meal_journal_id", "seq")
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "meal_item", fmt.Sprintf("%d journals", len(ids)))
	}

	out := make([]domain.MealItem, len(rows))
	for i, row := range rows {
		out[i] = toDomainItem(row)
	}
	return out, nil
}

// UpdateItem sets servings and every non-nil macro of patch on the item
// and returns it. ErrNotFound when the item is not under journalID.
func (r *Repo) UpdateItem(ctx context.Context, journalID, itemID uuid.UUID, patch domain.MealItemPatch) (*domain.MealItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().
		Update("meal_items").
		Set("servings", patch.Servings)
	if patch.Calories != nil {
		update = update.Set("calories", *patch.Calories)
	}
	if patch.Protein != nil {
		update = update.Set("protein", *patch.Protein)
	}
	if patch.Carbs != nil {
		update = update.Set("carbs", *patch.Carbs)
	}
	if patch.Fat != nil {
		update = update.Set("fat", *patch.Fat)
	}
	update = update.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": itemID, "meal_journal_id": journalID}).
		Suffix(returningItem)

	var row itemRow
	if err := postgres.Get(ctx, q, &row, update); err != nil {
		return nil, postgres.MapError(err, "meal_item", itemID)
	}

	item := toDomainItem(row)
	return &item, nil
}

// DeleteItem removes the item and returns it as it was. ErrNotFound when
// the item is not under journalID.
func (r *Repo) DeleteItem(ctx context.Context, journalID, itemID uuid.UUID) (*domain.MealItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row itemRow
	del := postgres.Builder().
		Delete("meal_items").
		Where(squirrel.Eq{"id": itemID, "meal_journal_id": journalID}).
		Suffix(returningItem)
	if err := postgres.Get(ctx, q, &row, del); err != nil {
		return nil, postgres.MapError(err, "meal_item", itemID)
	}

	item := toDomainItem(row)
	return &item, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func toDomainJournal(row journalRow) domain.MealJournal {
	return domain.MealJournal{
		ID:        row.ID,
		UserID:    row.UserID,
		Date:      row.JournalDate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainItem(row itemRow) domain.MealItem {
	return domain.MealItem{
		ID:            row.ID,
		MealJournalID: row.MealJournalID,
		RecipeID:      row.RecipeID,
		Servings:      row.Servings,
		Calories:      row.Calories,
		Protein:       row.Protein,
		Carbs:         row.Carbs,
		Fat:           row.Fat,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
