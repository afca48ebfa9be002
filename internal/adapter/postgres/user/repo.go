// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var userColumns = []string{"id", "email", "name", "image", "created_at", "updated_at"}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Image     *string   `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	query := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

// Exists reports whether a user row with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return exists, nil
}

// Create inserts a new user and returns the persisted domain.User. An
// existing row with the same email is updated in place, which keeps the
// seed command re-runnable.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	query := postgres.Builder().
		Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Name, u.Image, u.CreatedAt, u.UpdatedAt).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, image = EXCLUDED.image, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING id, email, name, image, created_at, updated_at")
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := toDomainUser(row)
	return &result, nil
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Image:     row.Image,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
