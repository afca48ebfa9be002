package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. Rows are created by
// the external sign-in system; this service only reads them.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the name shown next to the user's recipes, falling
// back to the email address.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
