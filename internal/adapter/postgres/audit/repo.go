// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

var auditColumns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	var row auditRow
	insert := postgres.Builder().
		Insert("audit_log").
		Columns(auditColumns...).
		Values(
			record.ID, record.UserID,
			squirrel.Expr("?::entity_type", string(record.EntityType)),
			record.EntityID,
			squirrel.Expr("?::audit_action", string(record.Action)),
			changesJSON, record.CreatedAt,
		).
		Suffix("RETURNING id, user_id, entity_type::text AS entity_type, entity_id, action::text AS action, changes, created_at")
	if err := postgres.Get(ctx, q, &row, insert); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return toDomainAuditRecord(row)
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := selectAudit().
		Where("entity_type = ?::entity_type", string(entityType)).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	var rows []auditRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return toDomainAuditRecords(rows)
}

// GetByUser returns audit log records for a user, ordered by created_at DESC
// with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := selectAudit().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []auditRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("get audit_records by user: %w", err)
	}
	return toDomainAuditRecords(rows)
}

func selectAudit() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("id", "user_id", "entity_type::text AS entity_type", "entity_id",
			"action::text AS action", "changes", "created_at").
		From("audit_log")
}

func toDomainAuditRecords(rows []auditRow) ([]domain.AuditRecord, error) {
	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomainAuditRecord(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

func toDomainAuditRecord(row auditRow) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		EntityType: domain.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}

	// changes: JSONB -> map[string]any
	if len(row.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", row.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
