// Package audit implements the append-only audit log repository using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/homefax/homefax-backend/internal/adapter/postgres"
	"github.com/homefax/homefax-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var auditColumns = []string{
	"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// auditRow mirrors the audit_logs table.
type auditRow struct {
	ID         uuid.UUID      `db:"id"`
	UserID     uuid.UUID      `db:"user_id"`
	EntityType string         `db:"entity_type"`
	EntityID   *uuid.UUID     `db:"entity_id"`
	Action     string         `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r auditRow) toDomain() domain.AuditRecord {
	return domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

// Log appends an audit record. It runs on the transaction bound to ctx when
// one is present, so the record commits or rolls back with the mutation it
// describes.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("audit_logs").
		Columns("user_id", "entity_type", "entity_id", "action", "changes").
		Values(record.UserID, record.EntityType.String(), record.EntityID,
			record.Action.String(), record.Changes).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit record: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_record", uuid.Nil)
	}
	return nil
}

// GetByEntity returns audit records for one entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, page domain.Page) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(auditColumns...).
		From("audit_logs").
		Where(squirrel.Eq{"entity_type": entityType.String(), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit records: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", uuid.Nil)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

// GetByUser returns audit records written by one user, newest first.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(auditColumns...).
		From("audit_logs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit records: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", uuid.Nil)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}
