// Package assignment implements the ContractorAssignment repository using PostgreSQL.
package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/homefax/homefax-backend/internal/adapter/postgres"
	"github.com/homefax/homefax-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var assignmentColumns = []string{
	"id", "contractor_id", "property_id", "assignment_type", "status",
	"assigned_date", "completed_date", "notes", "created_at", "updated_at",
}

// Repo provides contractor assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// assignmentRow mirrors the contractor_assignments table.
type assignmentRow struct {
	ID             uuid.UUID  `db:"id"`
	ContractorID   uuid.UUID  `db:"contractor_id"`
	PropertyID     uuid.UUID  `db:"property_id"`
	AssignmentType string     `db:"assignment_type"`
	Status         string     `db:"status"`
	AssignedDate   time.Time  `db:"assigned_date"`
	CompletedDate  *time.Time `db:"completed_date"`
	Notes          *string    `db:"notes"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r assignmentRow) toDomain() domain.ContractorAssignment {
	return domain.ContractorAssignment{
		ID:             r.ID,
		ContractorID:   r.ContractorID,
		PropertyID:     r.PropertyID,
		AssignmentType: r.AssignmentType,
		Status:         domain.AssignmentStatus(r.Status),
		AssignedDate:   r.AssignedDate,
		CompletedDate:  r.CompletedDate,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Create inserts a new assignment in the assigned state and returns the
// persisted entity.
func (r *Repo) Create(ctx context.Context, a *domain.ContractorAssignment) (*domain.ContractorAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("contractor_assignments").
		Columns("contractor_id", "property_id", "assignment_type", "notes").
		Values(a.ContractorID, a.PropertyID, a.AssignmentType, a.Notes).
		Suffix("RETURNING " + strings.Join(assignmentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert assignment: %w", err)
	}

	var row assignmentRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", uuid.Nil)
	}

	assignment := row.toDomain()
	return &assignment, nil
}

// GetByID returns an assignment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractorAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(assignmentColumns...).
		From("contractor_assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select assignment: %w", err)
	}

	var row assignmentRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}

	assignment := row.toDomain()
	return &assignment, nil
}

// List returns assignments matching the filter, ordered by creation time.
func (r *Repo) List(ctx context.Context, filter domain.AssignmentFilter) ([]domain.ContractorAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(assignmentColumns...).
		From("contractor_assignments").
		OrderBy("created_at", "id").
		Offset(uint64(filter.Page.Skip)).
		Limit(uint64(filter.Page.Limit))
	if filter.ContractorID != nil {
		query = query.Where(squirrel.Eq{"contractor_id": *filter.ContractorID})
	}
	if filter.PropertyID != nil {
		query = query.Where(squirrel.Eq{"property_id": *filter.PropertyID})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": filter.Status.String()})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list assignments: %w", err)
	}

	var rows []assignmentRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", uuid.Nil)
	}

	assignments := make([]domain.ContractorAssignment, len(rows))
	for i, row := range rows {
		assignments[i] = row.toDomain()
	}
	return assignments, nil
}

// SetStatus moves an assignment to the given status. completedDate, when
// non-nil, stamps completed_date; it is only passed for the completed status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus, completedDate *time.Time) (*domain.ContractorAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("contractor_assignments").
		Set("status", status.String()).
		Set("updated_at", squirrel.Expr("now()"))
	if completedDate != nil {
		update = update.Set("completed_date", *completedDate)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(assignmentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set assignment status: %w", err)
	}

	var row assignmentRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}

	assignment := row.toDomain()
	return &assignment, nil
}
