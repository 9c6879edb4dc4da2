// Package renovation implements the Renovation repository using PostgreSQL.
package renovation

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

var renovationColumns = []string{
	"id", "property_id", "contractor_id", "title", "description",
	"renovation_type", "start_date", "end_date", "cost", "materials",
	"blueprints", "photos", "status", "is_verified", "created_at", "updated_at",
}

// Repo provides renovation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new renovation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// renovationRow mirrors the renovations table.
type renovationRow struct {
	ID             uuid.UUID      `db:"id"`
	PropertyID     uuid.UUID      `db:"property_id"`
	ContractorID   uuid.UUID      `db:"contractor_id"`
	Title          string         `db:"title"`
	Description    *string        `db:"description"`
	RenovationType string         `db:"renovation_type"`
	StartDate      time.Time      `db:"start_date"`
	EndDate        *time.Time     `db:"end_date"`
	Cost           float64        `db:"cost"`
	Materials      map[string]any `db:"materials"`
	Blueprints     []string       `db:"blueprints"`
	Photos         []string       `db:"photos"`
	Status         string         `db:"status"`
	IsVerified     bool           `db:"is_verified"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r renovationRow) toDomain() domain.Renovation {
	return domain.Renovation{
		ID:             r.ID,
		PropertyID:     r.PropertyID,
		ContractorID:   r.ContractorID,
		Title:          r.Title,
		Description:    r.Description,
		RenovationType: r.RenovationType,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Cost:           r.Cost,
		Materials:      r.Materials,
		Blueprints:     r.Blueprints,
		Photos:         r.Photos,
		Status:         domain.RenovationStatus(r.Status),
		IsVerified:     r.IsVerified,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Create inserts a new renovation and returns the persisted domain.Renovation.
// Status is taken from the passed entity so callers control the initial state.
func (r *Repo) Create(ctx context.Context, ren *domain.Renovation) (*domain.Renovation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	materials := ren.Materials
	if materials == nil {
		materials = map[string]any{}
	}
	blueprints := ren.Blueprints
	if blueprints == nil {
		blueprints = []string{}
	}
	photos := ren.Photos
	if photos == nil {
		photos = []string{}
	}

	sql, args, err := qb.Insert("renovations").
		Columns("property_id", "contractor_id", "title", "description",
			"renovation_type", "start_date", "cost", "materials",
			"blueprints", "photos", "status").
		Values(ren.PropertyID, ren.ContractorID, ren.Title, ren.Description,
			ren.RenovationType, ren.StartDate, ren.Cost, materials,
			blueprints, photos, ren.Status.String()).
		Suffix("RETURNING " + strings.Join(renovationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert renovation: %w", err)
	}

	var row renovationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "renovation", uuid.Nil)
	}

	renovation := row.toDomain()
	return &renovation, nil
}

// GetByID returns a renovation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Renovation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(renovationColumns...).
		From("renovations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select renovation: %w", err)
	}

	var row renovationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "renovation", id)
	}

	renovation := row.toDomain()
	return &renovation, nil
}

// Update applies a merge-patch to a renovation. nil params leave the column
// unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.RenovationUpdateParams) (*domain.Renovation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("renovations").Set("updated_at", squirrel.Expr("now()"))
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.RenovationType != nil {
		update = update.Set("renovation_type", *params.RenovationType)
	}
	if params.Cost != nil {
		update = update.Set("cost", *params.Cost)
	}
	if params.Materials != nil {
		update = update.Set("materials", params.Materials)
	}
	if params.Blueprints != nil {
		update = update.Set("blueprints", params.Blueprints)
	}
	if params.Photos != nil {
		update = update.Set("photos", params.Photos)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(renovationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update renovation: %w", err)
	}

	var row renovationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "renovation", id)
	}

	renovation := row.toDomain()
	return &renovation, nil
}

// List returns renovations matching the filter, ordered by creation time.
func (r *Repo) List(ctx context.Context, filter domain.RenovationFilter) ([]domain.Renovation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(renovationColumns...).
		From("renovations").
		OrderBy("created_at", "id").
		Offset(uint64(filter.Page.Skip)).
		Limit(uint64(filter.Page.Limit))
	if filter.PropertyID != nil {
		query = query.Where(squirrel.Eq{"property_id": *filter.PropertyID})
	}
	if filter.ContractorID != nil {
		query = query.Where(squirrel.Eq{"contractor_id": *filter.ContractorID})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": filter.Status.String()})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list renovations: %w", err)
	}

	var rows []renovationRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "renovation", uuid.Nil)
	}

	renovations := make([]domain.Renovation, len(rows))
	for i, row := range rows {
		renovations[i] = row.toDomain()
	}
	return renovations, nil
}

// Complete moves a renovation to completed and stamps end_date.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, endDate time.Time) (*domain.Renovation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("renovations").
		Set("status", domain.RenovationStatusCompleted.String()).
		Set("end_date", endDate).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(renovationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build complete renovation: %w", err)
	}

	var row renovationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "renovation", id)
	}

	renovation := row.toDomain()
	return &renovation, nil
}

// Verify marks a renovation as admin-verified.
func (r *Repo) Verify(ctx context.Context, id uuid.UUID) (*domain.Renovation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("renovations").
		Set("is_verified", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(renovationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verify renovation: %w", err)
	}

	var row renovationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "renovation", id)
	}

	renovation := row.toDomain()
	return &renovation, nil
}
