// Package communityupdate implements the CommunityUpdate repository using PostgreSQL.
package communityupdate

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

var updateColumns = []string{
	"id", "property_id", "neighborhood_id", "update_type", "title",
	"description", "impact_level", "start_date", "end_date", "location",
	"is_verified", "created_by", "created_at", "updated_at",
}

// Repo provides community update persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new community update repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// updateRow mirrors the community_updates table.
type updateRow struct {
	ID             uuid.UUID      `db:"id"`
	PropertyID     *uuid.UUID     `db:"property_id"`
	NeighborhoodID *string        `db:"neighborhood_id"`
	UpdateType     string         `db:"update_type"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	ImpactLevel    string         `db:"impact_level"`
	StartDate      *time.Time     `db:"start_date"`
	EndDate        *time.Time     `db:"end_date"`
	Location       map[string]any `db:"location"`
	IsVerified     bool           `db:"is_verified"`
	CreatedBy      uuid.UUID      `db:"created_by"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r updateRow) toDomain() domain.CommunityUpdate {
	return domain.CommunityUpdate{
		ID:             r.ID,
		PropertyID:     r.PropertyID,
		NeighborhoodID: r.NeighborhoodID,
		UpdateType:     r.UpdateType,
		Title:          r.Title,
		Description:    r.Description,
		ImpactLevel:    domain.ImpactLevel(r.ImpactLevel),
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Location:       r.Location,
		IsVerified:     r.IsVerified,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Create inserts a new community update and returns the persisted entity.
// IsVerified is taken from the passed entity so callers control it at
// creation time.
func (r *Repo) Create(ctx context.Context, u *domain.CommunityUpdate) (*domain.CommunityUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	location := u.Location
	if location == nil {
		location = map[string]any{}
	}

	sql, args, err := qb.Insert("community_updates").
		Columns("property_id", "neighborhood_id", "update_type", "title",
			"description", "impact_level", "start_date", "end_date",
			"location", "is_verified", "created_by").
		Values(u.PropertyID, u.NeighborhoodID, u.UpdateType, u.Title,
			u.Description, u.ImpactLevel.String(), u.StartDate, u.EndDate,
			location, u.IsVerified, u.CreatedBy).
		Suffix("RETURNING " + strings.Join(updateColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert community update: %w", err)
	}

	var row updateRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "community_update", uuid.Nil)
	}

	update := row.toDomain()
	return &update, nil
}

// GetByID returns a community update by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(updateColumns...).
		From("community_updates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select community update: %w", err)
	}

	var row updateRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "community_update", id)
	}

	update := row.toDomain()
	return &update, nil
}

// Update applies a merge-patch to a community update. nil params leave the
// column unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CommunityUpdateParams) (*domain.CommunityUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("community_updates").Set("updated_at", squirrel.Expr("now()"))
	if params.UpdateType != nil {
		update = update.Set("update_type", *params.UpdateType)
	}
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.ImpactLevel != nil {
		update = update.Set("impact_level", params.ImpactLevel.String())
	}
	if params.StartDate != nil {
		update = update.Set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		update = update.Set("end_date", *params.EndDate)
	}
	if params.Location != nil {
		update = update.Set("location", params.Location)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(updateColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update community update: %w", err)
	}

	var row updateRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "community_update", id)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes a community update by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("community_updates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete community update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "community_update", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community_update %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns community updates matching the filter, ordered by creation time.
func (r *Repo) List(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(updateColumns...).
		From("community_updates").
		OrderBy("created_at", "id").
		Offset(uint64(filter.Page.Skip)).
		Limit(uint64(filter.Page.Limit))
	if filter.PropertyID != nil {
		query = query.Where(squirrel.Eq{"property_id": *filter.PropertyID})
	}
	if filter.NeighborhoodID != nil {
		query = query.Where(squirrel.Eq{"neighborhood_id": *filter.NeighborhoodID})
	}
	if filter.UpdateType != nil {
		query = query.Where(squirrel.Eq{"update_type": *filter.UpdateType})
	}
	if filter.ImpactLevel != nil {
		query = query.Where(squirrel.Eq{"impact_level": filter.ImpactLevel.String()})
	}
	if filter.Verified != nil {
		query = query.Where(squirrel.Eq{"is_verified": *filter.Verified})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list community updates: %w", err)
	}

	var rows []updateRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "community_update", uuid.Nil)
	}

	updates := make([]domain.CommunityUpdate, len(rows))
	for i, row := range rows {
		updates[i] = row.toDomain()
	}
	return updates, nil
}

// SetVerified sets the verification flag on a community update.
func (r *Repo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.CommunityUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("community_updates").
		Set("is_verified", verified).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(updateColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set community update verified: %w", err)
	}

	var row updateRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "community_update", id)
	}

	update := row.toDomain()
	return &update, nil
}

// Count returns the total number of community updates.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := pgxscan.Get(ctx, q, &count, `SELECT count(*) FROM community_updates`); err != nil {
		return 0, postgres.MapError(err, "community_update", uuid.Nil)
	}
	return count, nil
}
