// Package property implements the Property repository using PostgreSQL.
package property

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

var propertyColumns = []string{
	"id", "address", "city", "state", "zip_code", "latitude", "longitude",
	"property_type", "year_built", "square_feet", "bedrooms", "bathrooms",
	"lot_size", "owner_id", "is_verified", "verification_date",
	"created_at", "updated_at",
}

// Repo provides property persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new property repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// propertyRow mirrors the properties table.
type propertyRow struct {
	ID               uuid.UUID  `db:"id"`
	Address          string     `db:"address"`
	City             string     `db:"city"`
	State            string     `db:"state"`
	ZipCode          string     `db:"zip_code"`
	Latitude         *float64   `db:"latitude"`
	Longitude        *float64   `db:"longitude"`
	PropertyType     string     `db:"property_type"`
	YearBuilt        int        `db:"year_built"`
	SquareFeet       int        `db:"square_feet"`
	Bedrooms         int        `db:"bedrooms"`
	Bathrooms        float64    `db:"bathrooms"`
	LotSize          *float64   `db:"lot_size"`
	OwnerID          *uuid.UUID `db:"owner_id"`
	IsVerified       bool       `db:"is_verified"`
	VerificationDate *time.Time `db:"verification_date"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r propertyRow) toDomain() domain.Property {
	return domain.Property{
		ID:               r.ID,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		ZipCode:          r.ZipCode,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		PropertyType:     r.PropertyType,
		YearBuilt:        r.YearBuilt,
		SquareFeet:       r.SquareFeet,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		LotSize:          r.LotSize,
		OwnerID:          r.OwnerID,
		IsVerified:       r.IsVerified,
		VerificationDate: r.VerificationDate,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Create inserts a new property and returns the persisted domain.Property.
func (r *Repo) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("properties").
		Columns("address", "city", "state", "zip_code", "latitude", "longitude",
			"property_type", "year_built", "square_feet", "bedrooms", "bathrooms",
			"lot_size", "owner_id").
		Values(p.Address, p.City, p.State, p.ZipCode, p.Latitude, p.Longitude,
			p.PropertyType, p.YearBuilt, p.SquareFeet, p.Bedrooms, p.Bathrooms,
			p.LotSize, p.OwnerID).
		Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert property: %w", err)
	}

	var row propertyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "property", uuid.Nil)
	}

	property := row.toDomain()
	return &property, nil
}

// GetByID returns a property by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(propertyColumns...).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select property: %w", err)
	}

	var row propertyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	property := row.toDomain()
	return &property, nil
}

// Update applies a merge-patch to a property. nil params leave the column
// unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams) (*domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("properties").Set("updated_at", squirrel.Expr("now()"))
	if params.Address != nil {
		update = update.Set("address", *params.Address)
	}
	if params.City != nil {
		update = update.Set("city", *params.City)
	}
	if params.State != nil {
		update = update.Set("state", *params.State)
	}
	if params.ZipCode != nil {
		update = update.Set("zip_code", *params.ZipCode)
	}
	if params.Latitude != nil {
		update = update.Set("latitude", *params.Latitude)
	}
	if params.Longitude != nil {
		update = update.Set("longitude", *params.Longitude)
	}
	if params.PropertyType != nil {
		update = update.Set("property_type", *params.PropertyType)
	}
	if params.YearBuilt != nil {
		update = update.Set("year_built", *params.YearBuilt)
	}
	if params.SquareFeet != nil {
		update = update.Set("square_feet", *params.SquareFeet)
	}
	if params.Bedrooms != nil {
		update = update.Set("bedrooms", *params.Bedrooms)
	}
	if params.Bathrooms != nil {
		update = update.Set("bathrooms", *params.Bathrooms)
	}
	if params.LotSize != nil {
		update = update.Set("lot_size", *params.LotSize)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update property: %w", err)
	}

	var row propertyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	property := row.toDomain()
	return &property, nil
}

// Delete removes a property by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete property: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "property", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns properties matching the filter, ordered by creation time.
// City matching is case-insensitive.
func (r *Repo) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(propertyColumns...).
		From("properties").
		OrderBy("created_at", "id").
		Offset(uint64(filter.Page.Skip)).
		Limit(uint64(filter.Page.Limit))
	if filter.City != nil {
		query = query.Where("lower(city) = lower(?)", *filter.City)
	}
	if filter.PropertyType != nil {
		query = query.Where(squirrel.Eq{"property_type": *filter.PropertyType})
	}
	if filter.OwnerID != nil {
		query = query.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list properties: %w", err)
	}

	var rows []propertyRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "property", uuid.Nil)
	}

	properties := make([]domain.Property, len(rows))
	for i, row := range rows {
		properties[i] = row.toDomain()
	}
	return properties, nil
}

// SetOwner assigns the property to the given owner.
func (r *Repo) SetOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("properties").
		Set("owner_id", ownerID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set property owner: %w", err)
	}

	var row propertyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	property := row.toDomain()
	return &property, nil
}

// Verify marks the property as verified at the given time. is_verified and
// verification_date are always written together.
func (r *Repo) Verify(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (*domain.Property, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("properties").
		Set("is_verified", true).
		Set("verification_date", verifiedAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verify property: %w", err)
	}

	var row propertyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	property := row.toDomain()
	return &property, nil
}

// Count returns the total number of properties.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := pgxscan.Get(ctx, q, &count, `SELECT count(*) FROM properties`); err != nil {
		return 0, postgres.MapError(err, "property", uuid.Nil)
	}
	return count, nil
}

// CountVerified returns the number of verified properties.
func (r *Repo) CountVerified(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := pgxscan.Get(ctx, q, &count, `SELECT count(*) FROM properties WHERE is_verified`); err != nil {
		return 0, postgres.MapError(err, "property", uuid.Nil)
	}
	return count, nil
}
