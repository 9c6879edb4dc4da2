// Package report implements the Report repository using PostgreSQL.
package report

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

var reportColumns = []string{
	"id", "property_id", "submitter_id", "report_type", "title", "description",
	"report_data", "attachments", "status", "reviewed_by", "reviewed_at",
	"created_at", "updated_at",
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// reportRow mirrors the reports table.
type reportRow struct {
	ID          uuid.UUID      `db:"id"`
	PropertyID  uuid.UUID      `db:"property_id"`
	SubmitterID uuid.UUID      `db:"submitter_id"`
	ReportType  string         `db:"report_type"`
	Title       string         `db:"title"`
	Description *string        `db:"description"`
	ReportData  map[string]any `db:"report_data"`
	Attachments []string       `db:"attachments"`
	Status      string         `db:"status"`
	ReviewedBy  *uuid.UUID     `db:"reviewed_by"`
	ReviewedAt  *time.Time     `db:"reviewed_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r reportRow) toDomain() domain.Report {
	return domain.Report{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		SubmitterID: r.SubmitterID,
		ReportType:  r.ReportType,
		Title:       r.Title,
		Description: r.Description,
		ReportData:  r.ReportData,
		Attachments: r.Attachments,
		Status:      domain.ReportStatus(r.Status),
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  r.ReviewedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a new report in pending status and returns the persisted
// domain.Report.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	reportData := rep.ReportData
	if reportData == nil {
		reportData = map[string]any{}
	}
	attachments := rep.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	sql, args, err := qb.Insert("reports").
		Columns("property_id", "submitter_id", "report_type", "title", "description",
			"report_data", "attachments").
		Values(rep.PropertyID, rep.SubmitterID, rep.ReportType, rep.Title, rep.Description,
			reportData, attachments).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert report: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", uuid.Nil)
	}

	report := row.toDomain()
	return &report, nil
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(reportColumns...).
		From("reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select report: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	report := row.toDomain()
	return &report, nil
}

// Update applies a merge-patch to a report's content fields. nil params leave
// the column unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ReportUpdateParams) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("reports").Set("updated_at", squirrel.Expr("now()"))
	if params.ReportType != nil {
		update = update.Set("report_type", *params.ReportType)
	}
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.ReportData != nil {
		update = update.Set("report_data", params.ReportData)
	}
	if params.Attachments != nil {
		update = update.Set("attachments", params.Attachments)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update report: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	report := row.toDomain()
	return &report, nil
}

// List returns reports matching the filter, ordered by creation time.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(reportColumns...).
		From("reports").
		OrderBy("created_at", "id").
		Offset(uint64(filter.Page.Skip)).
		Limit(uint64(filter.Page.Limit))
	if filter.PropertyID != nil {
		query = query.Where(squirrel.Eq{"property_id": *filter.PropertyID})
	}
	if filter.SubmitterID != nil {
		query = query.Where(squirrel.Eq{"submitter_id": *filter.SubmitterID})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": filter.Status.String()})
	}
	if filter.ReportType != nil {
		query = query.Where(squirrel.Eq{"report_type": *filter.ReportType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reports: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", uuid.Nil)
	}

	reports := make([]domain.Report, len(rows))
	for i, row := range rows {
		reports[i] = row.toDomain()
	}
	return reports, nil
}

// Review moves a report to a terminal status, stamping the reviewer and
// review time. description, when non-nil, replaces the stored description
// (used to append a rejection reason).
func (r *Repo) Review(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID uuid.UUID, reviewedAt time.Time, description *string) (*domain.Report, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("reports").
		Set("status", status.String()).
		Set("reviewed_by", reviewerID).
		Set("reviewed_at", reviewedAt).
		Set("updated_at", squirrel.Expr("now()"))
	if description != nil {
		update = update.Set("description", *description)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(reportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review report: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	report := row.toDomain()
	return &report, nil
}

// Count returns the total number of reports.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := pgxscan.Get(ctx, q, &count, `SELECT count(*) FROM reports`); err != nil {
		return 0, postgres.MapError(err, "report", uuid.Nil)
	}
	return count, nil
}

// CountByStatus returns the number of reports in the given status.
func (r *Repo) CountByStatus(ctx context.Context, status domain.ReportStatus) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := pgxscan.Get(ctx, q, &count, `SELECT count(*) FROM reports WHERE status = $1`, status.String()); err != nil {
		return 0, postgres.MapError(err, "report", uuid.Nil)
	}
	return count, nil
}
