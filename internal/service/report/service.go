// Package report implements property report submission and admin review.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// reportRepo defines the report repository interface needed by the service.
type reportRepo interface {
	Create(ctx context.Context, rep *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ReportUpdateParams) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	Review(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID uuid.UUID, reviewedAt time.Time, description *string) (*domain.Report, error)
}

// auditLogger defines the audit log interface needed by the report service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by the report service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements report operations.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	audit   auditLogger
	tx      txManager
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, reports reportRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		audit:   audit,
		tx:      tx,
	}
}
