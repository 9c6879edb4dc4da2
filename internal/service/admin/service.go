// Package admin implements the admin dashboard: pending review queues,
// platform statistics, renovation verification, and neighborhood
// notifications.
package admin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// reportRepo defines the report repository interface needed by the admin
// service.
type reportRepo interface {
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.ReportStatus) (int, error)
}

// updateRepo defines the community update repository interface needed by the
// admin service.
type updateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error)
	List(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error)
	Count(ctx context.Context) (int, error)
}

// propertyRepo defines the property repository interface needed by the admin
// service.
type propertyRepo interface {
	Count(ctx context.Context) (int, error)
	CountVerified(ctx context.Context) (int, error)
}

// userRepo defines the user repository interface needed by the admin service.
type userRepo interface {
	Count(ctx context.Context) (int, error)
}

// renovationRepo defines the renovation repository interface needed by the
// admin service.
type renovationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
	Verify(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
}

// auditLogger defines the audit log interface needed by the admin service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by the admin
// service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin dashboard operations.
type Service struct {
	log         *slog.Logger
	reports     reportRepo
	updates     updateRepo
	properties  propertyRepo
	users       userRepo
	renovations renovationRepo
	audit       auditLogger
	tx          txManager
}

// NewService creates a new admin service instance.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	updates updateRepo,
	properties propertyRepo,
	users userRepo,
	renovations renovationRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "admin"),
		reports:     reports,
		updates:     updates,
		properties:  properties,
		users:       users,
		renovations: renovations,
		audit:       audit,
		tx:          tx,
	}
}
