// Package contractor implements the contractor portal: renovation project
// submissions and work assignments, always scoped to the calling contractor.
package contractor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// renovationRepo defines the renovation repository interface needed by the
// contractor service.
type renovationRepo interface {
	Create(ctx context.Context, ren *domain.Renovation) (*domain.Renovation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
	Update(ctx context.Context, id uuid.UUID, params domain.RenovationUpdateParams) (*domain.Renovation, error)
	List(ctx context.Context, filter domain.RenovationFilter) ([]domain.Renovation, error)
	Complete(ctx context.Context, id uuid.UUID, endDate time.Time) (*domain.Renovation, error)
}

// assignmentRepo defines the assignment repository interface needed by the
// contractor service.
type assignmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractorAssignment, error)
	List(ctx context.Context, filter domain.AssignmentFilter) ([]domain.ContractorAssignment, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus, completedDate *time.Time) (*domain.ContractorAssignment, error)
}

// auditLogger defines the audit log interface needed by the contractor service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by the
// contractor service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements contractor portal operations.
type Service struct {
	log         *slog.Logger
	renovations renovationRepo
	assignments assignmentRepo
	audit       auditLogger
	tx          txManager
}

// NewService creates a new contractor service instance.
func NewService(logger *slog.Logger, renovations renovationRepo, assignments assignmentRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "contractor"),
		renovations: renovations,
		assignments: assignments,
		audit:       audit,
		tx:          tx,
	}
}
