// Package property implements property CRUD, claiming, and verification.
package property

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// propertyRepo defines the property repository interface needed by the service.
type propertyRepo interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams) (*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	SetOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.Property, error)
	Verify(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (*domain.Property, error)
}

// auditLogger defines the audit log interface needed by the property service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by the property service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements property operations.
type Service struct {
	log        *slog.Logger
	properties propertyRepo
	audit      auditLogger
	tx         txManager
}

// NewService creates a new property service instance.
func NewService(logger *slog.Logger, properties propertyRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:        logger.With("service", "property"),
		properties: properties,
		audit:      audit,
		tx:         tx,
	}
}
