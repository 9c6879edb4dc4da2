// Package community implements neighborhood update publishing and moderation.
package community

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// updateRepo defines the community update repository interface needed by the
// service.
type updateRepo interface {
	Create(ctx context.Context, upd *domain.CommunityUpdate) (*domain.CommunityUpdate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CommunityUpdateParams) (*domain.CommunityUpdate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.CommunityUpdate, error)
}

// auditLogger defines the audit log interface needed by the community service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by the community
// service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements community update operations.
type Service struct {
	log     *slog.Logger
	updates updateRepo
	audit   auditLogger
	tx      txManager
}

// NewService creates a new community service instance.
func NewService(logger *slog.Logger, updates updateRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "community"),
		updates: updates,
		audit:   audit,
		tx:      tx,
	}
}
