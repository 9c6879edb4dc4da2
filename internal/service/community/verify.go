package community

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Verify marks a community update as verified. Admin-only. Verifying an
// already-verified update is a no-op that still succeeds.
func (s *Service) Verify(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error) {
	upd, err := s.setVerified(ctx, id, true, domain.AuditActionApprove)
	if err != nil {
		return nil, fmt.Errorf("community.Verify: %w", err)
	}

	s.log.InfoContext(ctx, "community update verified", slog.String("update_id", id.String()))

	return upd, nil
}

// Unverify clears the verified flag on a community update. Admin-only.
func (s *Service) Unverify(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error) {
	upd, err := s.setVerified(ctx, id, false, domain.AuditActionReject)
	if err != nil {
		return nil, fmt.Errorf("community.Unverify: %w", err)
	}

	s.log.InfoContext(ctx, "community update unverified", slog.String("update_id", id.String()))

	return upd, nil
}

func (s *Service) setVerified(ctx context.Context, id uuid.UUID, verified bool, action domain.AuditAction) (*domain.CommunityUpdate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.updates.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.CommunityUpdate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.updates.SetVerified(txCtx, id, verified)
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCommunityUpdate,
			EntityID:   &id,
			Action:     action,
			Changes:    map[string]any{"is_verified": verified},
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
