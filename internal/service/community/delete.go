package community

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Delete removes a community update. Deletion is admin-only: creators cannot
// retract a published update themselves. The existence check runs first, so
// an unknown id is NotFound even for non-admin callers.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return fmt.Errorf("community.Delete: %w", domain.ErrUnauthorized)
	}

	if _, err := s.updates.GetByID(ctx, id); err != nil {
		return fmt.Errorf("community.Delete: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("community.Delete: %w", domain.ErrForbidden)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.updates.Delete(txCtx, id); err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCommunityUpdate,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
		})
	})
	if err != nil {
		return fmt.Errorf("community.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "community update deleted", slog.String("update_id", id.String()))

	return nil
}
