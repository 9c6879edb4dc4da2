package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Delete removes a property (admin only).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.properties.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete property: %w", err)
		}

		record := domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProperty,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("property.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "property deleted", slog.String("property_id", id.String()))

	return nil
}
