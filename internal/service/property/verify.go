package property

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Verify marks a property as verified (admin only). is_verified and
// verification_date are always set together.
func (s *Service) Verify(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var verified *domain.Property
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.properties.Verify(txCtx, id, time.Now())
		if err != nil {
			return fmt.Errorf("verify property: %w", err)
		}

		record := domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProperty,
			EntityID:   &id,
			Action:     domain.AuditActionVerify,
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		verified = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("property.Verify: %w", err)
	}

	s.log.InfoContext(ctx, "property verified", slog.String("property_id", id.String()))

	return verified, nil
}
